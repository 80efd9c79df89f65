package service

import (
	"context"
	"database/sql"
	"errors"
	"os"

	"github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog"

	"github.com/Kondaswamy12/Realestate/internal/entity"
	"github.com/Kondaswamy12/Realestate/internal/repository"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new instance of UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Register inserts a new user. The username key is caller-supplied; a
// duplicate is only detected by the store's primary key.
func (s *UserService) Register(ctx context.Context, user *entity.User) (*entity.User, error) {
	createdUser, err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return nil, ErrDuplicateKey
		}
		logger.Error().Err(err).Msg("Error registering user")
		return nil, err
	}

	return createdUser, nil
}

// Login matches the exact (username, password) pair. No token or session is
// issued; the caller only learns whether the pair matched.
func (s *UserService) Login(ctx context.Context, username, password string) error {
	_, err := s.userRepo.GetUserByUsernameAndPassword(ctx, username, password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrInvalidCredentials
		}
		logger.Error().Err(err).Msgf("Error logging in user %s", username)
		return err
	}

	return nil
}

func (s *UserService) GetUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := s.userRepo.GetUsers(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error getting users")
		return nil, err
	}

	return users, nil
}

func (s *UserService) GetUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Msgf("Error getting user %s", username)
		return nil, err
	}

	return user, nil
}

// UpdateUser replaces password, phone and email. The username is immutable;
// any username in the patch is ignored.
func (s *UserService) UpdateUser(ctx context.Context, username string, patch *entity.User) error {
	existing, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		logger.Error().Err(err).Msgf("Error getting user %s", username)
		return err
	}

	existing.Password = patch.Password
	existing.Phone = patch.Phone
	existing.Email = patch.Email

	if err := s.userRepo.UpdateUser(ctx, existing); err != nil {
		logger.Error().Err(err).Msgf("Error updating user %s", username)
		return err
	}

	return nil
}

func (s *UserService) DeleteUser(ctx context.Context, username string) error {
	exists, err := s.userRepo.ExistsByUsername(ctx, username)
	if err != nil {
		logger.Error().Err(err).Msgf("Error checking user %s", username)
		return err
	}
	if !exists {
		return ErrNotFound
	}

	if err := s.userRepo.DeleteUser(ctx, username); err != nil {
		logger.Error().Err(err).Msgf("Error deleting user %s", username)
		return err
	}

	return nil
}
