package repository

import (
	"context"
	"database/sql"

	"github.com/Kondaswamy12/Realestate/internal/entity"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db}
}

func (r *UserRepository) GetUsers(ctx context.Context) ([]*entity.User, error) {
	query := `SELECT username, password, phone, email FROM users`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]*entity.User, 0)
	for rows.Next() {
		var user entity.User
		if err := rows.Scan(&user.Username, &user.Password, &user.Phone, &user.Email); err != nil {
			return nil, err
		}
		users = append(users, &user)
	}

	return users, rows.Err()
}

func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	user := &entity.User{}
	query := `SELECT username, password, phone, email FROM users WHERE username = ?`
	err := r.db.QueryRowContext(ctx, query, username).Scan(&user.Username, &user.Password, &user.Phone, &user.Email)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *UserRepository) GetUserByUsernameAndPassword(ctx context.Context, username, password string) (*entity.User, error) {
	user := &entity.User{}
	query := `SELECT username, password, phone, email FROM users WHERE username = ? AND password = ?`
	err := r.db.QueryRowContext(ctx, query, username, password).Scan(&user.Username, &user.Password, &user.Phone, &user.Email)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE username = ?)`
	err := r.db.QueryRowContext(ctx, query, username).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}

func (r *UserRepository) CreateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	query := `INSERT INTO users (username, password, phone, email) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, user.Username, user.Password, user.Phone, user.Email)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *UserRepository) UpdateUser(ctx context.Context, user *entity.User) error {
	query := `UPDATE users SET password = ?, phone = ?, email = ? WHERE username = ?`
	_, err := r.db.ExecContext(ctx, query, user.Password, user.Phone, user.Email, user.Username)
	if err != nil {
		return err
	}

	return nil
}

func (r *UserRepository) DeleteUser(ctx context.Context, username string) error {
	query := `DELETE FROM users WHERE username = ?`
	_, err := r.db.ExecContext(ctx, query, username)
	if err != nil {
		return err
	}

	return nil
}
