package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Kondaswamy12/Realestate/internal/entity"
	"github.com/Kondaswamy12/Realestate/internal/repository"
)

type GuideService struct {
	guideRepo repository.GuideRepository
}

// NewGuideService creates a new instance of GuideService.
func NewGuideService(guideRepo repository.GuideRepository) *GuideService {
	return &GuideService{guideRepo: guideRepo}
}

func (s *GuideService) GetGuides(ctx context.Context) ([]*entity.Guide, error) {
	guides, err := s.guideRepo.GetGuides(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error getting guides")
		return nil, err
	}

	return guides, nil
}

// CreateGuide inserts a guide with a store-generated key. Absent fields are
// persisted as NULL; there is no default filling here.
func (s *GuideService) CreateGuide(ctx context.Context, guide *entity.Guide) (*entity.Guide, error) {
	createdGuide, err := s.guideRepo.CreateGuide(ctx, guide)
	if err != nil {
		logger.Error().Err(err).Msg("Error creating guide")
		return nil, err
	}

	return createdGuide, nil
}

// UpdateGuide replaces every field except the key.
func (s *GuideService) UpdateGuide(ctx context.Context, id int, patch *entity.Guide) error {
	existing, err := s.guideRepo.GetGuideByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		logger.Error().Err(err).Msgf("Error getting guide %d", id)
		return err
	}

	existing.Name = patch.Name
	existing.Email = patch.Email
	existing.Phone = patch.Phone
	existing.ExperienceYears = patch.ExperienceYears
	existing.Rating = patch.Rating
	existing.Specialization = patch.Specialization
	existing.City = patch.City
	existing.State = patch.State
	existing.Available = patch.Available
	existing.JoinedDate = patch.JoinedDate
	existing.Image = patch.Image

	if err := s.guideRepo.UpdateGuide(ctx, existing); err != nil {
		logger.Error().Err(err).Msgf("Error updating guide %d", id)
		return err
	}

	return nil
}

func (s *GuideService) DeleteGuide(ctx context.Context, id int) error {
	exists, err := s.guideRepo.ExistsByID(ctx, id)
	if err != nil {
		logger.Error().Err(err).Msgf("Error checking guide %d", id)
		return err
	}
	if !exists {
		return ErrNotFound
	}

	if err := s.guideRepo.DeleteGuide(ctx, id); err != nil {
		logger.Error().Err(err).Msgf("Error deleting guide %d", id)
		return err
	}

	return nil
}
