package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Kondaswamy12/Realestate/internal/entity"
	"github.com/Kondaswamy12/Realestate/internal/repository"
)

type BuildingService struct {
	buildingRepo repository.BuildingRepository
}

// NewBuildingService creates a new instance of BuildingService.
func NewBuildingService(buildingRepo repository.BuildingRepository) *BuildingService {
	return &BuildingService{buildingRepo: buildingRepo}
}

func (s *BuildingService) GetBuildings(ctx context.Context) ([]*entity.Building, error) {
	buildings, err := s.buildingRepo.GetBuildings(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error getting buildings")
		return nil, err
	}

	return buildings, nil
}

// CreateBuilding inserts a building with a store-generated key. Absent
// numeric and boolean fields default to their zero values before the insert;
// absent strings stay NULL. Building is the only entity with this behavior.
func (s *BuildingService) CreateBuilding(ctx context.Context, building *entity.Building) (*entity.Building, error) {
	if building.Price == nil {
		building.Price = new(float64)
	}
	if building.Bedrooms == nil {
		building.Bedrooms = new(int)
	}
	if building.Bathrooms == nil {
		building.Bathrooms = new(int)
	}
	if building.AreaSqft == nil {
		building.AreaSqft = new(int)
	}
	if building.Featured == nil {
		building.Featured = new(bool)
	}

	createdBuilding, err := s.buildingRepo.CreateBuilding(ctx, building)
	if err != nil {
		logger.Error().Err(err).Msg("Error creating building")
		return nil, err
	}

	return createdBuilding, nil
}

// UpdateBuilding replaces every field except the key, including guideId.
// Caller-supplied values are used verbatim, nulls included.
func (s *BuildingService) UpdateBuilding(ctx context.Context, id int, patch *entity.Building) error {
	existing, err := s.buildingRepo.GetBuildingByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		logger.Error().Err(err).Msgf("Error getting building %d", id)
		return err
	}

	existing.GuideID = patch.GuideID
	existing.Name = patch.Name
	existing.Address = patch.Address
	existing.City = patch.City
	existing.State = patch.State
	existing.ZipCode = patch.ZipCode
	existing.Price = patch.Price
	existing.Type = patch.Type
	existing.Bedrooms = patch.Bedrooms
	existing.Bathrooms = patch.Bathrooms
	existing.AreaSqft = patch.AreaSqft
	existing.Availability = patch.Availability
	existing.Image = patch.Image
	existing.Featured = patch.Featured

	if err := s.buildingRepo.UpdateBuilding(ctx, existing); err != nil {
		logger.Error().Err(err).Msgf("Error updating building %d", id)
		return err
	}

	return nil
}

func (s *BuildingService) DeleteBuilding(ctx context.Context, id int) error {
	exists, err := s.buildingRepo.ExistsByID(ctx, id)
	if err != nil {
		logger.Error().Err(err).Msgf("Error checking building %d", id)
		return err
	}
	if !exists {
		return ErrNotFound
	}

	if err := s.buildingRepo.DeleteBuilding(ctx, id); err != nil {
		logger.Error().Err(err).Msgf("Error deleting building %d", id)
		return err
	}

	return nil
}
