package repository

import (
	"context"
	"database/sql"

	"github.com/Kondaswamy12/Realestate/internal/entity"
)

type BuildingRepository struct {
	db *sql.DB
}

func NewBuildingRepository(db *sql.DB) *BuildingRepository {
	return &BuildingRepository{db}
}

func (r *BuildingRepository) GetBuildings(ctx context.Context) ([]*entity.Building, error) {
	query := `SELECT building_id, guide_id, name, address, city, state, zip_code, price, type, bedrooms, bathrooms, area_sqft, availability, image, featured FROM buildings`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	buildings := make([]*entity.Building, 0)
	for rows.Next() {
		var building entity.Building
		err := rows.Scan(&building.BuildingID, &building.GuideID, &building.Name, &building.Address, &building.City,
			&building.State, &building.ZipCode, &building.Price, &building.Type, &building.Bedrooms,
			&building.Bathrooms, &building.AreaSqft, &building.Availability, &building.Image, &building.Featured)
		if err != nil {
			return nil, err
		}
		buildings = append(buildings, &building)
	}

	return buildings, rows.Err()
}

func (r *BuildingRepository) GetBuildingByID(ctx context.Context, id int) (*entity.Building, error) {
	building := &entity.Building{}
	query := `SELECT building_id, guide_id, name, address, city, state, zip_code, price, type, bedrooms, bathrooms, area_sqft, availability, image, featured FROM buildings WHERE building_id = ?`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&building.BuildingID, &building.GuideID, &building.Name,
		&building.Address, &building.City, &building.State, &building.ZipCode, &building.Price, &building.Type,
		&building.Bedrooms, &building.Bathrooms, &building.AreaSqft, &building.Availability, &building.Image, &building.Featured)
	if err != nil {
		return nil, err
	}

	return building, nil
}

func (r *BuildingRepository) ExistsByID(ctx context.Context, id int) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM buildings WHERE building_id = ?)`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}

func (r *BuildingRepository) CreateBuilding(ctx context.Context, building *entity.Building) (*entity.Building, error) {
	query := `INSERT INTO buildings (guide_id, name, address, city, state, zip_code, price, type, bedrooms, bathrooms, area_sqft, availability, image, featured) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, building.GuideID, building.Name, building.Address, building.City,
		building.State, building.ZipCode, building.Price, building.Type, building.Bedrooms, building.Bathrooms,
		building.AreaSqft, building.Availability, building.Image, building.Featured)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	building.BuildingID = int(id)
	return building, nil
}

func (r *BuildingRepository) UpdateBuilding(ctx context.Context, building *entity.Building) error {
	query := `UPDATE buildings SET guide_id = ?, name = ?, address = ?, city = ?, state = ?, zip_code = ?, price = ?, type = ?, bedrooms = ?, bathrooms = ?, area_sqft = ?, availability = ?, image = ?, featured = ? WHERE building_id = ?`
	_, err := r.db.ExecContext(ctx, query, building.GuideID, building.Name, building.Address, building.City,
		building.State, building.ZipCode, building.Price, building.Type, building.Bedrooms, building.Bathrooms,
		building.AreaSqft, building.Availability, building.Image, building.Featured, building.BuildingID)
	if err != nil {
		return err
	}

	return nil
}

func (r *BuildingRepository) DeleteBuilding(ctx context.Context, id int) error {
	query := `DELETE FROM buildings WHERE building_id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
