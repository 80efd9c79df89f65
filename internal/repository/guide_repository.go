package repository

import (
	"context"
	"database/sql"

	"github.com/Kondaswamy12/Realestate/internal/entity"
)

type GuideRepository struct {
	db *sql.DB
}

func NewGuideRepository(db *sql.DB) *GuideRepository {
	return &GuideRepository{db}
}

func (r *GuideRepository) GetGuides(ctx context.Context) ([]*entity.Guide, error) {
	query := `SELECT guide_id, name, email, phone, experience_years, rating, specialization, city, state, available, joined_date, image FROM guides`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	guides := make([]*entity.Guide, 0)
	for rows.Next() {
		var guide entity.Guide
		err := rows.Scan(&guide.GuideID, &guide.Name, &guide.Email, &guide.Phone, &guide.ExperienceYears,
			&guide.Rating, &guide.Specialization, &guide.City, &guide.State, &guide.Available, &guide.JoinedDate, &guide.Image)
		if err != nil {
			return nil, err
		}
		guides = append(guides, &guide)
	}

	return guides, rows.Err()
}

func (r *GuideRepository) GetGuideByID(ctx context.Context, id int) (*entity.Guide, error) {
	guide := &entity.Guide{}
	query := `SELECT guide_id, name, email, phone, experience_years, rating, specialization, city, state, available, joined_date, image FROM guides WHERE guide_id = ?`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&guide.GuideID, &guide.Name, &guide.Email, &guide.Phone,
		&guide.ExperienceYears, &guide.Rating, &guide.Specialization, &guide.City, &guide.State, &guide.Available,
		&guide.JoinedDate, &guide.Image)
	if err != nil {
		return nil, err
	}

	return guide, nil
}

func (r *GuideRepository) ExistsByID(ctx context.Context, id int) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM guides WHERE guide_id = ?)`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}

func (r *GuideRepository) CreateGuide(ctx context.Context, guide *entity.Guide) (*entity.Guide, error) {
	query := `INSERT INTO guides (name, email, phone, experience_years, rating, specialization, city, state, available, joined_date, image) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, guide.Name, guide.Email, guide.Phone, guide.ExperienceYears,
		guide.Rating, guide.Specialization, guide.City, guide.State, guide.Available, guide.JoinedDate, guide.Image)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	guide.GuideID = int(id)
	return guide, nil
}

func (r *GuideRepository) UpdateGuide(ctx context.Context, guide *entity.Guide) error {
	query := `UPDATE guides SET name = ?, email = ?, phone = ?, experience_years = ?, rating = ?, specialization = ?, city = ?, state = ?, available = ?, joined_date = ?, image = ? WHERE guide_id = ?`
	_, err := r.db.ExecContext(ctx, query, guide.Name, guide.Email, guide.Phone, guide.ExperienceYears,
		guide.Rating, guide.Specialization, guide.City, guide.State, guide.Available, guide.JoinedDate, guide.Image, guide.GuideID)
	if err != nil {
		return err
	}

	return nil
}

func (r *GuideRepository) DeleteGuide(ctx context.Context, id int) error {
	query := `DELETE FROM guides WHERE guide_id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
