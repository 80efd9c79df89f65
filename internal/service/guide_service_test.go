package service

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kondaswamy12/Realestate/internal/entity"
	"github.com/Kondaswamy12/Realestate/internal/repository"
)

func newGuideService(t *testing.T) (*GuideService, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewGuideService(*repository.NewGuideRepository(db)), mock
}

func TestCreateGuideDoesNotFillDefaults(t *testing.T) {
	svc, mock := newGuideService(t)

	// Unlike buildings, absent guide fields stay NULL.
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO guides`)).
		WithArgs("Ravi", nil, nil, nil, nil, nil, nil, nil, nil, nil, nil).
		WillReturnResult(sqlmock.NewResult(5, 1))

	created, err := svc.CreateGuide(context.Background(), &entity.Guide{Name: str("Ravi")})
	require.NoError(t, err)
	assert.Equal(t, 5, created.GuideID)
	assert.Nil(t, created.ExperienceYears)
	assert.Nil(t, created.Rating)
	assert.Nil(t, created.Available)
}

func TestUpdateGuideMissing(t *testing.T) {
	svc, mock := newGuideService(t)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE guide_id = ?`)).
		WithArgs(999).
		WillReturnError(sql.ErrNoRows)

	err := svc.UpdateGuide(context.Background(), 999, &entity.Guide{Name: str("Ravi")})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateGuideKeepsKey(t *testing.T) {
	svc, mock := newGuideService(t)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE guide_id = ?`)).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"guide_id", "name", "email", "phone", "experience_years",
			"rating", "specialization", "city", "state", "available", "joined_date", "image"}).
			AddRow(3, "Ravi", "r@x.com", "555", 7, 4.5, "Luxury", "Austin", "TX", true, "2020-01-01", nil))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE guides SET`)).
		WithArgs("Priya", nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, 3).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, svc.UpdateGuide(context.Background(), 3, &entity.Guide{Name: str("Priya")}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteGuideMissing(t *testing.T) {
	svc, mock := newGuideService(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS`)).
		WithArgs(999).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	err := svc.DeleteGuide(context.Background(), 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteGuideThenMissingAgain(t *testing.T) {
	svc, mock := newGuideService(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS`)).
		WithArgs(9).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM guides WHERE guide_id = ?`)).
		WithArgs(9).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, svc.DeleteGuide(context.Background(), 9))

	// Delete by key is idempotent only in the sense that the second attempt
	// reports NotFound.
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS`)).
		WithArgs(9).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	err := svc.DeleteGuide(context.Background(), 9)
	assert.ErrorIs(t, err, ErrNotFound)
}
