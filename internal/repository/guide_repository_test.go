package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kondaswamy12/Realestate/internal/entity"
)

var guideColumns = []string{"guide_id", "name", "email", "phone", "experience_years", "rating",
	"specialization", "city", "state", "available", "joined_date", "image"}

func TestCreateGuideAssignsGeneratedID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGuideRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO guides`)).
		WillReturnResult(sqlmock.NewResult(5, 1))

	guide, err := repo.CreateGuide(context.Background(), &entity.Guide{Name: str("Ravi")})
	require.NoError(t, err)
	assert.Equal(t, 5, guide.GuideID)
}

func TestGetGuidesScansNullFields(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGuideRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT guide_id, name, email, phone, experience_years, rating, specialization, city, state, available, joined_date, image FROM guides`)).
		WillReturnRows(sqlmock.NewRows(guideColumns).
			AddRow(1, "Ravi", "r@x.com", nil, 7, 4.5, "Luxury", "Austin", "TX", true, "2020-01-01", nil))

	guides, err := repo.GetGuides(context.Background())
	require.NoError(t, err)
	require.Len(t, guides, 1)
	assert.Equal(t, 1, guides[0].GuideID)
	assert.Equal(t, 4.5, *guides[0].Rating)
	assert.Nil(t, guides[0].Phone)
	assert.Nil(t, guides[0].Image)
}

func TestUpdateGuideArgsEndWithKey(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGuideRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE guides SET name = ?, email = ?, phone = ?, experience_years = ?, rating = ?, specialization = ?, city = ?, state = ?, available = ?, joined_date = ?, image = ? WHERE guide_id = ?`)).
		WithArgs("Ravi", nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, 3).
		WillReturnResult(sqlmock.NewResult(0, 1))

	guide := &entity.Guide{GuideID: 3, Name: str("Ravi")}
	require.NoError(t, repo.UpdateGuide(context.Background(), guide))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteGuide(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGuideRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM guides WHERE guide_id = ?`)).
		WithArgs(9).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.DeleteGuide(context.Background(), 9))
	assert.NoError(t, mock.ExpectationsWereMet())
}
