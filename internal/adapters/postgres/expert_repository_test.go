package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/potenlab/the-potential-backend/internal/core/domain"
)

var expertColumns = []string{
	"id", "user_id", "category", "business_name", "description",
	"specialties", "regions", "hourly_rate", "is_available", "is_featured",
	"status", "view_count", "request_count", "created_at", "updated_at",
	"display_name", "avatar_url", "company",
}

func newExpertRepo(t *testing.T) (*ExpertRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	repo, err := NewExpertRepository(mock)
	require.NoError(t, err)
	return repo, mock
}

func expertRow(rows *pgxmock.Rows, name string) *pgxmock.Rows {
	rate := 50000.0
	return rows.AddRow(
		uuid.New(), uuid.New(), domain.CategoryMarketing, name, "설명",
		[]string{"SNS"}, []string{"서울"}, &rate, true, false,
		domain.ExpertStatusApproved, 10, 2, time.Now().UTC(), time.Now().UTC(),
		"김전문", (*string)(nil), (*string)(nil),
	)
}

func TestFindWithFiltersReturnsPageAndTotal(t *testing.T) {
	repo, mock := newExpertRepo(t)

	params := domain.ExpertSearchParams{Limit: 2, Offset: 0}.Normalized()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM expert_profiles").
		WithArgs(true).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(5))
	mock.ExpectQuery("SELECT (.+) FROM expert_profiles e").
		WithArgs(true, 2, 0).
		WillReturnRows(expertRow(expertRow(pgxmock.NewRows(expertColumns), "첫째 전문가"), "둘째 전문가"))
	mock.ExpectCommit()

	result, err := repo.FindWithFilters(context.Background(), params)
	require.NoError(t, err)

	assert.Equal(t, 5, result.TotalCount)
	assert.Len(t, result.Experts, 2)
	assert.True(t, result.HasMore)
	assert.Equal(t, "첫째 전문가", result.Experts[0].BusinessName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindWithFiltersLastPageHasMoreFalse(t *testing.T) {
	repo, mock := newExpertRepo(t)

	params := domain.ExpertSearchParams{Limit: 2, Offset: 4}.Normalized()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM expert_profiles").
		WithArgs(true).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(5))
	mock.ExpectQuery("SELECT (.+) FROM expert_profiles e").
		WithArgs(true, 2, 4).
		WillReturnRows(expertRow(pgxmock.NewRows(expertColumns), "마지막 전문가"))
	mock.ExpectCommit()

	result, err := repo.FindWithFilters(context.Background(), params)
	require.NoError(t, err)

	assert.Len(t, result.Experts, 1)
	assert.False(t, result.HasMore)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindWithFiltersZeroMatchesSkipsPageQuery(t *testing.T) {
	repo, mock := newExpertRepo(t)

	params := domain.ExpertSearchParams{}.Normalized()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM expert_profiles").
		WithArgs(true).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectCommit()

	result, err := repo.FindWithFilters(context.Background(), params)
	require.NoError(t, err)

	assert.Empty(t, result.Experts)
	assert.NotNil(t, result.Experts)
	assert.Equal(t, 0, result.TotalCount)
	assert.False(t, result.HasMore)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByIDNotFound(t *testing.T) {
	repo, mock := newExpertRepo(t)

	expertID := uuid.New()
	mock.ExpectQuery("SELECT (.+) FROM expert_profiles e").
		WithArgs(expertID).
		WillReturnRows(pgxmock.NewRows(expertColumns))

	_, err := repo.GetByID(context.Background(), expertID)
	assert.ErrorIs(t, err, domain.ErrExpertNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByIDDefaultsNilArrays(t *testing.T) {
	repo, mock := newExpertRepo(t)

	expertID := uuid.New()
	mock.ExpectQuery("SELECT (.+) FROM expert_profiles e").
		WithArgs(expertID).
		WillReturnRows(pgxmock.NewRows(expertColumns).AddRow(
			expertID, uuid.New(), domain.CategoryLegal, "법률 상담", "",
			[]string(nil), []string(nil), (*float64)(nil), true, false,
			domain.ExpertStatusApproved, 0, 0, time.Now().UTC(), time.Now().UTC(),
			"박변호사", (*string)(nil), (*string)(nil),
		))

	expert, err := repo.GetByID(context.Background(), expertID)
	require.NoError(t, err)

	assert.NotNil(t, expert.Specialties)
	assert.NotNil(t, expert.Regions)
	assert.Nil(t, expert.HourlyRate)
}
