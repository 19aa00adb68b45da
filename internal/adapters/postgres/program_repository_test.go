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

var programColumns = []string{
	"id", "title", "organization", "category", "region", "support_amount",
	"starts_at", "deadline_at", "link", "description", "created_at",
}

func newProgramRepo(t *testing.T) (*ProgramRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	repo, err := NewProgramRepository(mock)
	require.NoError(t, err)
	return repo, mock
}

func programRow(title string) []any {
	now := time.Now().UTC()
	deadline := now.Add(14 * 24 * time.Hour)
	amount := "최대 1억원"
	return []any{
		uuid.New(), title, "중소벤처기업부", "funding", "서울", &amount,
		&now, &deadline, "https://example.com", "초기 창업 지원", now,
	}
}

func TestFindProgramsReturnsPage(t *testing.T) {
	repo, mock := newProgramRepo(t)

	category := "funding"
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM support_programs`).
		WithArgs(category).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery("SELECT (.+) FROM support_programs").
		WithArgs(category, 2, 0).
		WillReturnRows(pgxmock.NewRows(programColumns).
			AddRow(programRow("초기창업패키지")...).
			AddRow(programRow("창업도약패키지")...))
	mock.ExpectCommit()

	page, err := repo.FindWithFilters(context.Background(), domain.ProgramFilters{Category: &category, IncludeClosed: true}, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, page.TotalCount)
	assert.Len(t, page.Programs, 2)
	assert.True(t, page.HasMore)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindProgramsZeroMatchesSkipsPageQuery(t *testing.T) {
	repo, mock := newProgramRepo(t)

	region := "독도"
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM support_programs`).
		WithArgs(region).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(0))
	// No page query follows a zero count; only the commit.
	mock.ExpectCommit()

	page, err := repo.FindWithFilters(context.Background(), domain.ProgramFilters{Region: &region, IncludeClosed: true}, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, page.TotalCount)
	assert.NotNil(t, page.Programs)
	assert.Empty(t, page.Programs)
	assert.False(t, page.HasMore)
	assert.NoError(t, mock.ExpectationsWereMet())
}
