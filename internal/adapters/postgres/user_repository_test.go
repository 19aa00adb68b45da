package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/potenlab/the-potential-backend/internal/core/domain"
)

func newUserRepo(t *testing.T) (*UserRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	repo, err := NewUserRepository(mock)
	require.NoError(t, err)
	return repo, mock
}

func storedUser() *domain.User {
	return &domain.User{
		ID:           uuid.New(),
		Email:        "founder@example.com",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		DisplayName:  "박대표",
		Role:         "user",
		CreatedAt:    time.Now().UTC(),
	}
}

func TestCreateUserHappyPath(t *testing.T) {
	repo, mock := newUserRepo(t)
	user := storedUser()

	mock.ExpectExec("INSERT INTO users").
		WithArgs(user.ID, user.Email, user.PasswordHash, user.DisplayName, user.Role, user.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Create(context.Background(), user))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUserUniqueViolationIsEmailInUse(t *testing.T) {
	repo, mock := newUserRepo(t)
	user := storedUser()

	// Two registrations can both pass the pre-insert email check; the
	// loser's insert hits the unique index and must surface as the same
	// email-in-use error the pre-check yields.
	mock.ExpectExec("INSERT INTO users").
		WithArgs(user.ID, user.Email, user.PasswordHash, user.DisplayName, user.Role, user.CreatedAt).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	err := repo.Create(context.Background(), user)
	assert.ErrorIs(t, err, domain.ErrEmailInUse)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByEmailAbsentReturnsNil(t *testing.T) {
	repo, mock := newUserRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE email").
		WithArgs("nobody@example.com").
		WillReturnRows(pgxmock.NewRows([]string{"id", "email", "password_hash", "display_name", "role", "created_at"}))

	user, err := repo.FindByEmail(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, user)
}
