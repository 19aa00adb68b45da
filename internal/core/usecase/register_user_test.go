package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/potenlab/the-potential-backend/internal/core/domain"
)

type fakeUserRepo struct {
	byEmail   map[string]*domain.User
	createErr error
	created   []*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*domain.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.byEmail[user.Email] = user
	f.created = append(f.created, user)
	return nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	return f.byEmail[email], nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, userID uuid.UUID) (*domain.User, error) {
	for _, u := range f.byEmail {
		if u.ID == userID {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func TestRegisterUserHappyPath(t *testing.T) {
	users := newFakeUserRepo()
	uc := NewRegisterUserUseCase(users)

	user, err := uc.Execute(context.Background(), "founder@example.com", "correct horse battery", "박대표")
	require.NoError(t, err)
	assert.Equal(t, "founder@example.com", user.Email)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "correct horse battery", user.PasswordHash)
	require.Len(t, users.created, 1)
}

func TestRegisterUserRejectsKnownEmail(t *testing.T) {
	users := newFakeUserRepo()
	uc := NewRegisterUserUseCase(users)

	_, err := uc.Execute(context.Background(), "founder@example.com", "first password", "박대표")
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), "founder@example.com", "second password", "다른사람")
	assert.ErrorIs(t, err, domain.ErrEmailInUse)
	assert.Len(t, users.created, 1)
}

func TestRegisterUserInsertRaceSurfacesEmailInUse(t *testing.T) {
	// The pre-insert check passes but a concurrent registration lands
	// first; the repository reports the unique violation as email-in-use
	// and the use case must not blur it into a generic failure.
	users := newFakeUserRepo()
	users.createErr = domain.ErrEmailInUse
	uc := NewRegisterUserUseCase(users)

	_, err := uc.Execute(context.Background(), "founder@example.com", "correct horse battery", "박대표")
	assert.ErrorIs(t, err, domain.ErrEmailInUse)
}
