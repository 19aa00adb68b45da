package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/potenlab/the-potential-backend/internal/core/domain"
)

// UserRepositoryPort persists platform accounts.
type UserRepositoryPort interface {
	Create(ctx context.Context, user *domain.User) error

	// FindByEmail returns (nil, nil) when no user exists with that email.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)

	FindByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
}
