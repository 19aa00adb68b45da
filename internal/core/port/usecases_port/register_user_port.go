package usecases_port

import (
	"context"

	"github.com/potenlab/the-potential-backend/internal/core/domain"
)

type RegisterUserUseCasePort interface {
	Execute(ctx context.Context, email, password, displayName string) (*domain.User, error)
}
