package usecases_port

import (
	"context"

	"github.com/potenlab/the-potential-backend/internal/core/domain"
)

type LoginUserUseCasePort interface {
	Execute(ctx context.Context, email, password string) (*domain.User, string, error)
}
