package usecases_port

import (
	"context"

	"github.com/google/uuid"

	"github.com/potenlab/the-potential-backend/internal/core/domain"
)

type GetExpertDetailsUseCasePort interface {
	Execute(ctx context.Context, expertID uuid.UUID) (*domain.ExpertWithProfile, error)
}
