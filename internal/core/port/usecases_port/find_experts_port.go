package usecases_port

import (
	"context"

	"github.com/potenlab/the-potential-backend/internal/core/domain"
)

type FindExpertsUseCasePort interface {
	Execute(ctx context.Context, params domain.ExpertSearchParams) (*domain.ExpertListResult, error)
}
