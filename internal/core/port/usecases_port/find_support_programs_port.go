package usecases_port

import (
	"context"

	"github.com/potenlab/the-potential-backend/internal/core/domain"
)

type FindSupportProgramsUseCasePort interface {
	Execute(ctx context.Context, filters domain.ProgramFilters, limit, offset int) (*domain.ProgramPage, error)
}
