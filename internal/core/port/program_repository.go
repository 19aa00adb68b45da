package port

import (
	"context"

	"github.com/potenlab/the-potential-backend/internal/core/domain"
)

// ProgramRepositoryPort reads support-program listings.
type ProgramRepositoryPort interface {
	FindWithFilters(ctx context.Context, filters domain.ProgramFilters, limit, offset int) (*domain.ProgramPage, error)
}
