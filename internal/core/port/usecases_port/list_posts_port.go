package usecases_port

import (
	"context"

	"github.com/potenlab/the-potential-backend/internal/core/domain"
)

type ListPostsUseCasePort interface {
	Execute(ctx context.Context, filters domain.PostFilters, limit, offset int) (*domain.PostPage, error)
}
