package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/potenlab/the-potential-backend/internal/core/domain"
)

// PostRepositoryPort persists community board posts.
type PostRepositoryPort interface {
	Create(ctx context.Context, post *domain.Post) error
	GetByID(ctx context.Context, postID uuid.UUID) (*domain.Post, error)
	ListWithFilters(ctx context.Context, filters domain.PostFilters, limit, offset int) (*domain.PostPage, error)
}
