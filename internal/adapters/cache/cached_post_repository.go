package cache

import (
	"context"

	"github.com/google/uuid"

	"github.com/potenlab/the-potential-backend/internal/core/domain"
	"github.com/potenlab/the-potential-backend/internal/core/port"
)

// CachedPostRepository caches board listings and single posts. Creating a post
// drops every cached listing so the new post shows up on the next page load.
type CachedPostRepository struct {
	inner port.PostRepositoryPort
	cache port.QueryCachePort
}

func NewCachedPostRepository(inner port.PostRepositoryPort, cache port.QueryCachePort) *CachedPostRepository {
	return &CachedPostRepository{inner: inner, cache: cache}
}

func (r *CachedPostRepository) Create(ctx context.Context, post *domain.Post) error {
	if err := r.inner.Create(ctx, post); err != nil {
		return err
	}
	r.cache.InvalidatePrefix(KeyPrefix(postsTag, kindList))
	return nil
}

func (r *CachedPostRepository) GetByID(ctx context.Context, postID uuid.UUID) (*domain.Post, error) {
	key := Key(postsTag, kindDetail, postID.String())
	return GetOrFetch(ctx, r.cache, key, func(ctx context.Context) (*domain.Post, error) {
		return r.inner.GetByID(ctx, postID)
	})
}

func (r *CachedPostRepository) ListWithFilters(ctx context.Context, filters domain.PostFilters, limit, offset int) (*domain.PostPage, error) {
	key := Key(postsTag, kindList, filters, limit, offset)
	return GetOrFetch(ctx, r.cache, key, func(ctx context.Context) (*domain.PostPage, error) {
		return r.inner.ListWithFilters(ctx, filters, limit, offset)
	})
}
