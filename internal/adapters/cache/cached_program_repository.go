package cache

import (
	"context"

	"github.com/potenlab/the-potential-backend/internal/core/domain"
	"github.com/potenlab/the-potential-backend/internal/core/port"
)

// CachedProgramRepository is a read-through decorator for the support-program
// listing. Programs are ingested out of band, so entries simply age out on TTL.
type CachedProgramRepository struct {
	inner port.ProgramRepositoryPort
	cache port.QueryCachePort
}

func NewCachedProgramRepository(inner port.ProgramRepositoryPort, cache port.QueryCachePort) *CachedProgramRepository {
	return &CachedProgramRepository{inner: inner, cache: cache}
}

func (r *CachedProgramRepository) FindWithFilters(ctx context.Context, filters domain.ProgramFilters, limit, offset int) (*domain.ProgramPage, error) {
	key := Key(programsTag, kindList, filters, limit, offset)
	return GetOrFetch(ctx, r.cache, key, func(ctx context.Context) (*domain.ProgramPage, error) {
		return r.inner.FindWithFilters(ctx, filters, limit, offset)
	})
}
