package cache

import (
	"context"

	"github.com/google/uuid"

	"github.com/potenlab/the-potential-backend/internal/contextkeys"
	"github.com/potenlab/the-potential-backend/internal/core/domain"
	"github.com/potenlab/the-potential-backend/internal/core/port"
)

// Cache key domains. Lists and details are separate families so either can
// be invalidated wholesale without touching the other.
const (
	expertsTag  = "experts"
	requestsTag = "collab_requests"
	programsTag = "programs"
	postsTag    = "posts"

	kindList     = "list"
	kindDetail   = "detail"
	kindSent     = "sent"
	kindReceived = "received"
)

// CachedExpertRepository is a read-through decorator over the postgres
// expert repository. Every distinct normalized parameter set gets its own
// cache entry; any profile write wipes the whole list family and the
// profile's detail entry.
type CachedExpertRepository struct {
	inner port.ExpertRepositoryPort
	cache port.QueryCachePort
}

func NewCachedExpertRepository(inner port.ExpertRepositoryPort, cache port.QueryCachePort) *CachedExpertRepository {
	return &CachedExpertRepository{inner: inner, cache: cache}
}

func (r *CachedExpertRepository) FindWithFilters(ctx context.Context, params domain.ExpertSearchParams) (*domain.ExpertListResult, error) {
	key := Key(expertsTag, kindList, params)
	return GetOrFetch(ctx, r.cache, key, func(ctx context.Context) (*domain.ExpertListResult, error) {
		return r.inner.FindWithFilters(ctx, params)
	})
}

func (r *CachedExpertRepository) GetByID(ctx context.Context, expertID uuid.UUID) (*domain.ExpertWithProfile, error) {
	key := Key(expertsTag, kindDetail, expertID.String())
	return GetOrFetch(ctx, r.cache, key, func(ctx context.Context) (*domain.ExpertWithProfile, error) {
		return r.inner.GetByID(ctx, expertID)
	})
}

func (r *CachedExpertRepository) Upsert(ctx context.Context, userID uuid.UUID, draft domain.ExpertProfileDraft) (*domain.ExpertProfile, error) {
	profile, err := r.inner.Upsert(ctx, userID, draft)
	if err != nil {
		return nil, err
	}

	logger := contextkeys.LoggerFromContext(ctx)
	logger.Debug("Invalidating expert cache after upsert", port.Fields{
		"component": "CachedExpertRepository",
		"expert_id": profile.ID.String(),
	})

	r.cache.InvalidatePrefix(KeyPrefix(expertsTag, kindList))
	r.cache.Delete(Key(expertsTag, kindDetail, profile.ID.String()))
	return profile, nil
}
