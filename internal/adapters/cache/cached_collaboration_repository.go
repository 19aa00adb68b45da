package cache

import (
	"context"

	"github.com/google/uuid"

	"github.com/potenlab/the-potential-backend/internal/core/domain"
	"github.com/potenlab/the-potential-backend/internal/core/port"
)

// CachedCollaborationRepository caches the per-user sent/received listings.
// Mutations invalidate only the side the write affects: create and cancel
// touch the sender's "sent" entry, a response touches the recipient's
// "received" entry. No optimistic update happens; the next read refetches.
type CachedCollaborationRepository struct {
	inner port.CollaborationRepositoryPort
	cache port.QueryCachePort
}

func NewCachedCollaborationRepository(inner port.CollaborationRepositoryPort, cache port.QueryCachePort) *CachedCollaborationRepository {
	return &CachedCollaborationRepository{inner: inner, cache: cache}
}

func (r *CachedCollaborationRepository) Create(ctx context.Context, request *domain.CollaborationRequest) error {
	if err := r.inner.Create(ctx, request); err != nil {
		return err
	}
	r.cache.Delete(Key(requestsTag, kindSent, request.SenderID.String()))
	r.cache.Delete(Key(requestsTag, kindReceived, request.RecipientID.String()))
	return nil
}

func (r *CachedCollaborationRepository) GetByID(ctx context.Context, requestID uuid.UUID) (*domain.CollaborationRequest, error) {
	return r.inner.GetByID(ctx, requestID)
}

func (r *CachedCollaborationRepository) UpdateStatusAsRecipient(ctx context.Context, requestID, recipientID uuid.UUID, status domain.RequestStatus) (*domain.CollaborationRequest, error) {
	request, err := r.inner.UpdateStatusAsRecipient(ctx, requestID, recipientID, status)
	if err != nil {
		return nil, err
	}
	r.cache.Delete(Key(requestsTag, kindReceived, recipientID.String()))
	r.cache.Delete(Key(requestsTag, kindSent, request.SenderID.String()))
	return request, nil
}

func (r *CachedCollaborationRepository) CancelAsSender(ctx context.Context, requestID, senderID uuid.UUID) (*domain.CollaborationRequest, error) {
	request, err := r.inner.CancelAsSender(ctx, requestID, senderID)
	if err != nil {
		return nil, err
	}
	r.cache.Delete(Key(requestsTag, kindSent, senderID.String()))
	r.cache.Delete(Key(requestsTag, kindReceived, request.RecipientID.String()))
	return request, nil
}

func (r *CachedCollaborationRepository) ListSent(ctx context.Context, senderID uuid.UUID) ([]domain.CollaborationRequest, error) {
	key := Key(requestsTag, kindSent, senderID.String())
	return GetOrFetch(ctx, r.cache, key, func(ctx context.Context) ([]domain.CollaborationRequest, error) {
		return r.inner.ListSent(ctx, senderID)
	})
}

func (r *CachedCollaborationRepository) ListReceived(ctx context.Context, recipientID uuid.UUID) ([]domain.CollaborationRequest, error) {
	key := Key(requestsTag, kindReceived, recipientID.String())
	return GetOrFetch(ctx, r.cache, key, func(ctx context.Context) ([]domain.CollaborationRequest, error) {
		return r.inner.ListReceived(ctx, recipientID)
	})
}
