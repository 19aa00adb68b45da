package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/potenlab/the-potential-backend/internal/core/domain"
)

// CollaborationRepositoryPort persists collaboration requests. The two
// transition methods are guarded conditional updates: they only take effect
// if the row is still pending AND belongs to the given actor. A failed guard
// surfaces as domain.ErrRequestNotFound.
type CollaborationRepositoryPort interface {
	Create(ctx context.Context, request *domain.CollaborationRequest) error

	GetByID(ctx context.Context, requestID uuid.UUID) (*domain.CollaborationRequest, error)

	// UpdateStatusAsRecipient applies pending -> accepted|declined,
	// guarded by recipient identity and current status = pending.
	UpdateStatusAsRecipient(ctx context.Context, requestID, recipientID uuid.UUID, status domain.RequestStatus) (*domain.CollaborationRequest, error)

	// CancelAsSender applies pending -> cancelled, guarded by sender
	// identity and current status = pending.
	CancelAsSender(ctx context.Context, requestID, senderID uuid.UUID) (*domain.CollaborationRequest, error)

	// ListSent and ListReceived return requests ordered created_at DESC.
	ListSent(ctx context.Context, senderID uuid.UUID) ([]domain.CollaborationRequest, error)
	ListReceived(ctx context.Context, recipientID uuid.UUID) ([]domain.CollaborationRequest, error)
}
