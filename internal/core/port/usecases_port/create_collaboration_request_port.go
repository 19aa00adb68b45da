package usecases_port

import (
	"context"

	"github.com/google/uuid"

	"github.com/potenlab/the-potential-backend/internal/core/domain"
)

// CreateCollaborationRequestInput carries the caller-supplied fields of a
// new request. The sender comes from the session, never from the payload.
type CreateCollaborationRequestInput struct {
	ExpertProfileID uuid.UUID
	Type            domain.RequestType
	Subject         string
	Message         string
	ContactInfo     *string
}

type CreateCollaborationRequestUseCasePort interface {
	Execute(ctx context.Context, senderID uuid.UUID, input CreateCollaborationRequestInput) (*domain.CollaborationRequest, error)
}
