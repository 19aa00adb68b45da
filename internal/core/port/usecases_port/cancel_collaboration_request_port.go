package usecases_port

import (
	"context"

	"github.com/google/uuid"

	"github.com/potenlab/the-potential-backend/internal/core/domain"
)

type CancelCollaborationRequestUseCasePort interface {
	Execute(ctx context.Context, requestID, senderID uuid.UUID) (*domain.CollaborationRequest, error)
}
