package usecases_port

import (
	"context"

	"github.com/google/uuid"

	"github.com/potenlab/the-potential-backend/internal/core/domain"
)

type RespondCollaborationRequestUseCasePort interface {
	Execute(ctx context.Context, requestID, recipientID uuid.UUID, action domain.ResponseAction) (*domain.CollaborationRequest, error)
}
