package usecases_port

import (
	"context"

	"github.com/google/uuid"

	"github.com/potenlab/the-potential-backend/internal/core/domain"
)

type ListReceivedRequestsUseCasePort interface {
	Execute(ctx context.Context, recipientID uuid.UUID) ([]domain.CollaborationRequest, error)
}
