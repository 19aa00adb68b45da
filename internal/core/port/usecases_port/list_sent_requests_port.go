package usecases_port

import (
	"context"

	"github.com/google/uuid"

	"github.com/potenlab/the-potential-backend/internal/core/domain"
)

type ListSentRequestsUseCasePort interface {
	Execute(ctx context.Context, senderID uuid.UUID) ([]domain.CollaborationRequest, error)
}
