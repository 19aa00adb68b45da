package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/potenlab/the-potential-backend/internal/contextkeys"
	"github.com/potenlab/the-potential-backend/internal/core/domain"
	"github.com/potenlab/the-potential-backend/internal/core/port"
)

type ListSentRequestsUseCase struct {
	requests port.CollaborationRepositoryPort
}

func NewListSentRequestsUseCase(requests port.CollaborationRepositoryPort) *ListSentRequestsUseCase {
	return &ListSentRequestsUseCase{requests: requests}
}

func (uc *ListSentRequestsUseCase) Execute(ctx context.Context, senderID uuid.UUID) ([]domain.CollaborationRequest, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "ListSentRequests", "sender_id": senderID.String()})

	ucLogger.Info("Use case started", nil)

	requests, err := uc.requests.ListSent(ctx, senderID)
	if err != nil {
		ucLogger.Error("Repository failed to list sent requests", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"count": len(requests)})
	return requests, nil
}
