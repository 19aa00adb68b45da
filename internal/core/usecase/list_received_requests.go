package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/potenlab/the-potential-backend/internal/contextkeys"
	"github.com/potenlab/the-potential-backend/internal/core/domain"
	"github.com/potenlab/the-potential-backend/internal/core/port"
)

type ListReceivedRequestsUseCase struct {
	requests port.CollaborationRepositoryPort
}

func NewListReceivedRequestsUseCase(requests port.CollaborationRepositoryPort) *ListReceivedRequestsUseCase {
	return &ListReceivedRequestsUseCase{requests: requests}
}

func (uc *ListReceivedRequestsUseCase) Execute(ctx context.Context, recipientID uuid.UUID) ([]domain.CollaborationRequest, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "ListReceivedRequests", "recipient_id": recipientID.String()})

	ucLogger.Info("Use case started", nil)

	requests, err := uc.requests.ListReceived(ctx, recipientID)
	if err != nil {
		ucLogger.Error("Repository failed to list received requests", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"count": len(requests)})
	return requests, nil
}
