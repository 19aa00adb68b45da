package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/potenlab/the-potential-backend/internal/contextkeys"
	"github.com/potenlab/the-potential-backend/internal/core/domain"
	"github.com/potenlab/the-potential-backend/internal/core/port"
)

type CancelCollaborationRequestUseCase struct {
	requests port.CollaborationRepositoryPort
}

func NewCancelCollaborationRequestUseCase(requests port.CollaborationRepositoryPort) *CancelCollaborationRequestUseCase {
	return &CancelCollaborationRequestUseCase{requests: requests}
}

func (uc *CancelCollaborationRequestUseCase) Execute(ctx context.Context, requestID, senderID uuid.UUID) (*domain.CollaborationRequest, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "CancelCollaborationRequest",
		"request_id": requestID.String(),
		"sender_id":  senderID.String(),
	})

	ucLogger.Info("Use case started", nil)

	// Guarded by sender identity and status = pending; a request the
	// recipient already resolved cannot be cancelled.
	request, err := uc.requests.CancelAsSender(ctx, requestID, senderID)
	if err != nil {
		ucLogger.Error("Guarded cancel failed", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return request, nil
}
