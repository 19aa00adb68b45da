package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/potenlab/the-potential-backend/internal/contextkeys"
	"github.com/potenlab/the-potential-backend/internal/core/domain"
	"github.com/potenlab/the-potential-backend/internal/core/port"
)

type RespondCollaborationRequestUseCase struct {
	requests      port.CollaborationRepositoryPort
	notifications port.NotificationRepositoryPort
	publisher     port.NotificationPublisherPort
	unreadCounter port.UnreadCounterPort
}

func NewRespondCollaborationRequestUseCase(
	requests port.CollaborationRepositoryPort,
	notifications port.NotificationRepositoryPort,
	publisher port.NotificationPublisherPort,
	unreadCounter port.UnreadCounterPort,
) *RespondCollaborationRequestUseCase {
	return &RespondCollaborationRequestUseCase{
		requests:      requests,
		notifications: notifications,
		publisher:     publisher,
		unreadCounter: unreadCounter,
	}
}

func (uc *RespondCollaborationRequestUseCase) Execute(ctx context.Context, requestID, recipientID uuid.UUID, action domain.ResponseAction) (*domain.CollaborationRequest, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":     "RespondCollaborationRequest",
		"request_id":   requestID.String(),
		"recipient_id": recipientID.String(),
		"action":       action,
	})

	ucLogger.Info("Use case started", nil)

	status, ok := action.StatusFor()
	if !ok {
		ucLogger.Warn("Rejecting unknown response action", nil)
		return nil, domain.ErrInvalidResponseAction
	}

	// The repository update is conditioned on recipient identity and
	// current status = pending. Two concurrent accepts race this guard and
	// only one can win; the loser gets ErrRequestNotFound.
	request, err := uc.requests.UpdateStatusAsRecipient(ctx, requestID, recipientID, status)
	if err != nil {
		ucLogger.Error("Guarded status update failed", err, nil)
		return nil, err
	}

	nType := domain.NotificationRequestAccepted
	title := "협업 요청이 수락되었습니다"
	if status == domain.RequestStatusDeclined {
		nType = domain.NotificationRequestDeclined
		title = "협업 요청이 거절되었습니다"
	}

	notification := domain.NewNotification(
		request.SenderID, nType, title,
		fmt.Sprintf("「%s」 요청에 대한 답변이 도착했습니다", request.Subject),
		&request.ID,
	)
	if err := uc.notifications.Create(ctx, notification); err != nil {
		ucLogger.Error("Failed to create notification for sender", err, nil)
	} else {
		uc.unreadCounter.Invalidate(request.SenderID)
		if err := uc.publisher.PublishNotificationCreated(ctx, notification); err != nil {
			ucLogger.Warn("Failed to publish notification event", port.Fields{"error": err.Error()})
		}
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"new_status": request.Status})
	return request, nil
}
