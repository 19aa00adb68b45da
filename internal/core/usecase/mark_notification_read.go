package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/potenlab/the-potential-backend/internal/contextkeys"
	"github.com/potenlab/the-potential-backend/internal/core/port"
)

type MarkNotificationReadUseCase struct {
	notifications port.NotificationRepositoryPort
	unreadCounter port.UnreadCounterPort
}

func NewMarkNotificationReadUseCase(notifications port.NotificationRepositoryPort, unreadCounter port.UnreadCounterPort) *MarkNotificationReadUseCase {
	return &MarkNotificationReadUseCase{notifications: notifications, unreadCounter: unreadCounter}
}

func (uc *MarkNotificationReadUseCase) Execute(ctx context.Context, notificationID, userID uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":        "MarkNotificationRead",
		"notification_id": notificationID.String(),
		"user_id":         userID.String(),
	})

	ucLogger.Info("Use case started", nil)

	// Guarded by owner identity, so a user cannot mark someone else's
	// notification.
	if err := uc.notifications.MarkRead(ctx, notificationID, userID); err != nil {
		ucLogger.Error("Repository failed to mark notification read", err, nil)
		return err
	}

	uc.unreadCounter.Invalidate(userID)
	ucLogger.Info("Use case finished successfully", nil)
	return nil
}
