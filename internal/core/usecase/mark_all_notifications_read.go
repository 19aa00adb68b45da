package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/potenlab/the-potential-backend/internal/contextkeys"
	"github.com/potenlab/the-potential-backend/internal/core/port"
)

type MarkAllNotificationsReadUseCase struct {
	notifications port.NotificationRepositoryPort
	unreadCounter port.UnreadCounterPort
}

func NewMarkAllNotificationsReadUseCase(notifications port.NotificationRepositoryPort, unreadCounter port.UnreadCounterPort) *MarkAllNotificationsReadUseCase {
	return &MarkAllNotificationsReadUseCase{notifications: notifications, unreadCounter: unreadCounter}
}

func (uc *MarkAllNotificationsReadUseCase) Execute(ctx context.Context, userID uuid.UUID) (int64, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "MarkAllNotificationsRead", "user_id": userID.String()})

	ucLogger.Info("Use case started", nil)

	marked, err := uc.notifications.MarkAllRead(ctx, userID)
	if err != nil {
		ucLogger.Error("Repository failed to mark all notifications read", err, nil)
		return 0, err
	}

	uc.unreadCounter.Set(userID, 0)
	ucLogger.Info("Use case finished successfully", port.Fields{"marked": marked})
	return marked, nil
}
