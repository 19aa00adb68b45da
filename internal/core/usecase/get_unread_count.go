package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/potenlab/the-potential-backend/internal/contextkeys"
	"github.com/potenlab/the-potential-backend/internal/core/port"
)

type GetUnreadCountUseCase struct {
	notifications port.NotificationRepositoryPort
	unreadCounter port.UnreadCounterPort
}

func NewGetUnreadCountUseCase(notifications port.NotificationRepositoryPort, unreadCounter port.UnreadCounterPort) *GetUnreadCountUseCase {
	return &GetUnreadCountUseCase{notifications: notifications, unreadCounter: unreadCounter}
}

func (uc *GetUnreadCountUseCase) Execute(ctx context.Context, userID uuid.UUID) (int64, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "GetUnreadCount", "user_id": userID.String()})

	if count, ok := uc.unreadCounter.Get(userID); ok {
		ucLogger.Debug("Unread count served from counter cache", port.Fields{"count": count})
		return count, nil
	}

	count, err := uc.notifications.CountUnread(ctx, userID)
	if err != nil {
		ucLogger.Error("Repository failed to count unread notifications", err, nil)
		return 0, err
	}

	uc.unreadCounter.Set(userID, count)
	ucLogger.Debug("Unread count primed from repository", port.Fields{"count": count})
	return count, nil
}
