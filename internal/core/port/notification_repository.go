package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/potenlab/the-potential-backend/internal/core/domain"
)

// NotificationRepositoryPort persists per-user notifications.
type NotificationRepositoryPort interface {
	Create(ctx context.Context, notification *domain.Notification) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) (*domain.NotificationPage, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)

	// MarkRead marks a single notification, guarded by owner identity.
	// Returns domain.ErrNotificationNotFound when nothing matched.
	MarkRead(ctx context.Context, notificationID, userID uuid.UUID) error

	// MarkAllRead marks every unread notification of the user and reports
	// how many rows changed.
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
}

// UnreadCounterPort is the in-process cache of unread-notification counts,
// the server-side analogue of the client's realtime badge counter.
type UnreadCounterPort interface {
	Get(userID uuid.UUID) (int64, bool)
	Set(userID uuid.UUID, count int64)
	Invalidate(userID uuid.UUID)
}
