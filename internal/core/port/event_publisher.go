package port

import (
	"context"

	"github.com/potenlab/the-potential-backend/internal/core/domain"
)

// NotificationPublisherPort fans a freshly created notification out to
// external consumers (mail, websocket gateway). Publishing is best-effort:
// the notification row is already committed when this is called.
type NotificationPublisherPort interface {
	PublishNotificationCreated(ctx context.Context, notification *domain.Notification) error
}
