package rabbitmq

import (
	"context"

	"github.com/potenlab/the-potential-backend/internal/core/domain"
	"github.com/potenlab/the-potential-backend/internal/core/port"
)

// NoopNotificationPublisher stands in when the broker is disabled, so the
// use cases never have to check for a nil publisher.
type NoopNotificationPublisher struct{}

func NewNoopNotificationPublisher() port.NotificationPublisherPort {
	return &NoopNotificationPublisher{}
}

func (p *NoopNotificationPublisher) PublishNotificationCreated(ctx context.Context, notification *domain.Notification) error {
	return nil
}
