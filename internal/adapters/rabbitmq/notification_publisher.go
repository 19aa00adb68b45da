package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/potenlab/the-potential-backend/internal/constants"
	"github.com/potenlab/the-potential-backend/internal/contextkeys"
	"github.com/potenlab/the-potential-backend/internal/contracts"
	"github.com/potenlab/the-potential-backend/internal/core/domain"
	"github.com/potenlab/the-potential-backend/internal/core/port"
	"github.com/potenlab/the-potential-backend/pkg/rabbitmq/rabbitmq_producer"
)

// notificationEvent is the wire shape of a published notification.
type notificationEvent struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	Type        string  `json:"type"`
	Title       string  `json:"title"`
	Body        string  `json:"body"`
	ReferenceID *string `json:"reference_id,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

// NotificationPublisherAdapter implements NotificationPublisherPort on RabbitMQ.
type NotificationPublisherAdapter struct {
	producer *rabbitmq_producer.Publisher
}

func NewNotificationPublisherAdapter(producer *rabbitmq_producer.Publisher) (*NotificationPublisherAdapter, error) {
	if producer == nil {
		return nil, fmt.Errorf("rabbitmq adapter: producer cannot be nil")
	}
	return &NotificationPublisherAdapter{producer: producer}, nil
}

// PublishNotificationCreated validates the event against its contract and
// publishes it with the notification routing key.
func (a *NotificationPublisherAdapter) PublishNotificationCreated(ctx context.Context, notification *domain.Notification) error {
	logger := contextkeys.LoggerFromContext(ctx)
	adapterLogger := logger.WithFields(port.Fields{
		"component":       "NotificationPublisherAdapter",
		"routing_key":     constants.RoutingKeyNotificationCreated,
		"notification_id": notification.ID.String(),
		"user_id":         notification.UserID.String(),
	})

	event := notificationEvent{
		ID:        notification.ID.String(),
		UserID:    notification.UserID.String(),
		Type:      string(notification.Type),
		Title:     notification.Title,
		Body:      notification.Body,
		CreatedAt: notification.CreatedAt.Format(time.RFC3339),
	}
	if notification.ReferenceID != nil {
		refID := notification.ReferenceID.String()
		event.ReferenceID = &refID
	}

	eventJSON, err := json.Marshal(event)
	if err != nil {
		adapterLogger.Error("Failed to marshal notification event", err, nil)
		return fmt.Errorf("rabbitmq adapter: failed to marshal notification event: %w", err)
	}

	if err := contracts.ValidateEvent(constants.EventNotificationCreated, constants.EventNotificationCreatedVersion, eventJSON); err != nil {
		adapterLogger.Error("Notification event failed contract validation", err, nil)
		return fmt.Errorf("rabbitmq adapter: event contract violation: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		Body:         eventJSON,
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Headers:      make(amqp.Table),
	}

	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		msg.Headers["x-trace-id"] = traceID
	}

	publishCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := a.producer.Publish(publishCtx, constants.RoutingKeyNotificationCreated, msg); err != nil {
		adapterLogger.Error("Failed to publish notification event", err, nil)
		return fmt.Errorf("rabbitmq adapter: failed to publish notification event: %w", err)
	}

	adapterLogger.Info("Published notification event", nil)
	return nil
}
