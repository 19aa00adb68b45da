package constants

// Exchange the backend publishes domain events onto.
const MainExchange = "the_potential_events"

// Routing keys.
const (
	RoutingKeyNotificationCreated = "notification.created"
)

// Event contract identifiers used for schema validation.
const (
	EventNotificationCreated        = "NotificationCreatedEvent"
	EventNotificationCreatedVersion = "1.0.0"
)
