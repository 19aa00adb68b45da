package domain

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType tags what a notification is about.
type NotificationType string

const (
	NotificationRequestReceived NotificationType = "request_received"
	NotificationRequestAccepted NotificationType = "request_accepted"
	NotificationRequestDeclined NotificationType = "request_declined"
	NotificationExpertApproved  NotificationType = "expert_approved"
)

// Notification is a per-user inbox entry. ReferenceID points at the
// originating record (a collaboration request, an expert profile).
type Notification struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Type        NotificationType
	Title       string
	Body        string
	ReferenceID *uuid.UUID
	IsRead      bool
	CreatedAt   time.Time
}

// NewNotification builds an unread notification for the given user.
func NewNotification(userID uuid.UUID, nType NotificationType, title, body string, referenceID *uuid.UUID) *Notification {
	return &Notification{
		ID:          uuid.New(),
		UserID:      userID,
		Type:        nType,
		Title:       title,
		Body:        body,
		ReferenceID: referenceID,
		CreatedAt:   time.Now().UTC(),
	}
}

// NotificationPage is one page of a user's inbox, newest first.
type NotificationPage struct {
	Notifications []Notification
	TotalCount    int
	HasMore       bool
}
