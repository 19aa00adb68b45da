package domain

import (
	"time"

	"github.com/google/uuid"
)

// RequestType distinguishes a short coffee chat from a full collaboration proposal.
type RequestType string

const (
	RequestTypeCoffeeChat    RequestType = "coffee_chat"
	RequestTypeCollaboration RequestType = "collaboration"
)

// RequestStatus is the lifecycle state of a collaboration request.
// pending -> accepted | declined (recipient), pending -> cancelled (sender).
// Resolved requests never change again.
type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusAccepted  RequestStatus = "accepted"
	RequestStatusDeclined  RequestStatus = "declined"
	RequestStatusCancelled RequestStatus = "cancelled"
)

// CollaborationRequest is a directed message from one user to another,
// typically toward an expert.
type CollaborationRequest struct {
	ID              uuid.UUID
	SenderID        uuid.UUID
	RecipientID     uuid.UUID
	ExpertProfileID uuid.UUID
	Type            RequestType
	Subject         string
	Message         string
	ContactInfo     *string
	Status          RequestStatus
	CreatedAt       time.Time
	RespondedAt     *time.Time
}

// NewCollaborationRequest builds a pending request ready for insertion.
func NewCollaborationRequest(senderID, recipientID, expertProfileID uuid.UUID,
	reqType RequestType, subject, message string, contactInfo *string) *CollaborationRequest {

	return &CollaborationRequest{
		ID:              uuid.New(),
		SenderID:        senderID,
		RecipientID:     recipientID,
		ExpertProfileID: expertProfileID,
		Type:            reqType,
		Subject:         subject,
		Message:         message,
		ContactInfo:     contactInfo,
		Status:          RequestStatusPending,
		CreatedAt:       time.Now().UTC(),
	}
}

// ResponseAction is what a recipient can do with a pending request.
type ResponseAction string

const (
	ResponseAccept  ResponseAction = "accept"
	ResponseDecline ResponseAction = "decline"
)

// StatusFor maps the recipient's action onto the resulting request status.
func (a ResponseAction) StatusFor() (RequestStatus, bool) {
	switch a {
	case ResponseAccept:
		return RequestStatusAccepted, true
	case ResponseDecline:
		return RequestStatusDeclined, true
	}
	return "", false
}
