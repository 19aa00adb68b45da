package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/potenlab/the-potential-backend/internal/core/domain"
)

func seedPendingRequest(requests *fakeCollaborationRepo, senderID, recipientID uuid.UUID) *domain.CollaborationRequest {
	request := domain.NewCollaborationRequest(
		senderID, recipientID, uuid.New(),
		domain.RequestTypeCoffeeChat, "세무 상담 요청", "30분 정도 가능하실까요?", nil,
	)
	requests.byID[request.ID] = request
	return request
}

func TestRespondAcceptNotifiesSender(t *testing.T) {
	requests := newFakeCollaborationRepo()
	notifications := &fakeNotificationRepo{}
	publisher := &fakePublisher{}
	counter := newFakeUnreadCounter()

	senderID := uuid.New()
	recipientID := uuid.New()
	pending := seedPendingRequest(requests, senderID, recipientID)
	counter.Set(senderID, 1)

	uc := NewRespondCollaborationRequestUseCase(requests, notifications, publisher, counter)

	request, err := uc.Execute(context.Background(), pending.ID, recipientID, domain.ResponseAccept)
	require.NoError(t, err)
	assert.Equal(t, domain.RequestStatusAccepted, request.Status)

	require.Len(t, notifications.created, 1)
	notification := notifications.created[0]
	assert.Equal(t, senderID, notification.UserID)
	assert.Equal(t, domain.NotificationRequestAccepted, notification.Type)
	require.NotNil(t, notification.ReferenceID)
	assert.Equal(t, pending.ID, *notification.ReferenceID)

	require.Len(t, publisher.published, 1)
	_, ok := counter.Get(senderID)
	assert.False(t, ok, "sender's cached unread count should be invalidated")
}

func TestRespondDeclineUsesDeclinedNotification(t *testing.T) {
	requests := newFakeCollaborationRepo()
	notifications := &fakeNotificationRepo{}

	recipientID := uuid.New()
	pending := seedPendingRequest(requests, uuid.New(), recipientID)

	uc := NewRespondCollaborationRequestUseCase(requests, notifications, &fakePublisher{}, newFakeUnreadCounter())

	request, err := uc.Execute(context.Background(), pending.ID, recipientID, domain.ResponseDecline)
	require.NoError(t, err)
	assert.Equal(t, domain.RequestStatusDeclined, request.Status)

	require.Len(t, notifications.created, 1)
	assert.Equal(t, domain.NotificationRequestDeclined, notifications.created[0].Type)
}

func TestRespondRejectsUnknownAction(t *testing.T) {
	requests := newFakeCollaborationRepo()
	recipientID := uuid.New()
	pending := seedPendingRequest(requests, uuid.New(), recipientID)

	uc := NewRespondCollaborationRequestUseCase(requests, &fakeNotificationRepo{}, &fakePublisher{}, newFakeUnreadCounter())

	_, err := uc.Execute(context.Background(), pending.ID, recipientID, domain.ResponseAction("cancel"))
	assert.ErrorIs(t, err, domain.ErrInvalidResponseAction)
	assert.Equal(t, domain.RequestStatusPending, pending.Status)
}

func TestRespondAlreadyResolvedLosesGuard(t *testing.T) {
	requests := newFakeCollaborationRepo()
	notifications := &fakeNotificationRepo{}

	recipientID := uuid.New()
	pending := seedPendingRequest(requests, uuid.New(), recipientID)

	uc := NewRespondCollaborationRequestUseCase(requests, notifications, &fakePublisher{}, newFakeUnreadCounter())

	_, err := uc.Execute(context.Background(), pending.ID, recipientID, domain.ResponseAccept)
	require.NoError(t, err)

	// A second accept races a resolved row and loses the guard.
	_, err = uc.Execute(context.Background(), pending.ID, recipientID, domain.ResponseAccept)
	assert.ErrorIs(t, err, domain.ErrRequestNotFound)
	assert.Len(t, notifications.created, 1)
}

func TestRespondWrongRecipientLosesGuard(t *testing.T) {
	requests := newFakeCollaborationRepo()
	pending := seedPendingRequest(requests, uuid.New(), uuid.New())

	uc := NewRespondCollaborationRequestUseCase(requests, &fakeNotificationRepo{}, &fakePublisher{}, newFakeUnreadCounter())

	// An outsider gets the same answer as a missing request.
	_, err := uc.Execute(context.Background(), pending.ID, uuid.New(), domain.ResponseAccept)
	assert.ErrorIs(t, err, domain.ErrRequestNotFound)
	assert.Equal(t, domain.RequestStatusPending, pending.Status)
}

func TestCancelAsSenderHappyAndGuardedPaths(t *testing.T) {
	requests := newFakeCollaborationRepo()
	senderID := uuid.New()
	pending := seedPendingRequest(requests, senderID, uuid.New())

	uc := NewCancelCollaborationRequestUseCase(requests)

	request, err := uc.Execute(context.Background(), pending.ID, senderID)
	require.NoError(t, err)
	assert.Equal(t, domain.RequestStatusCancelled, request.Status)

	// Cancelling twice, or as anyone but the sender, loses the guard.
	_, err = uc.Execute(context.Background(), pending.ID, senderID)
	assert.ErrorIs(t, err, domain.ErrRequestNotFound)
}
