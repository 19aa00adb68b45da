package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/potenlab/the-potential-backend/internal/core/domain"
	"github.com/potenlab/the-potential-backend/internal/core/port/usecases_port"
)

func seedExpert(experts *fakeExpertRepo, ownerID uuid.UUID) uuid.UUID {
	profileID := uuid.New()
	experts.experts[profileID] = &domain.ExpertWithProfile{
		ExpertProfile: domain.ExpertProfile{
			ID:           profileID,
			UserID:       ownerID,
			Category:     domain.CategoryFinance,
			BusinessName: "세무법인 한결",
			Status:       domain.ExpertStatusApproved,
		},
		Profile: domain.ProfileSummary{DisplayName: "김세무"},
	}
	return profileID
}

func TestCreateCollaborationRequestHappyPath(t *testing.T) {
	requests := newFakeCollaborationRepo()
	experts := newFakeExpertRepo()
	notifications := &fakeNotificationRepo{}
	publisher := &fakePublisher{}
	counter := newFakeUnreadCounter()

	senderID := uuid.New()
	ownerID := uuid.New()
	profileID := seedExpert(experts, ownerID)
	counter.Set(ownerID, 3)

	uc := NewCreateCollaborationRequestUseCase(requests, experts, notifications, publisher, counter)

	request, err := uc.Execute(context.Background(), senderID, usecases_port.CreateCollaborationRequestInput{
		ExpertProfileID: profileID,
		Type:            domain.RequestTypeCoffeeChat,
		Subject:         "법인 설립 관련 상담",
		Message:         "30분 정도 커피챗 가능하실까요?",
	})
	require.NoError(t, err)

	// The recipient is resolved from the profile owner, not the payload.
	assert.Equal(t, ownerID, request.RecipientID)
	assert.Equal(t, senderID, request.SenderID)
	assert.Equal(t, domain.RequestStatusPending, request.Status)
	require.Len(t, requests.created, 1)

	// The recipient gets an inbox notification and a published event, and
	// their cached unread count is dropped.
	require.Len(t, notifications.created, 1)
	notification := notifications.created[0]
	assert.Equal(t, ownerID, notification.UserID)
	assert.Equal(t, domain.NotificationRequestReceived, notification.Type)
	require.NotNil(t, notification.ReferenceID)
	assert.Equal(t, request.ID, *notification.ReferenceID)

	require.Len(t, publisher.published, 1)
	assert.Same(t, notification, publisher.published[0])

	_, ok := counter.Get(ownerID)
	assert.False(t, ok)
}

func TestCreateCollaborationRequestRejectsUnknownType(t *testing.T) {
	requests := newFakeCollaborationRepo()
	experts := newFakeExpertRepo()
	profileID := seedExpert(experts, uuid.New())

	uc := NewCreateCollaborationRequestUseCase(requests, experts, &fakeNotificationRepo{}, &fakePublisher{}, newFakeUnreadCounter())

	_, err := uc.Execute(context.Background(), uuid.New(), usecases_port.CreateCollaborationRequestInput{
		ExpertProfileID: profileID,
		Type:            domain.RequestType("mentoring"),
		Subject:         "멘토링 요청",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidRequestType)
	assert.Empty(t, requests.created)
}

func TestCreateCollaborationRequestRejectsSelf(t *testing.T) {
	requests := newFakeCollaborationRepo()
	experts := newFakeExpertRepo()
	ownerID := uuid.New()
	profileID := seedExpert(experts, ownerID)

	uc := NewCreateCollaborationRequestUseCase(requests, experts, &fakeNotificationRepo{}, &fakePublisher{}, newFakeUnreadCounter())

	_, err := uc.Execute(context.Background(), ownerID, usecases_port.CreateCollaborationRequestInput{
		ExpertProfileID: profileID,
		Type:            domain.RequestTypeCollaboration,
		Subject:         "협업 제안",
	})
	assert.ErrorIs(t, err, domain.ErrSelfRequest)
	assert.Empty(t, requests.created)
}

func TestCreateCollaborationRequestUnknownExpert(t *testing.T) {
	uc := NewCreateCollaborationRequestUseCase(newFakeCollaborationRepo(), newFakeExpertRepo(), &fakeNotificationRepo{}, &fakePublisher{}, newFakeUnreadCounter())

	_, err := uc.Execute(context.Background(), uuid.New(), usecases_port.CreateCollaborationRequestInput{
		ExpertProfileID: uuid.New(),
		Type:            domain.RequestTypeCoffeeChat,
		Subject:         "상담 요청",
	})
	assert.ErrorIs(t, err, domain.ErrExpertNotFound)
}

func TestCreateCollaborationRequestSurvivesNotificationFailure(t *testing.T) {
	requests := newFakeCollaborationRepo()
	experts := newFakeExpertRepo()
	notifications := &fakeNotificationRepo{createErr: errors.New("insert failed")}
	publisher := &fakePublisher{}
	profileID := seedExpert(experts, uuid.New())

	uc := NewCreateCollaborationRequestUseCase(requests, experts, notifications, publisher, newFakeUnreadCounter())

	request, err := uc.Execute(context.Background(), uuid.New(), usecases_port.CreateCollaborationRequestInput{
		ExpertProfileID: profileID,
		Type:            domain.RequestTypeCollaboration,
		Subject:         "공동 마케팅 제안",
	})

	// The request itself is committed; the lost notification is logged only.
	require.NoError(t, err)
	assert.Equal(t, domain.RequestStatusPending, request.Status)
	assert.Empty(t, publisher.published)
}

func TestCreateCollaborationRequestSurvivesPublishFailure(t *testing.T) {
	requests := newFakeCollaborationRepo()
	experts := newFakeExpertRepo()
	notifications := &fakeNotificationRepo{}
	publisher := &fakePublisher{err: errors.New("broker down")}
	profileID := seedExpert(experts, uuid.New())

	uc := NewCreateCollaborationRequestUseCase(requests, experts, notifications, publisher, newFakeUnreadCounter())

	_, err := uc.Execute(context.Background(), uuid.New(), usecases_port.CreateCollaborationRequestInput{
		ExpertProfileID: profileID,
		Type:            domain.RequestTypeCoffeeChat,
		Subject:         "커피챗 요청",
	})
	require.NoError(t, err)
	require.Len(t, notifications.created, 1)
}
