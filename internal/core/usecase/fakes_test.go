package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/potenlab/the-potential-backend/internal/core/domain"
)

// In-memory collaborators for use case tests. They implement only what the
// tested use cases touch and record enough to assert on.

type fakeCollaborationRepo struct {
	created    []*domain.CollaborationRequest
	byID       map[uuid.UUID]*domain.CollaborationRequest
	createErr  error
	updateErr  error
	lastStatus domain.RequestStatus
}

func newFakeCollaborationRepo() *fakeCollaborationRepo {
	return &fakeCollaborationRepo{byID: make(map[uuid.UUID]*domain.CollaborationRequest)}
}

func (f *fakeCollaborationRepo) Create(_ context.Context, request *domain.CollaborationRequest) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, request)
	f.byID[request.ID] = request
	return nil
}

func (f *fakeCollaborationRepo) GetByID(_ context.Context, requestID uuid.UUID) (*domain.CollaborationRequest, error) {
	request, ok := f.byID[requestID]
	if !ok {
		return nil, domain.ErrRequestNotFound
	}
	return request, nil
}

func (f *fakeCollaborationRepo) UpdateStatusAsRecipient(_ context.Context, requestID, recipientID uuid.UUID, status domain.RequestStatus) (*domain.CollaborationRequest, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	request, ok := f.byID[requestID]
	if !ok || request.RecipientID != recipientID || request.Status != domain.RequestStatusPending {
		return nil, domain.ErrRequestNotFound
	}
	request.Status = status
	f.lastStatus = status
	return request, nil
}

func (f *fakeCollaborationRepo) CancelAsSender(_ context.Context, requestID, senderID uuid.UUID) (*domain.CollaborationRequest, error) {
	request, ok := f.byID[requestID]
	if !ok || request.SenderID != senderID || request.Status != domain.RequestStatusPending {
		return nil, domain.ErrRequestNotFound
	}
	request.Status = domain.RequestStatusCancelled
	return request, nil
}

func (f *fakeCollaborationRepo) ListSent(_ context.Context, senderID uuid.UUID) ([]domain.CollaborationRequest, error) {
	var out []domain.CollaborationRequest
	for _, r := range f.byID {
		if r.SenderID == senderID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeCollaborationRepo) ListReceived(_ context.Context, recipientID uuid.UUID) ([]domain.CollaborationRequest, error) {
	var out []domain.CollaborationRequest
	for _, r := range f.byID {
		if r.RecipientID == recipientID {
			out = append(out, *r)
		}
	}
	return out, nil
}

type fakeExpertRepo struct {
	experts map[uuid.UUID]*domain.ExpertWithProfile
}

func newFakeExpertRepo() *fakeExpertRepo {
	return &fakeExpertRepo{experts: make(map[uuid.UUID]*domain.ExpertWithProfile)}
}

func (f *fakeExpertRepo) FindWithFilters(_ context.Context, _ domain.ExpertSearchParams) (*domain.ExpertListResult, error) {
	return &domain.ExpertListResult{Experts: []domain.ExpertWithProfile{}}, nil
}

func (f *fakeExpertRepo) GetByID(_ context.Context, expertID uuid.UUID) (*domain.ExpertWithProfile, error) {
	expert, ok := f.experts[expertID]
	if !ok {
		return nil, domain.ErrExpertNotFound
	}
	return expert, nil
}

func (f *fakeExpertRepo) Upsert(_ context.Context, _ uuid.UUID, _ domain.ExpertProfileDraft) (*domain.ExpertProfile, error) {
	return nil, errors.New("not implemented")
}

type fakeNotificationRepo struct {
	created   []*domain.Notification
	createErr error
}

func (f *fakeNotificationRepo) Create(_ context.Context, notification *domain.Notification) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, notification)
	return nil
}

func (f *fakeNotificationRepo) ListByUser(_ context.Context, _ uuid.UUID, _, _ int) (*domain.NotificationPage, error) {
	return &domain.NotificationPage{Notifications: []domain.Notification{}}, nil
}

func (f *fakeNotificationRepo) CountUnread(_ context.Context, _ uuid.UUID) (int64, error) {
	return int64(len(f.created)), nil
}

func (f *fakeNotificationRepo) MarkRead(_ context.Context, _, _ uuid.UUID) error {
	return nil
}

func (f *fakeNotificationRepo) MarkAllRead(_ context.Context, _ uuid.UUID) (int64, error) {
	return 0, nil
}

type fakePublisher struct {
	published []*domain.Notification
	err       error
}

func (f *fakePublisher) PublishNotificationCreated(_ context.Context, notification *domain.Notification) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, notification)
	return nil
}

type fakeUnreadCounter struct {
	counts      map[uuid.UUID]int64
	invalidated []uuid.UUID
}

func newFakeUnreadCounter() *fakeUnreadCounter {
	return &fakeUnreadCounter{counts: make(map[uuid.UUID]int64)}
}

func (f *fakeUnreadCounter) Get(userID uuid.UUID) (int64, bool) {
	count, ok := f.counts[userID]
	return count, ok
}

func (f *fakeUnreadCounter) Set(userID uuid.UUID, count int64) {
	f.counts[userID] = count
}

func (f *fakeUnreadCounter) Invalidate(userID uuid.UUID) {
	delete(f.counts, userID)
	f.invalidated = append(f.invalidated, userID)
}
