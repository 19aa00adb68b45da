package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/potenlab/the-potential-backend/internal/core/domain"
)

var requestColumns = []string{
	"id", "sender_id", "recipient_id", "expert_profile_id", "type", "subject",
	"message", "contact_info", "status", "created_at", "responded_at",
}

func newCollaborationRepo(t *testing.T) (*CollaborationRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	repo, err := NewCollaborationRepository(mock)
	require.NoError(t, err)
	return repo, mock
}

func TestCreateInsertsPendingRequest(t *testing.T) {
	repo, mock := newCollaborationRepo(t)

	request := domain.NewCollaborationRequest(
		uuid.New(), uuid.New(), uuid.New(),
		domain.RequestTypeCollaboration, "협업 제안", "함께 일해요", nil)

	mock.ExpectExec("INSERT INTO collaboration_requests").
		WithArgs(request.ID, request.SenderID, request.RecipientID,
			request.ExpertProfileID, "collaboration", request.Subject,
			request.Message, request.ContactInfo, "pending", request.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.Create(context.Background(), request)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatusAsRecipientHappyPath(t *testing.T) {
	repo, mock := newCollaborationRepo(t)

	requestID := uuid.New()
	senderID := uuid.New()
	recipientID := uuid.New()
	respondedAt := time.Now().UTC()

	mock.ExpectQuery("UPDATE collaboration_requests").
		WithArgs("accepted", requestID, recipientID).
		WillReturnRows(pgxmock.NewRows(requestColumns).AddRow(
			requestID, senderID, recipientID, uuid.New(),
			domain.RequestTypeCoffeeChat, "커피챗", "내용", (*string)(nil),
			domain.RequestStatusAccepted, time.Now().UTC(), &respondedAt,
		))

	request, err := repo.UpdateStatusAsRecipient(context.Background(), requestID, recipientID, domain.RequestStatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, domain.RequestStatusAccepted, request.Status)
	assert.NotNil(t, request.RespondedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatusAsRecipientGuardMiss(t *testing.T) {
	// An already resolved request, or one addressed to someone else,
	// matches zero rows and surfaces as not found.
	repo, mock := newCollaborationRepo(t)

	requestID := uuid.New()
	recipientID := uuid.New()

	mock.ExpectQuery("UPDATE collaboration_requests").
		WithArgs("declined", requestID, recipientID).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.UpdateStatusAsRecipient(context.Background(), requestID, recipientID, domain.RequestStatusDeclined)
	assert.ErrorIs(t, err, domain.ErrRequestNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelAsSenderGuardMiss(t *testing.T) {
	repo, mock := newCollaborationRepo(t)

	requestID := uuid.New()
	senderID := uuid.New()

	mock.ExpectQuery("UPDATE collaboration_requests").
		WithArgs(requestID, senderID).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.CancelAsSender(context.Background(), requestID, senderID)
	assert.ErrorIs(t, err, domain.ErrRequestNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelAsSenderHappyPath(t *testing.T) {
	repo, mock := newCollaborationRepo(t)

	requestID := uuid.New()
	senderID := uuid.New()
	respondedAt := time.Now().UTC()

	mock.ExpectQuery("UPDATE collaboration_requests").
		WithArgs(requestID, senderID).
		WillReturnRows(pgxmock.NewRows(requestColumns).AddRow(
			requestID, senderID, uuid.New(), uuid.New(),
			domain.RequestTypeCollaboration, "협업", "내용", (*string)(nil),
			domain.RequestStatusCancelled, time.Now().UTC(), &respondedAt,
		))

	request, err := repo.CancelAsSender(context.Background(), requestID, senderID)
	require.NoError(t, err)
	assert.Equal(t, domain.RequestStatusCancelled, request.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListSentOrdersNewestFirst(t *testing.T) {
	repo, mock := newCollaborationRepo(t)

	senderID := uuid.New()
	newer := time.Now().UTC()
	older := newer.Add(-time.Hour)

	mock.ExpectQuery("SELECT (.+) FROM collaboration_requests").
		WithArgs(senderID).
		WillReturnRows(pgxmock.NewRows(requestColumns).
			AddRow(uuid.New(), senderID, uuid.New(), uuid.New(),
				domain.RequestTypeCoffeeChat, "둘째", "m", (*string)(nil),
				domain.RequestStatusPending, newer, (*time.Time)(nil)).
			AddRow(uuid.New(), senderID, uuid.New(), uuid.New(),
				domain.RequestTypeCoffeeChat, "첫째", "m", (*string)(nil),
				domain.RequestStatusAccepted, older, (*time.Time)(nil)))

	requests, err := repo.ListSent(context.Background(), senderID)
	require.NoError(t, err)
	require.Len(t, requests, 2)
	assert.Equal(t, "둘째", requests[0].Subject)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListReceivedEmpty(t *testing.T) {
	repo, mock := newCollaborationRepo(t)

	recipientID := uuid.New()
	mock.ExpectQuery("SELECT (.+) FROM collaboration_requests").
		WithArgs(recipientID).
		WillReturnRows(pgxmock.NewRows(requestColumns))

	requests, err := repo.ListReceived(context.Background(), recipientID)
	require.NoError(t, err)
	assert.NotNil(t, requests)
	assert.Empty(t, requests)
}
