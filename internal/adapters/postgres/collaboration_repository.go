package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/potenlab/the-potential-backend/internal/contextkeys"
	"github.com/potenlab/the-potential-backend/internal/core/domain"
	"github.com/potenlab/the-potential-backend/internal/core/port"
)

const requestSelectColumns = `
	id, sender_id, recipient_id, expert_profile_id, type, subject, message,
	contact_info, status, created_at, responded_at`

// CollaborationRepository persists collaboration requests. Status
// transitions are compare-and-swap updates: the WHERE clause pins the
// current status to pending and the actor to the owning side, so a stale or
// foreign transition affects zero rows.
type CollaborationRepository struct {
	pool PgxPool
}

func NewCollaborationRepository(pool PgxPool) (*CollaborationRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("collaboration repository requires a pgx pool")
	}
	return &CollaborationRepository{pool: pool}, nil
}

func (r *CollaborationRepository) Create(ctx context.Context, request *domain.CollaborationRequest) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":  "CollaborationRepository",
		"method":     "Create",
		"request_id": request.ID.String(),
	})

	query := `
		INSERT INTO collaboration_requests
			(id, sender_id, recipient_id, expert_profile_id, type, subject,
			 message, contact_info, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.pool.Exec(ctx, query,
		request.ID, request.SenderID, request.RecipientID,
		request.ExpertProfileID, string(request.Type), request.Subject,
		request.Message, request.ContactInfo, string(request.Status),
		request.CreatedAt,
	)
	if err != nil {
		repoLogger.Error("Failed to insert collaboration request", err, nil)
		return fmt.Errorf("failed to create collaboration request: %w", err)
	}

	repoLogger.Info("Collaboration request created", nil)
	return nil
}

func (r *CollaborationRepository) GetByID(ctx context.Context, requestID uuid.UUID) (*domain.CollaborationRequest, error) {
	query := fmt.Sprintf("SELECT %s FROM collaboration_requests WHERE id = $1", requestSelectColumns)

	request, err := scanRequest(r.pool.QueryRow(ctx, query, requestID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to get collaboration request: %w", err)
	}
	return request, nil
}

func (r *CollaborationRepository) UpdateStatusAsRecipient(ctx context.Context, requestID, recipientID uuid.UUID, status domain.RequestStatus) (*domain.CollaborationRequest, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":  "CollaborationRepository",
		"method":     "UpdateStatusAsRecipient",
		"request_id": requestID.String(),
		"new_status": status,
	})

	query := fmt.Sprintf(`
		UPDATE collaboration_requests
		SET status = $1, responded_at = now()
		WHERE id = $2 AND recipient_id = $3 AND status = 'pending'
		RETURNING %s`, requestSelectColumns)

	request, err := scanRequest(r.pool.QueryRow(ctx, query, string(status), requestID, recipientID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Already resolved, or not addressed to this recipient. The two
			// are indistinguishable here.
			repoLogger.Warn("Guarded update matched no rows", nil)
			return nil, domain.ErrRequestNotFound
		}
		repoLogger.Error("Failed to update request status", err, nil)
		return nil, fmt.Errorf("failed to update request status: %w", err)
	}

	repoLogger.Info("Request status updated", nil)
	return request, nil
}

func (r *CollaborationRepository) CancelAsSender(ctx context.Context, requestID, senderID uuid.UUID) (*domain.CollaborationRequest, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":  "CollaborationRepository",
		"method":     "CancelAsSender",
		"request_id": requestID.String(),
	})

	query := fmt.Sprintf(`
		UPDATE collaboration_requests
		SET status = 'cancelled', responded_at = now()
		WHERE id = $1 AND sender_id = $2 AND status = 'pending'
		RETURNING %s`, requestSelectColumns)

	request, err := scanRequest(r.pool.QueryRow(ctx, query, requestID, senderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			repoLogger.Warn("Guarded cancel matched no rows", nil)
			return nil, domain.ErrRequestNotFound
		}
		repoLogger.Error("Failed to cancel request", err, nil)
		return nil, fmt.Errorf("failed to cancel request: %w", err)
	}

	repoLogger.Info("Request cancelled", nil)
	return request, nil
}

func (r *CollaborationRepository) ListSent(ctx context.Context, senderID uuid.UUID) ([]domain.CollaborationRequest, error) {
	return r.list(ctx, "sender_id", senderID)
}

func (r *CollaborationRepository) ListReceived(ctx context.Context, recipientID uuid.UUID) ([]domain.CollaborationRequest, error) {
	return r.list(ctx, "recipient_id", recipientID)
}

func (r *CollaborationRepository) list(ctx context.Context, actorColumn string, actorID uuid.UUID) ([]domain.CollaborationRequest, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM collaboration_requests
		WHERE %s = $1
		ORDER BY created_at DESC`, requestSelectColumns, actorColumn)

	rows, err := r.pool.Query(ctx, query, actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list collaboration requests: %w", err)
	}
	defer rows.Close()

	requests := make([]domain.CollaborationRequest, 0)
	for rows.Next() {
		request, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan collaboration request: %w", err)
		}
		requests = append(requests, *request)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return requests, nil
}

func scanRequest(row pgx.Row) (*domain.CollaborationRequest, error) {
	var cr domain.CollaborationRequest
	err := row.Scan(
		&cr.ID, &cr.SenderID, &cr.RecipientID, &cr.ExpertProfileID,
		&cr.Type, &cr.Subject, &cr.Message, &cr.ContactInfo, &cr.Status,
		&cr.CreatedAt, &cr.RespondedAt,
	)
	if err != nil {
		return nil, err
	}
	return &cr, nil
}
