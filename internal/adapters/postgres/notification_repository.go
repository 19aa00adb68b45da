package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/potenlab/the-potential-backend/internal/contextkeys"
	"github.com/potenlab/the-potential-backend/internal/core/domain"
	"github.com/potenlab/the-potential-backend/internal/core/port"
)

type NotificationRepository struct {
	pool PgxPool
}

func NewNotificationRepository(pool PgxPool) (*NotificationRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("notification repository requires a pgx pool")
	}
	return &NotificationRepository{pool: pool}, nil
}

func (r *NotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	query := `
		INSERT INTO notifications
			(id, user_id, type, title, body, reference_id, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, false, $7)`

	_, err := r.pool.Exec(ctx, query,
		n.ID, n.UserID, string(n.Type), n.Title, n.Body, n.ReferenceID, n.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

func (r *NotificationRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) (*domain.NotificationPage, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "NotificationRepository",
		"method":    "ListByUser",
		"user_id":   userID.String(),
	})

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var totalCount int
	countQuery := "SELECT COUNT(*) FROM notifications WHERE user_id = $1"
	if err := tx.QueryRow(ctx, countQuery, userID).Scan(&totalCount); err != nil {
		repoLogger.Error("Failed to count notifications", err, nil)
		return nil, fmt.Errorf("failed to count notifications: %w", err)
	}

	dataQuery := `
		SELECT id, user_id, type, title, body, reference_id, is_read, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC, id ASC
		LIMIT $2 OFFSET $3`

	rows, err := tx.Query(ctx, dataQuery, userID, limit, offset)
	if err != nil {
		repoLogger.Error("Failed to query notifications", err, nil)
		return nil, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer rows.Close()

	notifications := make([]domain.Notification, 0, limit)
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Type, &n.Title, &n.Body,
			&n.ReferenceID, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &domain.NotificationPage{
		Notifications: notifications,
		TotalCount:    totalCount,
		HasMore:       offset+len(notifications) < totalCount,
	}, nil
}

func (r *NotificationRepository) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	query := "SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND is_read = false"
	if err := r.pool.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, notificationID, userID uuid.UUID) error {
	query := `
		UPDATE notifications SET is_read = true
		WHERE id = $1 AND user_id = $2`

	tag, err := r.pool.Exec(ctx, query, notificationID, userID)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotificationNotFound
	}
	return nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `
		UPDATE notifications SET is_read = true
		WHERE user_id = $1 AND is_read = false`

	tag, err := r.pool.Exec(ctx, query, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to mark all notifications read: %w", err)
	}
	return tag.RowsAffected(), nil
}
