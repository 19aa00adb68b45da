package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/potenlab/the-potential-backend/internal/contextkeys"
	"github.com/potenlab/the-potential-backend/internal/core/domain"
	"github.com/potenlab/the-potential-backend/internal/core/port"
)

type ListNotificationsUseCase struct {
	notifications port.NotificationRepositoryPort
}

func NewListNotificationsUseCase(notifications port.NotificationRepositoryPort) *ListNotificationsUseCase {
	return &ListNotificationsUseCase{notifications: notifications}
}

func (uc *ListNotificationsUseCase) Execute(ctx context.Context, userID uuid.UUID, limit, offset int) (*domain.NotificationPage, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "ListNotifications",
		"user_id":  userID.String(),
		"limit":    limit,
		"offset":   offset,
	})

	ucLogger.Info("Use case started", nil)

	page, err := uc.notifications.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		ucLogger.Error("Repository failed to list notifications", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"total_found":   page.TotalCount,
		"items_on_page": len(page.Notifications),
	})
	return page, nil
}
