package usecases_port

import (
	"context"

	"github.com/google/uuid"

	"github.com/potenlab/the-potential-backend/internal/core/domain"
)

type ListNotificationsUseCasePort interface {
	Execute(ctx context.Context, userID uuid.UUID, limit, offset int) (*domain.NotificationPage, error)
}
