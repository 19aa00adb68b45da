package usecases_port

import (
	"context"

	"github.com/google/uuid"
)

type MarkAllNotificationsReadUseCasePort interface {
	Execute(ctx context.Context, userID uuid.UUID) (int64, error)
}
