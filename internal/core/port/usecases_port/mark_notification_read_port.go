package usecases_port

import (
	"context"

	"github.com/google/uuid"
)

type MarkNotificationReadUseCasePort interface {
	Execute(ctx context.Context, notificationID, userID uuid.UUID) error
}
