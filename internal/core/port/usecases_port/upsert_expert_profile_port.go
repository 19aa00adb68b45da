package usecases_port

import (
	"context"

	"github.com/google/uuid"

	"github.com/potenlab/the-potential-backend/internal/core/domain"
)

type UpsertExpertProfileUseCasePort interface {
	Execute(ctx context.Context, userID uuid.UUID, draft domain.ExpertProfileDraft) (*domain.ExpertProfile, error)
}
