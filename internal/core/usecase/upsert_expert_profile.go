package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/potenlab/the-potential-backend/internal/contextkeys"
	"github.com/potenlab/the-potential-backend/internal/core/domain"
	"github.com/potenlab/the-potential-backend/internal/core/port"
)

type UpsertExpertProfileUseCase struct {
	experts port.ExpertRepositoryPort
}

func NewUpsertExpertProfileUseCase(experts port.ExpertRepositoryPort) *UpsertExpertProfileUseCase {
	return &UpsertExpertProfileUseCase{experts: experts}
}

func (uc *UpsertExpertProfileUseCase) Execute(ctx context.Context, userID uuid.UUID, draft domain.ExpertProfileDraft) (*domain.ExpertProfile, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "UpsertExpertProfile",
		"user_id":  userID.String(),
		"category": draft.Category,
	})

	ucLogger.Info("Use case started", nil)

	profile, err := uc.experts.Upsert(ctx, userID, draft)
	if err != nil {
		ucLogger.Error("Expert repository failed to upsert profile", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"expert_id": profile.ID.String(),
		"status":    profile.Status,
	})

	return profile, nil
}
