package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/potenlab/the-potential-backend/internal/contextkeys"
	"github.com/potenlab/the-potential-backend/internal/core/domain"
	"github.com/potenlab/the-potential-backend/internal/core/port"
)

type GetExpertDetailsUseCase struct {
	experts port.ExpertRepositoryPort
}

func NewGetExpertDetailsUseCase(experts port.ExpertRepositoryPort) *GetExpertDetailsUseCase {
	return &GetExpertDetailsUseCase{experts: experts}
}

func (uc *GetExpertDetailsUseCase) Execute(ctx context.Context, expertID uuid.UUID) (*domain.ExpertWithProfile, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":  "GetExpertDetails",
		"expert_id": expertID.String(),
	})

	ucLogger.Info("Use case started", nil)

	expert, err := uc.experts.GetByID(ctx, expertID)
	if err != nil {
		ucLogger.Error("Expert repository returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"category": expert.Category})
	return expert, nil
}
