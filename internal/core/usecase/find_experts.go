package usecase

import (
	"context"

	"github.com/potenlab/the-potential-backend/internal/contextkeys"
	"github.com/potenlab/the-potential-backend/internal/core/domain"
	"github.com/potenlab/the-potential-backend/internal/core/port"
)

type FindExpertsUseCase struct {
	experts port.ExpertRepositoryPort
}

func NewFindExpertsUseCase(experts port.ExpertRepositoryPort) *FindExpertsUseCase {
	return &FindExpertsUseCase{experts: experts}
}

func (uc *FindExpertsUseCase) Execute(ctx context.Context, params domain.ExpertSearchParams) (*domain.ExpertListResult, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "FindExperts",
		"limit":    params.Limit,
		"offset":   params.Offset,
	})

	ucLogger.Info("Use case started", nil)

	// Normalization happens once here so the repository and the cache key
	// always see the same canonical parameter set.
	normalized := params.Normalized()

	result, err := uc.experts.FindWithFilters(ctx, normalized)
	if err != nil {
		ucLogger.Error("Expert repository returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"total_found":   result.TotalCount,
		"items_on_page": len(result.Experts),
		"has_more":      result.HasMore,
	})

	return result, nil
}
