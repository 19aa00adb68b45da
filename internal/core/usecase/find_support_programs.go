package usecase

import (
	"context"

	"github.com/potenlab/the-potential-backend/internal/contextkeys"
	"github.com/potenlab/the-potential-backend/internal/core/domain"
	"github.com/potenlab/the-potential-backend/internal/core/port"
)

type FindSupportProgramsUseCase struct {
	programs port.ProgramRepositoryPort
}

func NewFindSupportProgramsUseCase(programs port.ProgramRepositoryPort) *FindSupportProgramsUseCase {
	return &FindSupportProgramsUseCase{programs: programs}
}

func (uc *FindSupportProgramsUseCase) Execute(ctx context.Context, filters domain.ProgramFilters, limit, offset int) (*domain.ProgramPage, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "FindSupportPrograms",
		"limit":    limit,
		"offset":   offset,
	})

	ucLogger.Info("Use case started", nil)

	page, err := uc.programs.FindWithFilters(ctx, filters, limit, offset)
	if err != nil {
		ucLogger.Error("Program repository returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"total_found":   page.TotalCount,
		"items_on_page": len(page.Programs),
	})
	return page, nil
}
