package postgres

import (
	"context"
	"fmt"

	"github.com/potenlab/the-potential-backend/internal/contextkeys"
	"github.com/potenlab/the-potential-backend/internal/core/domain"
	"github.com/potenlab/the-potential-backend/internal/core/port"
)

type ProgramRepository struct {
	pool PgxPool
}

func NewProgramRepository(pool PgxPool) (*ProgramRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("program repository requires a pgx pool")
	}
	return &ProgramRepository{pool: pool}, nil
}

func (r *ProgramRepository) FindWithFilters(ctx context.Context, filters domain.ProgramFilters, limit, offset int) (*domain.ProgramPage, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "ProgramRepository",
		"method":    "FindWithFilters",
		"limit":     limit,
		"offset":    offset,
	})

	qb := newQueryBuilder()
	if filters.Category != nil {
		qb.addCondition("%s = $%d", "g.category", *filters.Category)
	}
	if filters.Region != nil {
		qb.addCondition("%s = $%d", "g.region", *filters.Region)
	}
	if filters.Keyword != nil {
		qb.conditions = append(qb.conditions,
			fmt.Sprintf("(g.title ILIKE $%d OR g.organization ILIKE $%d)", qb.argID, qb.argID))
		qb.args = append(qb.args, "%"+*filters.Keyword+"%")
		qb.argID++
	}
	if !filters.IncludeClosed {
		qb.conditions = append(qb.conditions, "(g.deadline_at IS NULL OR g.deadline_at >= now())")
	}
	whereClause, args := qb.build()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM support_programs g %s", whereClause)
	var totalCount int
	if err := tx.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		repoLogger.Error("Failed to count support programs", err, nil)
		return nil, fmt.Errorf("failed to count support programs: %w", err)
	}

	if totalCount == 0 {
		if err := tx.Commit(ctx); err != nil {
			return nil, fmt.Errorf("failed to commit transaction: %w", err)
		}
		return &domain.ProgramPage{Programs: []domain.SupportProgram{}}, nil
	}

	dataQuery := fmt.Sprintf(`
		SELECT g.id, g.title, g.organization, g.category, g.region,
		       g.support_amount, g.starts_at, g.deadline_at, g.link,
		       g.description, g.created_at
		FROM support_programs g
		%s
		ORDER BY g.deadline_at ASC NULLS LAST, g.id ASC
		LIMIT $%d OFFSET $%d`, whereClause, len(args)+1, len(args)+2)

	rows, err := tx.Query(ctx, dataQuery, append(args, limit, offset)...)
	if err != nil {
		repoLogger.Error("Failed to query support programs", err, nil)
		return nil, fmt.Errorf("failed to query support programs: %w", err)
	}
	defer rows.Close()

	programs := make([]domain.SupportProgram, 0, limit)
	for rows.Next() {
		var g domain.SupportProgram
		if err := rows.Scan(&g.ID, &g.Title, &g.Organization, &g.Category,
			&g.Region, &g.SupportAmount, &g.StartsAt, &g.DeadlineAt,
			&g.Link, &g.Description, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan support program: %w", err)
		}
		programs = append(programs, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	repoLogger.Info("Found support programs for page", port.Fields{
		"total_count": totalCount,
		"count":       len(programs),
	})

	return &domain.ProgramPage{
		Programs:   programs,
		TotalCount: totalCount,
		HasMore:    offset+len(programs) < totalCount,
	}, nil
}
