package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/potenlab/the-potential-backend/internal/contextkeys"
	"github.com/potenlab/the-potential-backend/internal/core/domain"
	"github.com/potenlab/the-potential-backend/internal/core/port"
)

const expertSelectColumns = `
	e.id, e.user_id, e.category, e.business_name, e.description,
	e.specialties, e.regions, e.hourly_rate, e.is_available, e.is_featured,
	e.status, e.view_count, e.request_count, e.created_at, e.updated_at,
	p.display_name, p.avatar_url, p.company`

// ExpertRepository reads and writes expert profiles joined to the owning
// user's display fields.
type ExpertRepository struct {
	pool PgxPool
}

func NewExpertRepository(pool PgxPool) (*ExpertRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("expert repository requires a pgx pool")
	}
	return &ExpertRepository{pool: pool}, nil
}

// FindWithFilters runs the exact COUNT and the page query in one
// transaction so both see the same snapshot.
func (r *ExpertRepository) FindWithFilters(ctx context.Context, params domain.ExpertSearchParams) (*domain.ExpertListResult, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "ExpertRepository",
		"method":    "FindWithFilters",
		"limit":     params.Limit,
		"offset":    params.Offset,
	})

	whereClause, args := applyExpertFilters(params.Filters)

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM expert_profiles e %s", whereClause)
	var totalCount int
	if err := tx.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		repoLogger.Error("Failed to count experts", err, port.Fields{"query": countQuery})
		return nil, fmt.Errorf("failed to count experts: %w", err)
	}

	if totalCount == 0 {
		if err := tx.Commit(ctx); err != nil {
			return nil, fmt.Errorf("failed to commit transaction: %w", err)
		}
		return &domain.ExpertListResult{Experts: []domain.ExpertWithProfile{}}, nil
	}

	dataQuery := fmt.Sprintf(`
		SELECT %s
		FROM expert_profiles e
		JOIN profiles p ON p.user_id = e.user_id
		%s
		%s
		LIMIT $%d OFFSET $%d`,
		expertSelectColumns, whereClause,
		expertOrderClause(params.SortBy, params.SortOrder),
		len(args)+1, len(args)+2)

	rows, err := tx.Query(ctx, dataQuery, append(args, params.Limit, params.Offset)...)
	if err != nil {
		repoLogger.Error("Failed to query experts", err, port.Fields{"query": dataQuery})
		return nil, fmt.Errorf("failed to query experts: %w", err)
	}
	defer rows.Close()

	experts := make([]domain.ExpertWithProfile, 0, params.Limit)
	for rows.Next() {
		expert, err := scanExpert(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expert: %w", err)
		}
		experts = append(experts, *expert)
	}
	if err := rows.Err(); err != nil {
		repoLogger.Error("Error during expert rows iteration", err, nil)
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	result := &domain.ExpertListResult{
		Experts:    experts,
		TotalCount: totalCount,
		HasMore:    params.Offset+len(experts) < totalCount,
	}

	repoLogger.Info("Found experts for page", port.Fields{
		"total_count": totalCount,
		"count":       len(experts),
	})
	return result, nil
}

func (r *ExpertRepository) GetByID(ctx context.Context, expertID uuid.UUID) (*domain.ExpertWithProfile, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "ExpertRepository",
		"method":    "GetByID",
		"expert_id": expertID.String(),
	})

	query := fmt.Sprintf(`
		SELECT %s
		FROM expert_profiles e
		JOIN profiles p ON p.user_id = e.user_id
		WHERE e.id = $1`, expertSelectColumns)

	rows, err := r.pool.Query(ctx, query, expertID)
	if err != nil {
		repoLogger.Error("Failed to query expert by id", err, nil)
		return nil, fmt.Errorf("failed to get expert: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		repoLogger.Warn("Expert not found", nil)
		return nil, domain.ErrExpertNotFound
	}

	expert, err := scanExpert(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to scan expert: %w", err)
	}
	return expert, nil
}

// Upsert inserts the profile for a user or updates the existing one.
// A fresh insert enters moderation as pending; an update keeps the current
// moderation status.
func (r *ExpertRepository) Upsert(ctx context.Context, userID uuid.UUID, draft domain.ExpertProfileDraft) (*domain.ExpertProfile, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "ExpertRepository",
		"method":    "Upsert",
		"user_id":   userID.String(),
	})

	query := `
		INSERT INTO expert_profiles
			(id, user_id, category, business_name, description, specialties,
			 regions, hourly_rate, is_available, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 'pending', now(), now())
		ON CONFLICT (user_id) DO UPDATE SET
			category = EXCLUDED.category,
			business_name = EXCLUDED.business_name,
			description = EXCLUDED.description,
			specialties = EXCLUDED.specialties,
			regions = EXCLUDED.regions,
			hourly_rate = EXCLUDED.hourly_rate,
			is_available = EXCLUDED.is_available,
			updated_at = now()
		RETURNING id, user_id, category, business_name, description,
			specialties, regions, hourly_rate, is_available, is_featured,
			status, view_count, request_count, created_at, updated_at`

	var p domain.ExpertProfile
	err := r.pool.QueryRow(ctx, query,
		uuid.New(), userID, string(draft.Category), draft.BusinessName,
		draft.Description, draft.Specialties, draft.Regions, draft.HourlyRate,
		draft.IsAvailable,
	).Scan(
		&p.ID, &p.UserID, &p.Category, &p.BusinessName, &p.Description,
		&p.Specialties, &p.Regions, &p.HourlyRate, &p.IsAvailable,
		&p.IsFeatured, &p.Status, &p.ViewCount, &p.RequestCount,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		repoLogger.Error("Failed to upsert expert profile", err, nil)
		return nil, fmt.Errorf("failed to upsert expert profile: %w", err)
	}

	if p.Specialties == nil {
		p.Specialties = []string{}
	}
	if p.Regions == nil {
		p.Regions = []string{}
	}

	repoLogger.Info("Expert profile upserted", port.Fields{"expert_id": p.ID.String(), "status": p.Status})
	return &p, nil
}

// scanExpert maps one joined row, defaulting absent arrays to empty slices
// so callers never see nil where a sequence is expected.
func scanExpert(row pgx.Row) (*domain.ExpertWithProfile, error) {
	var e domain.ExpertWithProfile
	err := row.Scan(
		&e.ID, &e.UserID, &e.Category, &e.BusinessName, &e.Description,
		&e.Specialties, &e.Regions, &e.HourlyRate, &e.IsAvailable,
		&e.IsFeatured, &e.Status, &e.ViewCount, &e.RequestCount,
		&e.CreatedAt, &e.UpdatedAt,
		&e.Profile.DisplayName, &e.Profile.AvatarURL, &e.Profile.Company,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrExpertNotFound
		}
		return nil, err
	}
	if e.Specialties == nil {
		e.Specialties = []string{}
	}
	if e.Regions == nil {
		e.Regions = []string{}
	}
	return &e, nil
}
