package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/potenlab/the-potential-backend/internal/core/domain"
)

// ExpertRepositoryPort is the directory's storage boundary. Implementations
// receive already-normalized search params (see ExpertSearchParams.Normalized).
type ExpertRepositoryPort interface {
	// FindWithFilters returns one page of approved experts matching the
	// params, featured-first, together with the exact total count.
	FindWithFilters(ctx context.Context, params domain.ExpertSearchParams) (*domain.ExpertListResult, error)

	// GetByID returns one expert joined with its owner's display fields.
	// Returns domain.ErrExpertNotFound when absent.
	GetByID(ctx context.Context, expertID uuid.UUID) (*domain.ExpertWithProfile, error)

	// Upsert creates the profile for a user or updates the existing one.
	// New profiles enter moderation with status pending.
	Upsert(ctx context.Context, userID uuid.UUID, draft domain.ExpertProfileDraft) (*domain.ExpertProfile, error)
}
