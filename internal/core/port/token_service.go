package port

import (
	"context"
	"time"

	"github.com/potenlab/the-potential-backend/internal/core/domain"
)

// TokenServicePort issues and validates session tokens.
type TokenServicePort interface {
	GenerateToken(ctx context.Context, user *domain.User, ttl time.Duration) (string, error)
	ValidateToken(ctx context.Context, token string) (*domain.Claims, error)
}
