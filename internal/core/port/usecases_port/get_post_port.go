package usecases_port

import (
	"context"

	"github.com/google/uuid"

	"github.com/potenlab/the-potential-backend/internal/core/domain"
)

type GetPostUseCasePort interface {
	Execute(ctx context.Context, postID uuid.UUID) (*domain.Post, error)
}
