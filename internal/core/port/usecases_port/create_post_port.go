package usecases_port

import (
	"context"

	"github.com/google/uuid"

	"github.com/potenlab/the-potential-backend/internal/core/domain"
)

type CreatePostUseCasePort interface {
	Execute(ctx context.Context, authorID uuid.UUID, category, title, content string) (*domain.Post, error)
}
