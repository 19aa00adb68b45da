package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/potenlab/the-potential-backend/internal/contextkeys"
	"github.com/potenlab/the-potential-backend/internal/core/domain"
	"github.com/potenlab/the-potential-backend/internal/core/port"
)

type GetPostUseCase struct {
	posts port.PostRepositoryPort
}

func NewGetPostUseCase(posts port.PostRepositoryPort) *GetPostUseCase {
	return &GetPostUseCase{posts: posts}
}

func (uc *GetPostUseCase) Execute(ctx context.Context, postID uuid.UUID) (*domain.Post, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "GetPost", "post_id": postID.String()})

	ucLogger.Info("Use case started", nil)

	post, err := uc.posts.GetByID(ctx, postID)
	if err != nil {
		ucLogger.Error("Post repository returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return post, nil
}
