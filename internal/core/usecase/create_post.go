package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/potenlab/the-potential-backend/internal/contextkeys"
	"github.com/potenlab/the-potential-backend/internal/core/domain"
	"github.com/potenlab/the-potential-backend/internal/core/port"
)

type CreatePostUseCase struct {
	posts port.PostRepositoryPort
}

func NewCreatePostUseCase(posts port.PostRepositoryPort) *CreatePostUseCase {
	return &CreatePostUseCase{posts: posts}
}

func (uc *CreatePostUseCase) Execute(ctx context.Context, authorID uuid.UUID, category, title, content string) (*domain.Post, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":  "CreatePost",
		"author_id": authorID.String(),
		"category":  category,
	})

	ucLogger.Info("Use case started", nil)

	post := domain.NewPost(authorID, category, title, content)
	if err := uc.posts.Create(ctx, post); err != nil {
		ucLogger.Error("Post repository failed to create post", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"post_id": post.ID.String()})
	return post, nil
}
