package usecase

import (
	"context"

	"github.com/potenlab/the-potential-backend/internal/contextkeys"
	"github.com/potenlab/the-potential-backend/internal/core/domain"
	"github.com/potenlab/the-potential-backend/internal/core/port"
)

type ListPostsUseCase struct {
	posts port.PostRepositoryPort
}

func NewListPostsUseCase(posts port.PostRepositoryPort) *ListPostsUseCase {
	return &ListPostsUseCase{posts: posts}
}

func (uc *ListPostsUseCase) Execute(ctx context.Context, filters domain.PostFilters, limit, offset int) (*domain.PostPage, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "ListPosts", "limit": limit, "offset": offset})

	ucLogger.Info("Use case started", nil)

	page, err := uc.posts.ListWithFilters(ctx, filters, limit, offset)
	if err != nil {
		ucLogger.Error("Post repository returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"total_found":   page.TotalCount,
		"items_on_page": len(page.Posts),
	})
	return page, nil
}
