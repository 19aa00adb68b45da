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

type PostRepository struct {
	pool PgxPool
}

func NewPostRepository(pool PgxPool) (*PostRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("post repository requires a pgx pool")
	}
	return &PostRepository{pool: pool}, nil
}

func (r *PostRepository) Create(ctx context.Context, post *domain.Post) error {
	query := `
		INSERT INTO posts (id, author_id, category, title, content, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.pool.Exec(ctx, query,
		post.ID, post.AuthorID, post.Category, post.Title, post.Content, post.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

func (r *PostRepository) GetByID(ctx context.Context, postID uuid.UUID) (*domain.Post, error) {
	query := `
		SELECT id, author_id, category, title, content, like_count,
		       comment_count, created_at
		FROM posts WHERE id = $1`

	var p domain.Post
	err := r.pool.QueryRow(ctx, query, postID).Scan(
		&p.ID, &p.AuthorID, &p.Category, &p.Title, &p.Content,
		&p.LikeCount, &p.CommentCount, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	return &p, nil
}

func (r *PostRepository) ListWithFilters(ctx context.Context, filters domain.PostFilters, limit, offset int) (*domain.PostPage, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "PostRepository",
		"method":    "ListWithFilters",
		"limit":     limit,
		"offset":    offset,
	})

	qb := newQueryBuilder()
	if filters.Category != nil {
		qb.addCondition("%s = $%d", "b.category", *filters.Category)
	}
	if filters.Keyword != nil {
		qb.conditions = append(qb.conditions,
			fmt.Sprintf("(b.title ILIKE $%d OR b.content ILIKE $%d)", qb.argID, qb.argID))
		qb.args = append(qb.args, "%"+*filters.Keyword+"%")
		qb.argID++
	}
	whereClause, args := qb.build()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM posts b %s", whereClause)
	var totalCount int
	if err := tx.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		repoLogger.Error("Failed to count posts", err, nil)
		return nil, fmt.Errorf("failed to count posts: %w", err)
	}

	dataQuery := fmt.Sprintf(`
		SELECT b.id, b.author_id, b.category, b.title, b.content,
		       b.like_count, b.comment_count, b.created_at
		FROM posts b
		%s
		ORDER BY b.created_at DESC, b.id ASC
		LIMIT $%d OFFSET $%d`, whereClause, len(args)+1, len(args)+2)

	rows, err := tx.Query(ctx, dataQuery, append(args, limit, offset)...)
	if err != nil {
		repoLogger.Error("Failed to query posts", err, nil)
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer rows.Close()

	posts := make([]domain.Post, 0, limit)
	for rows.Next() {
		var p domain.Post
		if err := rows.Scan(&p.ID, &p.AuthorID, &p.Category, &p.Title,
			&p.Content, &p.LikeCount, &p.CommentCount, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &domain.PostPage{
		Posts:      posts,
		TotalCount: totalCount,
		HasMore:    offset+len(posts) < totalCount,
	}, nil
}
