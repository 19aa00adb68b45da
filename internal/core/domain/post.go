package domain

import (
	"time"

	"github.com/google/uuid"
)

// Post is a community board entry.
type Post struct {
	ID           uuid.UUID
	AuthorID     uuid.UUID
	Category     string
	Title        string
	Content      string
	LikeCount    int
	CommentCount int
	CreatedAt    time.Time
}

// NewPost builds a post ready for insertion.
func NewPost(authorID uuid.UUID, category, title, content string) *Post {
	return &Post{
		ID:        uuid.New(),
		AuthorID:  authorID,
		Category:  category,
		Title:     title,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
}

// PostFilters are the optional filters of the community board.
type PostFilters struct {
	Category *string
	Keyword  *string
}

// PostPage is one page of the community board, newest first.
type PostPage struct {
	Posts      []Post
	TotalCount int
	HasMore    bool
}
