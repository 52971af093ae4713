package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// PostStore defines persistence operations for posts and likes.
type PostStore interface {
	List(ctx context.Context, params ListPostsParams) ([]Post, error)
	GetByID(ctx context.Context, id int64) (Post, error)
	IncrementViews(ctx context.Context, id int64) error
}

// LikeStore persists per-user post likes.
type LikeStore interface {
	Exists(ctx context.Context, userID uuid.UUID, postID int64) (bool, error)
	Create(ctx context.Context, userID uuid.UUID, postID int64) error
	Delete(ctx context.Context, userID uuid.UUID, postID int64) error
	CountByPost(ctx context.Context, postID int64) (int64, error)
}

// ListPostsParams describes pagination and search filters for listing posts.
type ListPostsParams struct {
	Page   int
	Limit  int
	Search string
}

// Post represents a blog post with its author and aggregate counters.
type Post struct {
	ID           int64     `json:"id"`
	AuthorID     uuid.UUID `json:"author_id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	Hashtags     string    `json:"hashtags"`
	Views        int64     `json:"views"`
	Username     string    `json:"username"`
	Avatar       *string   `json:"avatar"`
	LikeCount    int64     `json:"like_count"`
	CommentCount int64     `json:"comment_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
