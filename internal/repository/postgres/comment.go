package postgres

import (
	"context"
	"fmt"

	"github.com/ozodbek/blogapi/internal/model"
)

var _ model.CommentStore = (*CommentRepository)(nil)

type CommentRepository struct {
	db *Connection
}

func NewCommentRepository(db *Connection) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) ListByPost(ctx context.Context, postID int64) ([]model.Comment, error) {
	const query = `
        SELECT c.id, c.post_id, c.user_id, c.content, u.username, u.avatar, c.created_at
        FROM comments c
        JOIN users u ON c.user_id = u.id
        WHERE c.post_id = $1
        ORDER BY c.created_at DESC
    `

	rows, err := r.db.Query(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	comments := make([]model.Comment, 0)
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(&c.ID, &c.PostID, &c.UserID, &c.Content, &c.Username, &c.Avatar, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate comments: %w", err)
	}

	return comments, nil
}

func (r *CommentRepository) Create(ctx context.Context, comment model.Comment) error {
	const query = `INSERT INTO comments (post_id, user_id, content) VALUES ($1, $2, $3)`

	if _, err := r.db.Exec(ctx, query, comment.PostID, comment.UserID, comment.Content); err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}
