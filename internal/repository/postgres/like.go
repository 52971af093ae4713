package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ozodbek/blogapi/internal/model"
)

var _ model.LikeStore = (*LikeRepository)(nil)

type LikeRepository struct {
	db *Connection
}

func NewLikeRepository(db *Connection) *LikeRepository {
	return &LikeRepository{db: db}
}

func (r *LikeRepository) Exists(ctx context.Context, userID uuid.UUID, postID int64) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM likes WHERE user_id = $1 AND post_id = $2)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, userID, postID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check like existence: %w", err)
	}
	return exists, nil
}

func (r *LikeRepository) Create(ctx context.Context, userID uuid.UUID, postID int64) error {
	const query = `INSERT INTO likes (user_id, post_id) VALUES ($1, $2)`

	if _, err := r.db.Exec(ctx, query, userID, postID); err != nil {
		if isUniqueViolation(err) {
			return model.ErrDuplicate
		}
		return fmt.Errorf("failed to create like: %w", err)
	}
	return nil
}

func (r *LikeRepository) Delete(ctx context.Context, userID uuid.UUID, postID int64) error {
	const query = `DELETE FROM likes WHERE user_id = $1 AND post_id = $2`

	if _, err := r.db.Exec(ctx, query, userID, postID); err != nil {
		return fmt.Errorf("failed to delete like: %w", err)
	}
	return nil
}

func (r *LikeRepository) CountByPost(ctx context.Context, postID int64) (int64, error) {
	const query = `SELECT COUNT(*) FROM likes WHERE post_id = $1`

	var count int64
	if err := r.db.QueryRow(ctx, query, postID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}
	return count, nil
}
