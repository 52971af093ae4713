package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ozodbek/blogapi/internal/model"
)

var _ model.PostStore = (*PostRepository)(nil)

type PostRepository struct {
	db *Connection
}

func NewPostRepository(db *Connection) *PostRepository {
	return &PostRepository{db: db}
}

const postColumns = `
    p.id, p.author_id, p.title, p.content, p.hashtags, p.views,
    u.username, u.avatar,
    COALESCE((SELECT COUNT(*) FROM likes l WHERE l.post_id = p.id), 0) AS like_count,
    COALESCE((SELECT COUNT(*) FROM comments c WHERE c.post_id = p.id), 0) AS comment_count,
    p.created_at, p.updated_at
`

func scanPost(row pgx.Row) (model.Post, error) {
	var post model.Post
	err := row.Scan(
		&post.ID, &post.AuthorID, &post.Title, &post.Content, &post.Hashtags, &post.Views,
		&post.Username, &post.Avatar, &post.LikeCount, &post.CommentCount,
		&post.CreatedAt, &post.UpdatedAt,
	)
	return post, err
}

// List returns posts newest first, filtered by an optional search term
// over title, content and hashtags. Pagination and search values are
// always bound parameters, never interpolated into the query text.
func (r *PostRepository) List(ctx context.Context, params model.ListPostsParams) ([]model.Post, error) {
	page := params.Page
	if page < 1 {
		page = 1
	}
	limit := params.Limit
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	query := `SELECT ` + postColumns + `
			  FROM posts p
			  JOIN users u ON p.author_id = u.id
			  WHERE ($1 = '' OR p.title ILIKE '%' || $1 || '%' OR p.content ILIKE '%' || $1 || '%' OR p.hashtags ILIKE '%' || $1 || '%')
			  ORDER BY p.created_at DESC
			  LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, params.Search, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	posts := make([]model.Post, 0)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate posts: %w", err)
	}

	return posts, nil
}

func (r *PostRepository) GetByID(ctx context.Context, id int64) (model.Post, error) {
	query := `SELECT ` + postColumns + `
			  FROM posts p
			  JOIN users u ON p.author_id = u.id
			  WHERE p.id = $1`

	post, err := scanPost(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Post{}, model.ErrNotFound
		}
		return model.Post{}, fmt.Errorf("failed to get post by id: %w", err)
	}

	return post, nil
}

func (r *PostRepository) IncrementViews(ctx context.Context, id int64) error {
	const query = `UPDATE posts SET views = views + 1 WHERE id = $1`

	if _, err := r.db.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("failed to increment post views: %w", err)
	}
	return nil
}
