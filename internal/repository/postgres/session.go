package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ozodbek/blogapi/internal/model"
)

var _ model.SessionStore = (*SessionRepository)(nil)

type SessionRepository struct {
	db *Connection
}

func NewSessionRepository(db *Connection) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(ctx context.Context, session model.Session) error {
	const query = `
        INSERT INTO user_sessions (token, user_id, expires_at, created_at)
        VALUES ($1, $2, $3, $4)
    `

	if _, err := r.db.Exec(ctx, query,
		session.Token, session.UserID, session.ExpiresAt, session.CreatedAt,
	); err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// GetUserByToken resolves a bearer token to its user by point lookup.
// Expired sessions are reported as absent.
func (r *SessionRepository) GetUserByToken(ctx context.Context, token string, now time.Time) (model.User, error) {
	query := `SELECT u.id, u.username, u.email, u.password_hash, u.avatar, u.is_verified, u.is_admin, u.created_at, u.updated_at
			  FROM users u
			  JOIN user_sessions s ON u.id = s.user_id
			  WHERE s.token = $1 AND s.expires_at > $2`

	user, err := scanUser(r.db.QueryRow(ctx, query, token, now))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by session token: %w", err)
	}

	return user, nil
}

func (r *SessionRepository) DeleteByToken(ctx context.Context, token string) error {
	const query = `DELETE FROM user_sessions WHERE token = $1`

	if _, err := r.db.Exec(ctx, query, token); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func (r *SessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	const query = `DELETE FROM user_sessions WHERE expires_at <= $1`

	tag, err := r.db.Exec(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}
	return tag.RowsAffected(), nil
}
