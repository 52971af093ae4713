package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ozodbek/blogapi/internal/model"
)

var _ model.FormSessionStore = (*FormSessionRepository)(nil)

type FormSessionRepository struct {
	db *Connection
}

func NewFormSessionRepository(db *Connection) *FormSessionRepository {
	return &FormSessionRepository{db: db}
}

func (r *FormSessionRepository) Create(ctx context.Context, session model.FormSession) error {
	const query = `
        INSERT INTO form_sessions (id, captcha_code, pending, expires_at, created_at)
        VALUES ($1, $2, $3, $4, $5)
    `

	pending, err := marshalPending(session.Pending)
	if err != nil {
		return err
	}

	if _, err := r.db.Exec(ctx, query,
		session.ID, session.CaptchaCode, pending, session.ExpiresAt, session.CreatedAt,
	); err != nil {
		return fmt.Errorf("failed to create form session: %w", err)
	}
	return nil
}

func (r *FormSessionRepository) GetByID(ctx context.Context, id uuid.UUID) (model.FormSession, error) {
	const query = `
        SELECT id, captcha_code, pending, expires_at, created_at
        FROM form_sessions WHERE id = $1
    `

	var fs model.FormSession
	var pending []byte
	err := r.db.QueryRow(ctx, query, id).Scan(
		&fs.ID, &fs.CaptchaCode, &pending, &fs.ExpiresAt, &fs.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.FormSession{}, model.ErrNotFound
		}
		return model.FormSession{}, fmt.Errorf("failed to get form session by id: %w", err)
	}

	if len(pending) > 0 {
		var p model.PendingRegistration
		if err := json.Unmarshal(pending, &p); err != nil {
			return model.FormSession{}, fmt.Errorf("failed to unmarshal pending registration: %w", err)
		}
		fs.Pending = &p
	}

	return fs, nil
}

func (r *FormSessionRepository) SetCaptcha(ctx context.Context, id uuid.UUID, code string, expiresAt time.Time) error {
	const query = `UPDATE form_sessions SET captcha_code = $2, expires_at = $3 WHERE id = $1`

	if _, err := r.db.Exec(ctx, query, id, code, expiresAt); err != nil {
		return fmt.Errorf("failed to set form session captcha: %w", err)
	}
	return nil
}

func (r *FormSessionRepository) ClearCaptcha(ctx context.Context, id uuid.UUID) error {
	const query = `UPDATE form_sessions SET captcha_code = NULL WHERE id = $1`

	if _, err := r.db.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("failed to clear form session captcha: %w", err)
	}
	return nil
}

func (r *FormSessionRepository) SetPending(ctx context.Context, id uuid.UUID, pending model.PendingRegistration) error {
	const query = `UPDATE form_sessions SET pending = $2 WHERE id = $1`

	data, err := marshalPending(&pending)
	if err != nil {
		return err
	}

	if _, err := r.db.Exec(ctx, query, id, data); err != nil {
		return fmt.Errorf("failed to set pending registration: %w", err)
	}
	return nil
}

func (r *FormSessionRepository) ClearPending(ctx context.Context, id uuid.UUID) error {
	const query = `UPDATE form_sessions SET pending = NULL WHERE id = $1`

	if _, err := r.db.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("failed to clear pending registration: %w", err)
	}
	return nil
}

func marshalPending(pending *model.PendingRegistration) ([]byte, error) {
	if pending == nil {
		return nil, nil
	}
	data, err := json.Marshal(pending)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal pending registration: %w", err)
	}
	return data, nil
}
