package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ozodbek/blogapi/internal/model"
)

var _ model.VerificationCodeStore = (*VerificationCodeRepository)(nil)

type VerificationCodeRepository struct {
	db *Connection
}

func NewVerificationCodeRepository(db *Connection) *VerificationCodeRepository {
	return &VerificationCodeRepository{db: db}
}

func (r *VerificationCodeRepository) Create(ctx context.Context, code model.VerificationCode) error {
	const query = `
        INSERT INTO verification_codes (id, email, code, purpose, used, expires_at, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `

	if _, err := r.db.Exec(ctx, query,
		code.ID, code.Email, code.Code, code.Purpose, code.Used, code.ExpiresAt, code.CreatedAt,
	); err != nil {
		return fmt.Errorf("failed to create verification code: %w", err)
	}
	return nil
}

// GetActive returns the newest unused code for (email, purpose),
// regardless of expiry. Expiry is judged by the caller so it can
// distinguish an expired code from an absent one.
func (r *VerificationCodeRepository) GetActive(ctx context.Context, email, purpose string) (model.VerificationCode, error) {
	const query = `
        SELECT id, email, code, purpose, used, expires_at, created_at
        FROM verification_codes
        WHERE email = $1 AND purpose = $2 AND used = FALSE
        ORDER BY created_at DESC
        LIMIT 1
    `

	var vc model.VerificationCode
	err := r.db.QueryRow(ctx, query, email, purpose).Scan(
		&vc.ID, &vc.Email, &vc.Code, &vc.Purpose, &vc.Used, &vc.ExpiresAt, &vc.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.VerificationCode{}, model.ErrNotFound
		}
		return model.VerificationCode{}, fmt.Errorf("failed to get active verification code: %w", err)
	}
	return vc, nil
}

func (r *VerificationCodeRepository) MarkUsed(ctx context.Context, id uuid.UUID) error {
	const query = `UPDATE verification_codes SET used = TRUE WHERE id = $1`

	if _, err := r.db.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("failed to mark verification code used: %w", err)
	}
	return nil
}

func (r *VerificationCodeRepository) SupersedeActive(ctx context.Context, email, purpose string) error {
	const query = `
        UPDATE verification_codes SET used = TRUE
        WHERE email = $1 AND purpose = $2 AND used = FALSE
    `

	if _, err := r.db.Exec(ctx, query, email, purpose); err != nil {
		return fmt.Errorf("failed to supersede verification codes: %w", err)
	}
	return nil
}

func (r *VerificationCodeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM verification_codes WHERE id = $1`

	if _, err := r.db.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete verification code: %w", err)
	}
	return nil
}
