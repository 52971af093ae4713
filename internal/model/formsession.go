package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// FormSessionDuration is a TTL for ambient form sessions.
const FormSessionDuration = time.Minute * 10

// FormSessionStore persists ambient per-caller form state
// (captcha answers and pending registrations).
type FormSessionStore interface {
	Create(ctx context.Context, session FormSession) error
	GetByID(ctx context.Context, id uuid.UUID) (FormSession, error)
	// SetCaptcha stores the captcha answer and extends the session expiry.
	SetCaptcha(ctx context.Context, id uuid.UUID, code string, expiresAt time.Time) error
	// ClearCaptcha removes the stored captcha answer so it cannot be checked twice.
	ClearCaptcha(ctx context.Context, id uuid.UUID) error
	SetPending(ctx context.Context, id uuid.UUID, pending PendingRegistration) error
	ClearPending(ctx context.Context, id uuid.UUID) error
}

// FormSession describes server-side state bound to one caller's form cookie.
type FormSession struct {
	ID          uuid.UUID
	CaptchaCode *string
	Pending     *PendingRegistration
	ExpiresAt   time.Time
	CreatedAt   time.Time
}

// PendingRegistration holds registration data between the register
// and verify-email actions. It never reaches the users table unverified.
type PendingRegistration struct {
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
}

// Expired reports whether the session expiry has elapsed.
func (s FormSession) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
