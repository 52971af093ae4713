package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SessionDuration is how long an issued bearer token stays valid.
const SessionDuration = 24 * time.Hour

// SessionStore persists bearer token sessions.
type SessionStore interface {
	Create(ctx context.Context, session Session) error
	GetUserByToken(ctx context.Context, token string, now time.Time) (User, error)
	DeleteByToken(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// Session represents an issued bearer token with its expiry.
type Session struct {
	Token     string
	UserID    uuid.UUID
	ExpiresAt time.Time
	CreatedAt time.Time
}
