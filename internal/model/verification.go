package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// VerificationCodeTTL is the validity window of an issued verification code.
const VerificationCodeTTL = 15 * time.Minute

// PurposeRegistration scopes codes issued during account registration.
const PurposeRegistration = "registration"

// VerificationCodeStore persists one-time email verification codes.
type VerificationCodeStore interface {
	Create(ctx context.Context, code VerificationCode) error
	GetActive(ctx context.Context, email, purpose string) (VerificationCode, error)
	MarkUsed(ctx context.Context, id uuid.UUID) error
	// SupersedeActive marks every unused code for (email, purpose) as used.
	SupersedeActive(ctx context.Context, email, purpose string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// VerificationCode represents a one-time code delivered by email.
type VerificationCode struct {
	ID        uuid.UUID
	Email     string
	Code      string
	Purpose   string
	Used      bool
	ExpiresAt time.Time
	CreatedAt time.Time
}
