package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"

	"github.com/ozodbek/blogapi/internal/apierrors"
	"github.com/ozodbek/blogapi/internal/logger"
	"github.com/ozodbek/blogapi/internal/model"
)

// Verification issues and checks one-time email verification codes.
type Verification struct {
	codeStore model.VerificationCodeStore
	mailer    model.Mailer
	logger    *logger.Logger
}

func NewVerification(codeStore model.VerificationCodeStore, mailer model.Mailer, logger *logger.Logger) *Verification {
	return &Verification{
		codeStore: codeStore,
		mailer:    mailer,
		logger:    logger,
	}
}

// Issue generates a fresh code for (email, purpose), supersedes any
// previous active code, stores it and mails it out. If delivery fails
// the stored code is removed so it is never considered issued.
func (s *Verification) Issue(ctx context.Context, email, purpose string) error {
	s.logger.Debug("Verification service: issuing code",
		"email", email,
		"purpose", purpose)

	code, err := generateNumericCode()
	if err != nil {
		return fmt.Errorf("failed to generate verification code: %w", err)
	}

	if err := s.codeStore.SupersedeActive(ctx, email, purpose); err != nil {
		return fmt.Errorf("failed to supersede previous codes: %w", err)
	}

	now := time.Now()
	vc := model.VerificationCode{
		ID:        uuid.New(),
		Email:     email,
		Code:      code,
		Purpose:   purpose,
		Used:      false,
		ExpiresAt: now.Add(model.VerificationCodeTTL),
		CreatedAt: now,
	}

	if err := s.codeStore.Create(ctx, vc); err != nil {
		return fmt.Errorf("failed to store verification code: %w", err)
	}

	body := fmt.Sprintf("Tasdiqlash kodingiz: %s\n\nKod %d daqiqa davomida amal qiladi.",
		code, int(model.VerificationCodeTTL.Minutes()))

	if err := s.mailer.Send([]string{email}, "Email tasdiqlash kodi", body); err != nil {
		s.logger.Error("Verification service: mail delivery failed",
			"email", email,
			"purpose", purpose,
			"error", err.Error())

		if delErr := s.codeStore.Delete(ctx, vc.ID); delErr != nil {
			s.logger.Error("Verification service: failed to roll back undelivered code",
				"email", email,
				"error", delErr.Error())
		}
		return apierrors.NewDependencyError("Email yuborishda xatolik yuz berdi")
	}

	s.logger.Info("Verification service: code issued",
		"email", email,
		"purpose", purpose)

	return nil
}

// Verify checks a submitted code for (email, purpose). The comparison
// is exact and case-sensitive; a successful check consumes the code.
func (s *Verification) Verify(ctx context.Context, email, submitted, purpose string) error {
	s.logger.Debug("Verification service: verifying code",
		"email", email,
		"purpose", purpose)

	vc, err := s.codeStore.GetActive(ctx, email, purpose)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return apierrors.NewValidationError("Tasdiqlash kodi topilmadi")
		}
		return fmt.Errorf("failed to get active verification code: %w", err)
	}

	if time.Now().After(vc.ExpiresAt) {
		return apierrors.NewValidationError("Tasdiqlash kodi muddati tugagan")
	}

	if vc.Code != submitted {
		return apierrors.NewValidationError("Tasdiqlash kodi noto'g'ri")
	}

	if err := s.codeStore.MarkUsed(ctx, vc.ID); err != nil {
		return fmt.Errorf("failed to consume verification code: %w", err)
	}

	s.logger.Info("Verification service: code verified",
		"email", email,
		"purpose", purpose)

	return nil
}

func generateNumericCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
