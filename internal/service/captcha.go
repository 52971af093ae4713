package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ozodbek/blogapi/internal/captcha"
	"github.com/ozodbek/blogapi/internal/logger"
	"github.com/ozodbek/blogapi/internal/model"
)

// Captcha issues image challenges bound to form sessions.
type Captcha struct {
	formStore model.FormSessionStore
	logger    *logger.Logger
}

func NewCaptcha(formStore model.FormSessionStore, logger *logger.Logger) *Captcha {
	return &Captcha{
		formStore: formStore,
		logger:    logger,
	}
}

// Issue generates a fresh challenge, stores the answer in the caller's
// form session and returns the rendered PNG. A valid existing session
// is reused, otherwise a new one is created.
func (s *Captcha) Issue(ctx context.Context, existingID uuid.UUID) (uuid.UUID, []byte, error) {
	code, err := captcha.NewCode()
	if err != nil {
		return uuid.Nil, nil, fmt.Errorf("failed to generate captcha code: %w", err)
	}

	png, err := captcha.Render(code)
	if err != nil {
		return uuid.Nil, nil, fmt.Errorf("failed to render captcha: %w", err)
	}

	now := time.Now()
	expiresAt := now.Add(model.FormSessionDuration)

	sessionID, err := s.attach(ctx, existingID, code, now, expiresAt)
	if err != nil {
		return uuid.Nil, nil, err
	}

	s.logger.Debug("Captcha service: issued challenge",
		"form_session_id", sessionID)

	return sessionID, png, nil
}

func (s *Captcha) attach(ctx context.Context, existingID uuid.UUID, code string, now, expiresAt time.Time) (uuid.UUID, error) {
	if existingID != uuid.Nil {
		fs, err := s.formStore.GetByID(ctx, existingID)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			return uuid.Nil, fmt.Errorf("failed to get form session: %w", err)
		}
		if err == nil && !fs.Expired(now) {
			if err := s.formStore.SetCaptcha(ctx, existingID, code, expiresAt); err != nil {
				return uuid.Nil, fmt.Errorf("failed to store captcha code: %w", err)
			}
			return existingID, nil
		}
	}

	fs := model.FormSession{
		ID:          uuid.New(),
		CaptchaCode: &code,
		ExpiresAt:   expiresAt,
		CreatedAt:   now,
	}
	if err := s.formStore.Create(ctx, fs); err != nil {
		return uuid.Nil, fmt.Errorf("failed to create form session: %w", err)
	}
	return fs.ID, nil
}
