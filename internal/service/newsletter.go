package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/ozodbek/blogapi/internal/apierrors"
	"github.com/ozodbek/blogapi/internal/logger"
	"github.com/ozodbek/blogapi/internal/model"
)

// Newsletter implements newsletter subscriptions.
type Newsletter struct {
	store  model.NewsletterStore
	logger *logger.Logger
}

func NewNewsletter(store model.NewsletterStore, logger *logger.Logger) *Newsletter {
	return &Newsletter{
		store:  store,
		logger: logger,
	}
}

// Subscribe adds an email to the newsletter list.
func (s *Newsletter) Subscribe(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if _, err := mail.ParseAddress(email); err != nil {
		return apierrors.NewValidationError("Noto'g'ri email format")
	}

	if _, err := s.store.Create(ctx, email); err != nil {
		if errors.Is(err, model.ErrDuplicate) {
			return apierrors.NewConflictError("Bu email allaqachon obuna bo'lgan")
		}
		return fmt.Errorf("failed to create subscriber: %w", err)
	}

	s.logger.Info("Newsletter service: subscribed",
		"email", email)

	return nil
}

// Subscribers returns all newsletter subscriptions, newest first.
func (s *Newsletter) Subscribers(ctx context.Context) ([]model.Subscriber, error) {
	subscribers, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscribers: %w", err)
	}
	return subscribers, nil
}
