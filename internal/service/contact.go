package service

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/ozodbek/blogapi/internal/apierrors"
	"github.com/ozodbek/blogapi/internal/logger"
	"github.com/ozodbek/blogapi/internal/model"
)

// Contact implements the contact form.
type Contact struct {
	store  model.ContactStore
	logger *logger.Logger
}

func NewContact(store model.ContactStore, logger *logger.Logger) *Contact {
	return &Contact{
		store:  store,
		logger: logger,
	}
}

// Submit stores a contact form submission.
func (s *Contact) Submit(ctx context.Context, name, email, message string) error {
	name = strings.TrimSpace(name)
	message = strings.TrimSpace(message)
	email = strings.TrimSpace(email)

	if name == "" || message == "" {
		return apierrors.NewValidationError("Barcha maydonlarni to'ldiring")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return apierrors.NewValidationError("Noto'g'ri email format")
	}

	msg := model.ContactMessage{
		Name:    name,
		Email:   email,
		Message: message,
	}
	if err := s.store.Create(ctx, msg); err != nil {
		return fmt.Errorf("failed to create contact message: %w", err)
	}

	s.logger.Info("Contact service: message received",
		"email", email)

	return nil
}
