package model

import (
	"context"
	"time"
)

// NewsletterStore persists newsletter subscriptions.
type NewsletterStore interface {
	GetByEmail(ctx context.Context, email string) (Subscriber, error)
	Create(ctx context.Context, email string) (Subscriber, error)
	List(ctx context.Context) ([]Subscriber, error)
}

// Subscriber represents a newsletter subscription.
type Subscriber struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// ContactStore persists contact form submissions.
type ContactStore interface {
	Create(ctx context.Context, message ContactMessage) error
}

// ContactMessage represents a contact form submission.
type ContactMessage struct {
	ID        int64
	Name      string
	Email     string
	Message   string
	CreatedAt time.Time
}
