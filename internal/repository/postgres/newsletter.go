package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ozodbek/blogapi/internal/model"
)

var _ model.NewsletterStore = (*NewsletterRepository)(nil)

type NewsletterRepository struct {
	db *Connection
}

func NewNewsletterRepository(db *Connection) *NewsletterRepository {
	return &NewsletterRepository{db: db}
}

func (r *NewsletterRepository) GetByEmail(ctx context.Context, email string) (model.Subscriber, error) {
	const query = `SELECT id, email, created_at FROM newsletter_subscribers WHERE email = $1`

	var sub model.Subscriber
	err := r.db.QueryRow(ctx, query, email).Scan(&sub.ID, &sub.Email, &sub.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Subscriber{}, model.ErrNotFound
		}
		return model.Subscriber{}, fmt.Errorf("failed to get subscriber by email: %w", err)
	}
	return sub, nil
}

func (r *NewsletterRepository) Create(ctx context.Context, email string) (model.Subscriber, error) {
	const query = `
        INSERT INTO newsletter_subscribers (email)
        VALUES ($1)
        RETURNING id, email, created_at
    `

	var sub model.Subscriber
	err := r.db.QueryRow(ctx, query, email).Scan(&sub.ID, &sub.Email, &sub.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return model.Subscriber{}, model.ErrDuplicate
		}
		return model.Subscriber{}, fmt.Errorf("failed to create subscriber: %w", err)
	}
	return sub, nil
}

func (r *NewsletterRepository) List(ctx context.Context) ([]model.Subscriber, error) {
	const query = `SELECT id, email, created_at FROM newsletter_subscribers ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscribers: %w", err)
	}
	defer rows.Close()

	subscribers := make([]model.Subscriber, 0)
	for rows.Next() {
		var sub model.Subscriber
		if err := rows.Scan(&sub.ID, &sub.Email, &sub.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan subscriber: %w", err)
		}
		subscribers = append(subscribers, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate subscribers: %w", err)
	}

	return subscribers, nil
}
