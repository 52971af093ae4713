package postgres

import (
	"context"
	"fmt"

	"github.com/ozodbek/blogapi/internal/model"
)

var _ model.ContactStore = (*ContactRepository)(nil)

type ContactRepository struct {
	db *Connection
}

func NewContactRepository(db *Connection) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) Create(ctx context.Context, message model.ContactMessage) error {
	const query = `INSERT INTO contact_messages (name, email, message) VALUES ($1, $2, $3)`

	if _, err := r.db.Exec(ctx, query, message.Name, message.Email, message.Message); err != nil {
		return fmt.Errorf("failed to create contact message: %w", err)
	}
	return nil
}
