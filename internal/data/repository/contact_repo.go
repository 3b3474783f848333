package repository

import (
	"context"
	"fmt"

	"flight-booking/internal/data/entity"
	"flight-booking/pkg/database"
	"flight-booking/pkg/utils"

	"go.uber.org/zap"
)

type ContactRepository interface {
	Create(ctx context.Context, contact *entity.ContactMessage) error
	FindAll(ctx context.Context, limit, offset int) ([]*entity.ContactMessage, error)
	CountAll(ctx context.Context) (int64, error)
}

type contactRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewContactRepository(db database.PgxIface, log *zap.Logger) ContactRepository {
	return &contactRepository{
		db:  db,
		log: log.With(zap.String("repository", "contact")),
	}
}

// Create inserts the message and fills its generated id and timestamp
func (r *contactRepository) Create(ctx context.Context, contact *entity.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (name, email, message)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		contact.Name,
		contact.Email,
		contact.Message,
	).Scan(&contact.ID, &contact.CreatedAt)

	if err != nil {
		r.log.Error("Failed to create contact message",
			zap.Error(err),
			zap.String("email", contact.Email),
		)
		return utils.NewStoreError(fmt.Sprintf("create contact message from %s", contact.Email), err)
	}

	r.log.Info("Contact message stored", zap.Int64("contact_id", contact.ID))
	return nil
}

// FindAll retrieves a page of messages, newest first
func (r *contactRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.ContactMessage, error) {
	query := `
		SELECT id, name, email, message, created_at
		FROM contact_messages
		ORDER BY id DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to get contact messages",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, utils.NewStoreError(fmt.Sprintf("find contact messages limit %d offset %d", limit, offset), err)
	}
	defer rows.Close()

	contacts := make([]*entity.ContactMessage, 0)
	for rows.Next() {
		var contact entity.ContactMessage
		err := rows.Scan(
			&contact.ID,
			&contact.Name,
			&contact.Email,
			&contact.Message,
			&contact.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan contact row", zap.Error(err))
			return nil, utils.NewStoreError("scan contact row", err)
		}
		contacts = append(contacts, &contact)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, utils.NewStoreError("iterate contact rows", err)
	}

	return contacts, nil
}

func (r *contactRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM contact_messages`

	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		r.log.Error("Database error counting contact messages", zap.Error(err))
		return 0, utils.NewStoreError("count contact messages", err)
	}

	return count, nil
}
