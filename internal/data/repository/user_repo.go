package repository

import (
	"context"
	"errors"
	"fmt"

	"flight-booking/internal/data/entity"
	"flight-booking/pkg/database"
	"flight-booking/pkg/utils"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// uniqueViolation is the Postgres SQLSTATE for a unique constraint failure
const uniqueViolation = "23505"

type UserRepository interface {
	Create(ctx context.Context, user *entity.RegisteredUser) error
	FindByEmail(ctx context.Context, email string) (*entity.RegisteredUser, error)
}

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

// Create inserts a new user record into the database. A concurrent signup that
// wins the race on the email index surfaces as ErrConflict.
func (ur *userRepository) Create(ctx context.Context, user *entity.RegisteredUser) error {
	query := `
		INSERT INTO registered_users (first_name, last_name, email, password_hash, contact_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := ur.db.QueryRow(ctx, query,
		user.FirstName,
		user.LastName,
		user.Email,
		user.PasswordHash,
		user.ContactID,
	).Scan(&user.ID, &user.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			ur.log.Warn("Duplicate signup rejected by store", zap.String("email", user.Email))
			return fmt.Errorf("user %s: %w", user.Email, utils.ErrConflict)
		}

		ur.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("email", user.Email),
		)
		return utils.NewStoreError(fmt.Sprintf("create user %s", user.Email), err)
	}

	return nil
}

// FindByEmail returns nil, nil when no user has the email
func (ur *userRepository) FindByEmail(ctx context.Context, email string) (*entity.RegisteredUser, error) {
	query := `
		SELECT id, COALESCE(first_name, ''), COALESCE(last_name, ''), COALESCE(email, ''),
		       password_hash, contact_id, created_at
		FROM registered_users
		WHERE email = $1
	`

	var user entity.RegisteredUser
	// QueryRow returns at most one row
	err := ur.db.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.PasswordHash,
		&user.ContactID,
		&user.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, utils.NewStoreError(fmt.Sprintf("find user by email %s", email), err)
	}

	return &user, nil
}
