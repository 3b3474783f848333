package repository

import (
	"context"
	"errors"
	"time"

	"flight-booking/pkg/database"
	"flight-booking/pkg/utils"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// SessionRepository persists opaque session blobs keyed by token. It satisfies
// scs.Store and scs.CtxStore so the session manager can use it directly.
type SessionRepository interface {
	FindCtx(ctx context.Context, token string) ([]byte, bool, error)
	CommitCtx(ctx context.Context, token string, data []byte, expiry time.Time) error
	DeleteCtx(ctx context.Context, token string) error
	Find(token string) ([]byte, bool, error)
	Commit(token string, data []byte, expiry time.Time) error
	Delete(token string) error
	CleanExpiredSessions(ctx context.Context) (int64, error)
	StartCleanup(ctx context.Context, interval time.Duration)
}

type sessionRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSessionRepository(db database.PgxIface, log *zap.Logger) SessionRepository {
	return &sessionRepository{
		db:  db,
		log: log.With(zap.String("repository", "session")),
	}
}

func (r *sessionRepository) FindCtx(ctx context.Context, token string) ([]byte, bool, error) {
	query := `
		SELECT data
		FROM sessions
		WHERE token = $1
		  AND expiry > NOW()
	`

	var data []byte
	err := r.db.QueryRow(ctx, query, token).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		r.log.Error("Failed to find session", zap.Error(err))
		return nil, false, utils.NewStoreError("find session", err)
	}

	return data, true, nil
}

func (r *sessionRepository) CommitCtx(ctx context.Context, token string, data []byte, expiry time.Time) error {
	query := `
		INSERT INTO sessions (token, data, expiry)
		VALUES ($1, $2, $3)
		ON CONFLICT (token) DO UPDATE
		SET data = EXCLUDED.data, expiry = EXCLUDED.expiry
	`

	if _, err := r.db.Exec(ctx, query, token, data, expiry); err != nil {
		r.log.Error("Failed to commit session", zap.Error(err))
		return utils.NewStoreError("commit session", err)
	}

	return nil
}

func (r *sessionRepository) DeleteCtx(ctx context.Context, token string) error {
	query := `DELETE FROM sessions WHERE token = $1`

	if _, err := r.db.Exec(ctx, query, token); err != nil {
		r.log.Error("Failed to delete session", zap.Error(err))
		return utils.NewStoreError("delete session", err)
	}

	return nil
}

func (r *sessionRepository) Find(token string) ([]byte, bool, error) {
	return r.FindCtx(context.Background(), token)
}

func (r *sessionRepository) Commit(token string, data []byte, expiry time.Time) error {
	return r.CommitCtx(context.Background(), token, data, expiry)
}

func (r *sessionRepository) Delete(token string) error {
	return r.DeleteCtx(context.Background(), token)
}

// CleanExpiredSessions removes rows past their expiry and returns how many went
func (r *sessionRepository) CleanExpiredSessions(ctx context.Context) (int64, error) {
	query := `DELETE FROM sessions WHERE expiry < NOW()`

	result, err := r.db.Exec(ctx, query)
	if err != nil {
		r.log.Error("Failed to clean expired sessions", zap.Error(err))
		return 0, utils.NewStoreError("clean sessions", err)
	}

	return result.RowsAffected(), nil
}

// StartCleanup sweeps expired sessions every interval until ctx is done
func (r *sessionRepository) StartCleanup(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				removed, err := r.CleanExpiredSessions(ctx)
				if err != nil {
					continue
				}
				if removed > 0 {
					r.log.Debug("Expired sessions removed", zap.Int64("count", removed))
				}
			}
		}
	}()
}
