package session

import (
	"context"
	"fmt"
	"time"

	"flight-booking/internal/data/repository"
	"flight-booking/pkg/utils"

	"github.com/alexedwards/scs/v2"
	"go.uber.org/zap"
)

const (
	StorePostgres = "postgres"
	StoreRedis    = "redis"

	cleanupInterval = 5 * time.Minute
)

// NewStore picks the backing store named by cfg.Session.Store. The returned
// close func releases whatever the store opened.
func NewStore(ctx context.Context, cfg *utils.Config, sessions repository.SessionRepository, log *zap.Logger) (scs.Store, func() error, error) {
	switch cfg.Session.Store {
	case "", StorePostgres:
		sessions.StartCleanup(ctx, cleanupInterval)
		log.Info("Using postgres session store")
		return sessions, func() error { return nil }, nil

	case StoreRedis:
		client := NewRedisClient(cfg.Redis)
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()

		if err := client.Ping(pingCtx).Err(); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("ping redis %s: %w", cfg.Redis.Addr, err)
		}
		log.Info("Using redis session store", zap.String("addr", cfg.Redis.Addr))
		return NewRedisStore(client), client.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown session store %q", cfg.Session.Store)
	}
}
