package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/grantreports/core/internal/adapters/repository"
	"github.com/grantreports/core/internal/infrastructure/config"
	"github.com/grantreports/core/internal/infrastructure/database"
	"github.com/grantreports/core/internal/ports"
)

// sessionStores holds the configured store and whatever connection backs it
type sessionStores struct {
	store ports.SessionStore
	db    *database.DB
	redis *redis.Client
}

// openSessionStore builds the store selected by session.driver
func openSessionStore(cfg *config.Config) (*sessionStores, error) {
	switch cfg.Session.Driver {
	case config.SessionDriverMemory:
		return &sessionStores{store: repository.NewMemorySessionStore()}, nil

	case config.SessionDriverRedis:
		client := repository.NewRedisClient(cfg.Redis)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}

		return &sessionStores{
			store: repository.NewRedisSessionStore(client, cfg.Redis.KeyPrefix),
			redis: client,
		}, nil

	case config.SessionDriverPostgres:
		db, err := database.New(cfg.Database)
		if err != nil {
			return nil, err
		}

		return &sessionStores{
			store: repository.NewPostgresSessionStore(db.DB),
			db:    db,
		}, nil

	default:
		return nil, fmt.Errorf("unknown session driver %q", cfg.Session.Driver)
	}
}

// Close releases the store's connection, if any
func (s *sessionStores) Close() error {
	if s.redis != nil {
		return s.redis.Close()
	}
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
