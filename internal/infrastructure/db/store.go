// Package db opens the KV backend named in configuration.
package db

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/minesite/dispatch-form/internal/core/ports"
	"github.com/minesite/dispatch-form/internal/infrastructure/config"
	"github.com/minesite/dispatch-form/internal/infrastructure/db/memory"
	"github.com/minesite/dispatch-form/internal/infrastructure/db/mongo"
	"github.com/minesite/dispatch-form/internal/infrastructure/db/redis"
	"github.com/minesite/dispatch-form/internal/infrastructure/db/sqlstore"
)

// Backend bundles an opened store with its health probe, submit guard and
// a closer for shutdown.
type Backend struct {
	Name  string
	Store ports.KVStore
	Ping  ports.Pinger
	Guard ports.SubmitGuard
	close func() error
}

func (b *Backend) Close() error {
	if b.close == nil {
		return nil
	}
	return b.close()
}

// Open connects to cfg.Store.Backend.
func Open(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Backend, error) {
	b := &Backend{
		Name:  cfg.Store.Backend,
		Guard: memory.NewSubmitGuard(cfg.Store.IdempotencyTTL),
	}

	switch cfg.Store.Backend {
	case config.BackendMemory:
		s := memory.NewStore()
		b.Store, b.Ping = s, s

	case config.BackendSQLite, config.BackendPostgres:
		driver, dsn := sqlstore.DriverSQLite, cfg.Store.SQLitePath
		if cfg.Store.Backend == config.BackendPostgres {
			driver, dsn = sqlstore.DriverPostgres, cfg.Store.DatabaseURL
		}
		s, err := sqlstore.Open(ctx, driver, dsn)
		if err != nil {
			return nil, err
		}
		b.Store, b.Ping, b.close = s, s, s.Close

	case config.BackendMongo:
		s, err := mongo.Open(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, err
		}
		b.Store, b.Ping, b.close = s, s, s.Close

	case config.BackendRedis:
		s, err := redis.Open(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB, Prefix: cfg.Redis.Prefix})
		if err != nil {
			return nil, err
		}
		b.Store, b.Ping, b.close = s, s, s.Close
		b.Guard = s.SubmitGuard(cfg.Store.IdempotencyTTL)

	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}

	log.Info().Str("backend", b.Name).Msg("store opened")
	return b, nil
}
