// Package redis keeps the KV documents as Redis strings and backs the
// submit guard with SETNX.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultTimeout = 5 * time.Second

// Config describes the shared Redis instance. Prefix namespaces every key
// written by the store and the submit guard.
type Config struct {
	Addr    string
	DB      int
	Prefix  string
	Timeout time.Duration
}

// Open dials Redis, checks it answers a ping within cfg.Timeout and returns
// a store scoped to cfg.Prefix. The same timeout bounds every later call.
func Open(ctx context.Context, cfg Config) (*Store, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	s := &Store{client: client, prefix: cfg.Prefix, timeout: timeout}
	if err := s.Ping(ctx); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis open %s: %w", cfg.Addr, err)
	}
	return s, nil
}

// SubmitGuard returns a guard sharing this store's client and prefix.
func (s *Store) SubmitGuard(ttl time.Duration) *SubmitGuard {
	return NewSubmitGuard(s.client, s.prefix, ttl)
}

func (s *Store) Close() error {
	return s.client.Close()
}
