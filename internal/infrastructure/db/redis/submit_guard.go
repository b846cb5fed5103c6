package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/minesite/dispatch-form/internal/core/ports"
)

var _ ports.SubmitGuard = (*SubmitGuard)(nil)

// SubmitGuard provides idempotency for form submits backed by Redis.
// Key format: <prefix>submit:<idempotency_key>
type SubmitGuard struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewSubmitGuard(client *redis.Client, prefix string, ttl time.Duration) *SubmitGuard {
	return &SubmitGuard{client: client, prefix: prefix, ttl: ttl}
}

// Claim reports true the first time key is seen within ttl.
func (g *SubmitGuard) Claim(ctx context.Context, key string) (bool, error) {
	ok, err := g.client.SetNX(ctx, g.key(key), "1", g.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("submit guard: %w", err)
	}
	return ok, nil
}

func (g *SubmitGuard) key(k string) string {
	return fmt.Sprintf("%ssubmit:%s", g.prefix, k)
}
