package memory

import (
	"context"
	"sync"
	"time"
)

// SubmitGuard remembers idempotency keys in memory for ttl.
type SubmitGuard struct {
	mu   sync.Mutex
	ttl  time.Duration
	now  func() time.Time
	seen map[string]time.Time
}

func NewSubmitGuard(ttl time.Duration) *SubmitGuard {
	return &SubmitGuard{ttl: ttl, now: time.Now, seen: make(map[string]time.Time)}
}

func (g *SubmitGuard) Claim(_ context.Context, key string) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	for k, exp := range g.seen {
		if now.After(exp) {
			delete(g.seen, k)
		}
	}
	if _, ok := g.seen[key]; ok {
		return false, nil
	}
	g.seen[key] = now.Add(g.ttl)
	return true, nil
}
