package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_GetSetRemove(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	_, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "k", "v1"))
	require.NoError(t, s.Set(ctx, "k", "v2"))
	v, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v2", v)

	require.NoError(t, s.Remove(ctx, "k"))
	require.NoError(t, s.Remove(ctx, "k"))
	_, ok, _ = s.Get(ctx, "k")
	assert.False(t, ok)
}

func TestSubmitGuard_Claim(t *testing.T) {
	ctx := context.Background()
	g := NewSubmitGuard(time.Minute)
	now := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	g.now = func() time.Time { return now }

	ok, err := g.Claim(ctx, "abc")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, _ = g.Claim(ctx, "abc")
	assert.False(t, ok, "replay within ttl must be rejected")

	now = now.Add(2 * time.Minute)
	ok, _ = g.Claim(ctx, "abc")
	assert.True(t, ok, "key should be claimable again after ttl")
}
