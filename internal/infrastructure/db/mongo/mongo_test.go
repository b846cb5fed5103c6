package mongo

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_BadURI(t *testing.T) {
	_, err := Open(context.Background(), Config{URI: "not-a-uri", Database: "dispatch", Timeout: time.Second})
	assert.Error(t, err)
}

// TestStore_GetSetRemove runs against a live server; set MONGO_URI to enable.
func TestStore_GetSetRemove(t *testing.T) {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		t.Skip("MONGO_URI not set")
	}
	ctx := context.Background()

	db := "dispatch_test_" + uuid.NewString()[:8]
	s, err := Open(ctx, Config{URI: uri, Database: db})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = s.col.Database().Drop(context.Background())
		_ = s.Close()
	})

	_, ok, err := s.Get(ctx, "dispatch_drivers")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "dispatch_drivers", `["AMY"]`))
	require.NoError(t, s.Set(ctx, "dispatch_drivers", `["AMY","BOB"]`))

	v, ok, err := s.Get(ctx, "dispatch_drivers")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `["AMY","BOB"]`, v)

	require.NoError(t, s.Remove(ctx, "dispatch_drivers"))
	require.NoError(t, s.Remove(ctx, "dispatch_drivers"))
	_, ok, err = s.Get(ctx, "dispatch_drivers")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Ping(ctx))
}
