package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minesite/dispatch-form/internal/infrastructure/config"
)

func testConfig(backend string) *config.Config {
	cfg := &config.Config{}
	cfg.Store.Backend = backend
	return cfg
}

func TestOpen_Backends(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)

	sqlite := testConfig(config.BackendSQLite)
	sqlite.Store.SQLitePath = filepath.Join(t.TempDir(), "kv.db")
	rds := testConfig(config.BackendRedis)
	rds.Redis.Addr = mr.Addr()

	for _, cfg := range []*config.Config{testConfig(config.BackendMemory), sqlite, rds} {
		t.Run(cfg.Store.Backend, func(t *testing.T) {
			b, err := Open(ctx, cfg, zerolog.Nop())
			require.NoError(t, err)
			defer b.Close()

			require.NoError(t, b.Ping.Ping(ctx))
			require.NoError(t, b.Store.Set(ctx, "k", "v"))
			v, ok, err := b.Store.Get(ctx, "k")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "v", v)

			claimed, err := b.Guard.Claim(ctx, "idem-1")
			require.NoError(t, err)
			assert.True(t, claimed)
		})
	}
}

func TestOpen_UnknownBackend(t *testing.T) {
	_, err := Open(context.Background(), testConfig("floppy"), zerolog.Nop())
	assert.Error(t, err)
}
