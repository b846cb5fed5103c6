package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWith_Defaults(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{}))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.True(t, cfg.Development())
	assert.Equal(t, BackendSQLite, cfg.Store.Backend)
	assert.Equal(t, "dispatch.db", cfg.Store.SQLitePath)
	assert.Equal(t, 3*time.Second, cfg.NoticeTTL)
	assert.Equal(t, 12*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "dispatch_form", cfg.Mongo.Database)
}

func TestLoadWith_Overrides(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"ENV":           "production",
		"STORE_BACKEND": "redis",
		"REDIS_ADDR":    "cache:6379",
		"REDIS_DB":      "2",
		"REDIS_PREFIX":  "kiosk1:",
		"NOTICE_TTL":    "500ms",
	}))
	require.NoError(t, err)

	assert.False(t, cfg.Development())
	assert.Equal(t, BackendRedis, cfg.Store.Backend)
	assert.Equal(t, "cache:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, "kiosk1:", cfg.Redis.Prefix)
	assert.Equal(t, 500*time.Millisecond, cfg.NoticeTTL)
}

func TestLoadWith_Invalid(t *testing.T) {
	cases := map[string]map[string]string{
		"unknown backend":      {"STORE_BACKEND": "cassandra"},
		"postgres without url": {"STORE_BACKEND": "postgres"},
		"bad duration":         {"TOKEN_TTL": "soon"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadWith(context.Background(), envconfig.MapLookuper(env))
			assert.Error(t, err)
		})
	}
}
