package config

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crowdfund/internal/config/configs"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := parse(env.Options{Environment: map[string]string{}})
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, configs.StoragePostgres, cfg.Storage.Backend)
	assert.False(t, cfg.Psql.RunMigrations)
	assert.Equal(t, "localhost:5432", cfg.Psql.Addr.Host)
}

func TestParseOverrides(t *testing.T) {
	cfg, err := parse(env.Options{Environment: map[string]string{
		"HTTP_PORT":           "9090",
		"LOG_LEVEL":           "debug",
		"LOG_FORMAT":          "JSON",
		"STORAGE_BACKEND":     "Memory",
		"PSQL_RUN_MIGRATIONS": "true",
		"PSQL_MAX_CONNS":      "8",
	}})
	require.NoError(t, err)

	assert.Equal(t, uint16(9090), cfg.HTTP.Port)
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
	assert.Equal(t, "json", cfg.Log.SlogFormat())
	backend, err := cfg.Storage.Normalized()
	require.NoError(t, err)
	assert.Equal(t, configs.StorageMemory, backend)
	assert.True(t, cfg.Psql.RunMigrations)
	assert.Equal(t, int32(8), cfg.Psql.MaxConns)
}

func TestParseUnknownStorage(t *testing.T) {
	_, err := parse(env.Options{Environment: map[string]string{"STORAGE_BACKEND": "redis"}})
	require.Error(t, err)
}

func TestLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := configs.Logger{Level: "warn", Format: "json"}.NewLogger(&buf)

	logger.Info("hidden")
	logger.Warn("shown", slog.String("campaign_id", "c1"))

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"campaign_id":"c1"`)
}
