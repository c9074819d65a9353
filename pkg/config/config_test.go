package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backoffice/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://inventory.example.com/api")

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "https://inventory.example.com/api", cfg.API.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.API.Timeout)
	assert.Equal(t, 2*time.Minute, cfg.Cache.FastTTL)
	assert.Equal(t, 5*time.Minute, cfg.Cache.SlowTTL)
	assert.Equal(t, ":8080", cfg.App.Addr())
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://localhost:3000")
	t.Setenv("CACHE_FAST_TTL", "30s")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("METRICS_ENABLED", "false")

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.Cache.FastTTL)
	assert.Equal(t, 9090, cfg.App.Port)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backoffice.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
app:
  env: production
api:
  base_url: https://inventory.internal
cache:
  slow_ttl: 10m
`), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.False(t, cfg.App.IsDevelopment())
	assert.Equal(t, "https://inventory.internal", cfg.API.BaseURL)
	assert.Equal(t, 10*time.Minute, cfg.Cache.SlowTTL)
	assert.Equal(t, 2*time.Minute, cfg.Cache.FastTTL)
}

func TestLoad_RequiresBaseURL(t *testing.T) {
	t.Setenv("API_BASE_URL", "")

	_, err := config.Load("")
	assert.ErrorContains(t, err, "api.base_url")
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
