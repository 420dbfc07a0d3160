package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:1234", cfg.API.BaseURL)
	assert.Equal(t, time.Duration(0), cfg.API.Timeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Pretty)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "alumnet.yaml")
	data := `
api:
  base_url: https://alumni.college.example
  timeout: 10s
logging:
  level: debug
  pretty: true
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://alumni.college.example", cfg.API.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.API.Timeout)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Pretty)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "alumnet.yaml")
	data := `
api:
  base_url: http://from-file:1234
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	t.Setenv("ALUMNET_API_BASE_URL", "http://from-env:4321")
	t.Setenv("ALUMNET_API_TIMEOUT", "30s")
	t.Setenv("ALUMNET_LOG_PRETTY", "true")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://from-env:4321", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.True(t, cfg.Logging.Pretty)
}

func TestMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:1234", cfg.API.BaseURL)
}

func TestInvalidValues(t *testing.T) {
	t.Run("bad scheme", func(t *testing.T) {
		t.Setenv("ALUMNET_API_BASE_URL", "ftp://backend")
		_, err := Load("")
		require.Error(t, err)
	})

	t.Run("bad duration", func(t *testing.T) {
		t.Setenv("ALUMNET_API_TIMEOUT", "soon")
		_, err := Load("")
		require.Error(t, err)
	})

	t.Run("unparseable yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "alumnet.yaml")
		require.NoError(t, os.WriteFile(path, []byte("api: ["), 0o600))
		_, err := Load(path)
		require.Error(t, err)
	})
}
