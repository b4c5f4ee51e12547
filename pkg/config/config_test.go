package config

import (
	"os"
	"path/filepath"
	"testing"

	apperrors "github.com/Adithya-Monish-Kumar-K/search-server/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Indexer.Workers)
	assert.Equal(t, 1<<20, cfg.Input.MaxLineBytes)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
indexer:
  workers: 2
input:
  maxLineBytes: 4096
logging:
  level: debug
  format: json
metrics:
  enabled: true
  textfile: /tmp/search.prom
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Indexer.Workers)
	assert.Equal(t, 4096, cfg.Input.MaxLineBytes)
	assert.Equal(t, 1_000_000, cfg.Input.MaxDocuments, "unset keys keep defaults")
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/tmp/search.prom", cfg.Metrics.Textfile)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SP_INDEXER_WORKERS", "8")
	t.Setenv("SP_LOGGING_FORMAT", "json")
	t.Setenv("SP_METRICS_TEXTFILE", "out.prom")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Indexer.Workers)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "out.prom", cfg.Metrics.Textfile)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrConfig)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("indexer: [1, 2"), 0o644))
	_, err = Load(bad)
	assert.ErrorIs(t, err, apperrors.ErrConfig)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero workers", func(c *Config) { c.Indexer.Workers = 0 }},
		{"zero line cap", func(c *Config) { c.Input.MaxLineBytes = 0 }},
		{"negative max documents", func(c *Config) { c.Input.MaxDocuments = -1 }},
		{"unknown format", func(c *Config) { c.Logging.Format = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Equal(t, apperrors.ExitConfig, apperrors.ExitCode(err))
		})
	}
	assert.NoError(t, defaultConfig().Validate())
}
