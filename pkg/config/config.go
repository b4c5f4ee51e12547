// Package config loads and validates application configuration from a YAML
// file with environment-variable overrides.
package config

import (
	"os"
	"strconv"

	apperrors "github.com/Adithya-Monish-Kumar-K/search-server/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Indexer IndexerConfig `yaml:"indexer"`
	Input   InputConfig   `yaml:"input"`
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// IndexerConfig controls bulk loading.
type IndexerConfig struct {
	// Workers bounds the goroutines that tokenise documents during a bulk
	// load. The index itself always has a single writer.
	Workers int `yaml:"workers"`
}

// InputConfig bounds what the line reader accepts.
type InputConfig struct {
	MaxLineBytes int `yaml:"maxLineBytes"`
	MaxDocuments int `yaml:"maxDocuments"`
}

// LoggingConfig controls structured logging level and output format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MetricsConfig controls Prometheus collection. When Textfile is set the
// registry is written there in text exposition format on exit.
type MetricsConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Textfile string `yaml:"textfile"`
}

// Load reads a YAML config file (if provided) and applies environment-variable
// overrides on top of the defaults.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, apperrors.Newf(apperrors.ErrConfig, apperrors.ExitConfig, "reading config file %s: %v", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, apperrors.Newf(apperrors.ErrConfig, apperrors.ExitConfig, "parsing config file %s: %v", path, err)
		}
	}
	applyEnvOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the program cannot run with.
func (c *Config) Validate() error {
	if c.Indexer.Workers <= 0 {
		return apperrors.Newf(apperrors.ErrConfig, apperrors.ExitConfig, "indexer.workers must be positive, got %d", c.Indexer.Workers)
	}
	if c.Input.MaxLineBytes <= 0 {
		return apperrors.Newf(apperrors.ErrConfig, apperrors.ExitConfig, "input.maxLineBytes must be positive, got %d", c.Input.MaxLineBytes)
	}
	if c.Input.MaxDocuments < 0 {
		return apperrors.Newf(apperrors.ErrConfig, apperrors.ExitConfig, "input.maxDocuments must not be negative, got %d", c.Input.MaxDocuments)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return apperrors.Newf(apperrors.ErrConfig, apperrors.ExitConfig, "logging.format must be text or json, got %q", c.Logging.Format)
	}
	return nil
}

func defaultConfig() *Config {
	return &Config{
		Indexer: IndexerConfig{
			Workers: 4,
		},
		Input: InputConfig{
			MaxLineBytes: 1 << 20,
			MaxDocuments: 1_000_000,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
		},
		Metrics: MetricsConfig{
			Enabled: false,
		},
	}
}

// applyEnvOverrides reads SP_* environment variables and overrides the
// corresponding config fields.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SP_INDEXER_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Indexer.Workers = n
		}
	}
	if v := os.Getenv("SP_INPUT_MAX_LINE_BYTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Input.MaxLineBytes = n
		}
	}
	if v := os.Getenv("SP_INPUT_MAX_DOCUMENTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Input.MaxDocuments = n
		}
	}
	if v := os.Getenv("SP_LOGGING_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("SP_LOGGING_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("SP_METRICS_TEXTFILE"); v != "" {
		cfg.Metrics.Enabled = true
		cfg.Metrics.Textfile = v
	}
}
