package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

const (
	defaultCacheTTL    = time.Hour
	defaultLiveTimeout = 30 * time.Second
)

// Config holds runtime settings for the pricing server. Every field has a
// working default; a YAML file and environment variables override in that
// order.
type Config struct {
	LogLevel     string        `yaml:"logLevel"`
	CacheTTL     time.Duration `yaml:"cacheTtl"`
	LiveEndpoint string        `yaml:"liveEndpoint"`
	LiveTimeout  time.Duration `yaml:"liveTimeout"`
}

func defaultConfig() Config {
	return Config{
		LogLevel:    "info",
		CacheTTL:    defaultCacheTTL,
		LiveTimeout: defaultLiveTimeout,
	}
}

// loadConfig builds the effective configuration: defaults, then the optional
// YAML file, then environment overrides.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	if v := os.Getenv("OCI_PRICING_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("OCI_PRICING_CACHE_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid OCI_PRICING_CACHE_TTL %q: %w", v, err)
		}
		cfg.CacheTTL = d
	}
	if v := os.Getenv("OCI_PRICING_LIVE_ENDPOINT"); v != "" {
		cfg.LiveEndpoint = v
	}
	if v := os.Getenv("OCI_PRICING_LIVE_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid OCI_PRICING_LIVE_TIMEOUT %q: %w", v, err)
		}
		cfg.LiveTimeout = d
	}

	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = defaultCacheTTL
	}
	if cfg.LiveTimeout <= 0 {
		cfg.LiveTimeout = defaultLiveTimeout
	}
	return cfg, nil
}

// newLogger builds the process logger. Logs go to stderr; stdout carries the
// MCP transport and must stay clean.
func newLogger(cfg Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Str("service", "oci-pricing-mcp").
		Logger()
}
