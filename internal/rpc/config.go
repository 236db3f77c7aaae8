package rpc

import (
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the upstream API transport.
type Config struct {
	BaseURL    string
	Token      string
	TimeoutMs  int
	MaxRetries int // applies to GET requests only
	LogCalls   bool
	Fanout     int // max concurrent per-item joins and writes
}

// DefaultConfig returns a Config pointing at a local API.
func DefaultConfig() Config {
	return Config{
		BaseURL:    "http://localhost:8080/api",
		TimeoutMs:  8000,
		MaxRetries: 1,
		LogCalls:   false,
		Fanout:     8,
	}
}

// LoadConfig reads transport configuration from environment variables,
// falling back to defaults for any unset or invalid values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("ERUDIA_API_URL"); v != "" {
		cfg.BaseURL = strings.TrimRight(v, "/")
	}
	if v := os.Getenv("ERUDIA_API_TOKEN"); v != "" {
		cfg.Token = v
	}
	if v := os.Getenv("ERUDIA_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("ERUDIA_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}
	if v := os.Getenv("ERUDIA_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("ERUDIA_FANOUT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Fanout = n
		}
	}

	return cfg
}
