// Package config loads server configuration from the environment.
package config

import (
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Defaults for everything tunable.
const (
	DefaultModel       = "gemini-2.0-flash"
	DefaultDeadline    = 240 * time.Second
	DefaultRotateDelay = time.Second
)

// Config holds everything the server needs at startup.
type Config struct {
	// RawAPIKeys is the canonical credential source, possibly a
	// comma-separated list. It is resolved into a pool by the keys
	// package and never logged.
	RawAPIKeys string
	// Model is the Gemini model name.
	Model string
	// Deadline bounds total retry time for one generation request.
	Deadline time.Duration
	// RotateDelay is the pause between key rotations.
	RotateDelay time.Duration
	// MetricsAddr, when set, enables the Prometheus listener.
	MetricsAddr string
}

// Load reads configuration from the environment. A .env file in the
// working directory is applied first when present (best effort — a
// missing file is not an error).
func Load(log *slog.Logger) *Config {
	_ = godotenv.Load()

	return &Config{
		RawAPIKeys:  os.Getenv("GEMINI_API_KEY"),
		Model:       envOr("GEMLENS_MODEL", DefaultModel),
		Deadline:    envDuration(log, "GEMLENS_DEADLINE", DefaultDeadline),
		RotateDelay: envDuration(log, "GEMLENS_ROTATE_DELAY", DefaultRotateDelay),
		MetricsAddr: os.Getenv("GEMLENS_METRICS_ADDR"),
	}
}

// envOr returns the value of key, or fallback when unset or empty.
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// envDuration parses key as a Go duration, falling back with a warning
// on unset or malformed values.
func envDuration(log *slog.Logger, key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Warn("invalid duration, using default", "var", key, "value", v, "default", fallback)
		return fallback
	}
	return d
}
