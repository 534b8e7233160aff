// Package config loads engage settings from environment variables with
// defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/engage/internal/domain"
)

// Config holds all runtime configuration values.
type Config struct {
	// DBPath is the SQLite database file.
	DBPath string

	// HTTPAddr is the listen address for `engage serve`.
	HTTPAddr string

	// HTTPTimeout bounds reads and writes on the HTTP server.
	HTTPTimeout time.Duration

	// Tenant scopes authoring commands.
	Tenant string

	// ViewMode is the default hydration audience.
	ViewMode domain.ViewMode

	// ResolveConcurrency caps concurrent artifact lookups per fan-out.
	ResolveConcurrency int

	// Location is the timezone in which "today" is derived.
	Location *time.Location

	LogLevel    string
	LogUseCases bool
}

// Load reads configuration from the environment. Unparseable numeric or
// duration values fall back to defaults; an unknown view mode or timezone is
// an error.
func Load() (Config, error) {
	dbPath := os.Getenv("ENGAGE_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".engage", "engage.db")
	}

	mode, err := domain.ParseViewMode(os.Getenv("ENGAGE_VIEW_MODE"))
	if err != nil {
		return Config{}, fmt.Errorf("ENGAGE_VIEW_MODE: %w", err)
	}

	loc, err := time.LoadLocation(envOr("ENGAGE_TZ", "UTC"))
	if err != nil {
		return Config{}, fmt.Errorf("ENGAGE_TZ: %w", err)
	}

	return Config{
		DBPath:             dbPath,
		HTTPAddr:           envOr("ENGAGE_HTTP_ADDR", ":8080"),
		HTTPTimeout:        envDuration("ENGAGE_HTTP_TIMEOUT", 15*time.Second),
		Tenant:             envOr("ENGAGE_TENANT", "default"),
		ViewMode:           mode,
		ResolveConcurrency: envInt("ENGAGE_RESOLVE_CONCURRENCY", 8),
		Location:           loc,
		LogLevel:           envOr("ENGAGE_LOG_LEVEL", "info"),
		LogUseCases:        envBool("ENGAGE_LOG_USE_CASES", false),
	}, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func envBool(key string, fallback bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
