// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"fmt"
	"os"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Env is one of "development", "production", "testing".
	Env string

	// SeedDemo controls whether the demo users, posts, and comments are
	// loaded at startup.
	SeedDemo bool

	// TokenFile is an optional path where the session token is persisted
	// between runs. Empty disables session restore.
	TokenFile string
}

// Load reads configuration from environment variables, applying defaults
// for development where appropriate.
func Load() (*Config, error) {
	cfg := &Config{
		Env:       envOrDefault("APP_ENV", "development"),
		SeedDemo:  envOrDefault("SEED_DEMO_DATA", "true") == "true",
		TokenFile: os.Getenv("SESSION_TOKEN_FILE"),
	}

	switch cfg.Env {
	case "development", "production", "testing":
	default:
		return nil, fmt.Errorf("APP_ENV must be development, production, or testing (got %q)", cfg.Env)
	}

	return cfg, nil
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
