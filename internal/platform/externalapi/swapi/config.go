// Package swapi provides a client for SWAPI-compatible people and planets APIs.
package swapi

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultBaseURL   = "https://swapi.dev/api"
	defaultRateLimit = 60
)

// Config holds configuration for the SWAPI client.
type Config struct {
	BaseURL   string        // Base URL without trailing slash (e.g., "https://swapi.dev/api")
	Timeout   time.Duration // HTTP request timeout
	RateLimit int           // Requests per minute; zero or less disables limiting
}

// LoadConfig loads SWAPI configuration from environment variables.
func LoadConfig() Config {
	cfg := Config{
		BaseURL:   strings.TrimRight(os.Getenv("SWAPI_BASE_URL"), "/"),
		Timeout:   10 * time.Second,
		RateLimit: defaultRateLimit,
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if v := os.Getenv("SWAPI_RATE_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			slog.Warn("invalid SWAPI_RATE_LIMIT, using default", "value", v, "default", defaultRateLimit)
		} else {
			cfg.RateLimit = n
		}
	}
	return cfg
}
