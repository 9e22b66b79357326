package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/martingeoffreyprive-hub/DEAL-sub001/locale"
)

const (
	defaultDatabaseURL = "postgres://localhost:5432/deal?sslmode=disable"
	defaultCacheTTL    = 5 * time.Minute
	defaultLogLevel    = "info"
)

type Config struct {
	DatabaseURL   string
	RedisURL      string
	CacheTTL      time.Duration
	LogLevel      string
	DefaultLocale locale.Code
}

// Load reads the configuration from the environment, after an optional .env file.
func Load() (*Config, error) {
	// .env is optional when the variables come from the environment.
	_ = godotenv.Load()
	return fromEnv(os.Getenv)
}

func fromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		DatabaseURL: strings.TrimSpace(getenv("DATABASE_URL")),
		RedisURL:    strings.TrimSpace(getenv("REDIS_URL")),
		LogLevel:    strings.ToLower(strings.TrimSpace(getenv("LOG_LEVEL"))),
	}

	if raw := strings.TrimSpace(getenv("TEMPLATE_CACHE_TTL")); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("config: invalid TEMPLATE_CACHE_TTL %q: %w", raw, err)
		}
		cfg.CacheTTL = ttl
	}

	if raw := strings.TrimSpace(getenv("DEFAULT_LOCALE")); raw != "" {
		if !locale.IsValidLocaleCode(raw) {
			return nil, fmt.Errorf("config: unsupported DEFAULT_LOCALE %q (want one of %v)", raw, locale.Codes())
		}
		cfg.DefaultLocale = locale.Code(raw)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.DatabaseURL == "" {
		c.DatabaseURL = defaultDatabaseURL
	}
	parsed, err := url.Parse(c.DatabaseURL)
	if err != nil {
		return fmt.Errorf("config: invalid DATABASE_URL (%q): %w", c.DatabaseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: invalid DATABASE_URL (%q): missing scheme or host", c.DatabaseURL)
	}

	if c.RedisURL != "" {
		parsed, err := url.Parse(c.RedisURL)
		if err != nil {
			return fmt.Errorf("config: invalid REDIS_URL (%q): %w", c.RedisURL, err)
		}
		if parsed.Scheme != "redis" && parsed.Scheme != "rediss" {
			return fmt.Errorf("config: invalid REDIS_URL (%q): scheme must be redis or rediss", c.RedisURL)
		}
	}

	if c.CacheTTL < 0 {
		return fmt.Errorf("config: TEMPLATE_CACHE_TTL must not be negative")
	}
	if c.CacheTTL == 0 {
		c.CacheTTL = defaultCacheTTL
	}

	switch c.LogLevel {
	case "":
		c.LogLevel = defaultLogLevel
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unsupported LOG_LEVEL %q", c.LogLevel)
	}

	if c.DefaultLocale == "" {
		c.DefaultLocale = locale.DefaultCode
	}
	return nil
}
