package config

import (
	"strings"
	"testing"
	"time"

	"github.com/martingeoffreyprive-hub/DEAL-sub001/locale"
)

func envOf(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := fromEnv(envOf(nil))
	if err != nil {
		t.Fatalf("fromEnv: %v", err)
	}
	if cfg.DatabaseURL != defaultDatabaseURL {
		t.Fatalf("DatabaseURL = %q", cfg.DatabaseURL)
	}
	if cfg.RedisURL != "" {
		t.Fatalf("RedisURL = %q", cfg.RedisURL)
	}
	if cfg.CacheTTL != 5*time.Minute {
		t.Fatalf("CacheTTL = %v", cfg.CacheTTL)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("LogLevel = %q", cfg.LogLevel)
	}
	if cfg.DefaultLocale != locale.FrBE {
		t.Fatalf("DefaultLocale = %q", cfg.DefaultLocale)
	}
}

func TestFromEnvValues(t *testing.T) {
	cfg, err := fromEnv(envOf(map[string]string{
		"DATABASE_URL":       "postgres://deal:secret@db:5432/deal",
		"REDIS_URL":          "redis://cache:6379/1",
		"TEMPLATE_CACHE_TTL": "90s",
		"LOG_LEVEL":          "DEBUG",
		"DEFAULT_LOCALE":     "fr-CH",
	}))
	if err != nil {
		t.Fatalf("fromEnv: %v", err)
	}
	if cfg.DatabaseURL != "postgres://deal:secret@db:5432/deal" || cfg.RedisURL != "redis://cache:6379/1" {
		t.Fatalf("urls = %q / %q", cfg.DatabaseURL, cfg.RedisURL)
	}
	if cfg.CacheTTL != 90*time.Second || cfg.LogLevel != "debug" || cfg.DefaultLocale != locale.FrCH {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestFromEnvErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{name: "database without host", env: map[string]string{"DATABASE_URL": "deal"}, want: "DATABASE_URL"},
		{name: "redis scheme", env: map[string]string{"REDIS_URL": "http://cache:6379"}, want: "REDIS_URL"},
		{name: "ttl syntax", env: map[string]string{"TEMPLATE_CACHE_TTL": "five"}, want: "TEMPLATE_CACHE_TTL"},
		{name: "ttl negative", env: map[string]string{"TEMPLATE_CACHE_TTL": "-1m"}, want: "TEMPLATE_CACHE_TTL"},
		{name: "log level", env: map[string]string{"LOG_LEVEL": "verbose"}, want: "LOG_LEVEL"},
		{name: "locale", env: map[string]string{"DEFAULT_LOCALE": "de-DE"}, want: "DEFAULT_LOCALE"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := fromEnv(envOf(tc.env))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q should mention %s", err, tc.want)
			}
		})
	}
}
