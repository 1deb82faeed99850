package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type SessionStore string

const (
	MemorySessions SessionStore = "memory"
	SQLiteSessions SessionStore = "sqlite"
)

type Config struct {
	Addr            string
	Locale          string
	SeedName        string
	SeedFile        string
	DatabasePath    string
	SessionStore    SessionStore
	SessionLifetime time.Duration
	CORSOrigins     []string
	LogLevel        slog.Level
}

// Load reads the configuration from the environment, loading .env first when
// it exists.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv(os.Getenv)
}

func FromEnv(getenv func(string) string) (*Config, error) {
	get := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	cfg := &Config{
		Addr:         get("ADDR", ":8080"),
		Locale:       get("LOCALE", "fr-FR"),
		SeedName:     get("SEED_NAME", "eight"),
		SeedFile:     get("SEED_FILE", ""),
		DatabasePath: get("DATABASE_PATH", ""),
		SessionStore: SessionStore(get("SESSION_STORE", string(MemorySessions))),
	}

	lifetime, err := time.ParseDuration(get("SESSION_LIFETIME", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_LIFETIME: %w", err)
	}
	if lifetime <= 0 {
		return nil, fmt.Errorf("SESSION_LIFETIME must be positive, got %s", lifetime)
	}
	cfg.SessionLifetime = lifetime

	switch cfg.SessionStore {
	case MemorySessions:
	case SQLiteSessions:
		if cfg.DatabasePath == "" {
			return nil, fmt.Errorf("SESSION_STORE=sqlite requires DATABASE_PATH")
		}
	default:
		return nil, fmt.Errorf("unknown SESSION_STORE %q", cfg.SessionStore)
	}

	for _, origin := range strings.Split(get("CORS_ORIGINS", ""), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, origin)
		}
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(get("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	return cfg, nil
}
