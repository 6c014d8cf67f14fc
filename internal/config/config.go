package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Store backends selectable through STORE_BACKEND.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

// Config holds the application settings. It is loaded once from environment
// variables at startup and treated as immutable.
type Config struct {
	// Server
	ServerAddr string

	// Session
	SessionSecret string
	SessionTTL    time.Duration
	CookieSecure  bool

	// Store
	StoreBackend string
	SQLitePath   string
	RedisAddr    string

	// Assets
	TemplatesGlob string
	StaticDir     string
}

// Load reads the Config from environment variables. SESSION_SECRET is the
// one required value; everything else has a default. The memory backend is
// the default store: nothing survives a process restart.
func Load() (*Config, error) {
	cfg := &Config{
		ServerAddr:    getEnv("SERVER_ADDR", ":8080"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		SessionTTL:    60 * time.Minute,
		StoreBackend:  getEnv("STORE_BACKEND", BackendMemory),
		SQLitePath:    getEnv("SQLITE_PATH", "./master.db"),
		RedisAddr:     getEnv("REDIS_CONNSTRING", "localhost:6379"),
		TemplatesGlob: getEnv("TEMPLATES_GLOB", "web/templates/*.html"),
		StaticDir:     getEnv("STATIC_DIR", "web/static"),
	}

	if cfg.SessionSecret == "" {
		return nil, fmt.Errorf("required environment variable SESSION_SECRET is not set")
	}

	switch cfg.StoreBackend {
	case BackendMemory, BackendSQLite, BackendRedis:
	default:
		return nil, fmt.Errorf("unknown STORE_BACKEND %q", cfg.StoreBackend)
	}

	if raw := os.Getenv("SESSION_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid SESSION_TTL %q: %w", raw, err)
		}
		cfg.SessionTTL = ttl
	}

	if raw := os.Getenv("COOKIE_SECURE"); raw != "" {
		secure, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid COOKIE_SECURE %q: %w", raw, err)
		}
		cfg.CookieSecure = secure
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
