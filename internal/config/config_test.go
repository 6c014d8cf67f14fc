package config

import (
	"testing"
	"time"
)

func TestLoad_RequiresSessionSecret(t *testing.T) {
	t.Setenv("SESSION_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatal("Load() without SESSION_SECRET succeeded, want error")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SESSION_SECRET", "s3cret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.ServerAddr != ":8080" {
		t.Errorf("ServerAddr = %q, want :8080", cfg.ServerAddr)
	}
	if cfg.StoreBackend != BackendMemory {
		t.Errorf("StoreBackend = %q, want %q", cfg.StoreBackend, BackendMemory)
	}
	if cfg.SessionTTL != 60*time.Minute {
		t.Errorf("SessionTTL = %v, want 60m", cfg.SessionTTL)
	}
	if cfg.CookieSecure {
		t.Error("CookieSecure = true, want false by default")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SESSION_SECRET", "s3cret")
	t.Setenv("SERVER_ADDR", ":9000")
	t.Setenv("STORE_BACKEND", "sqlite")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("COOKIE_SECURE", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.ServerAddr != ":9000" {
		t.Errorf("ServerAddr = %q, want :9000", cfg.ServerAddr)
	}
	if cfg.StoreBackend != BackendSQLite {
		t.Errorf("StoreBackend = %q, want sqlite", cfg.StoreBackend)
	}
	if cfg.SessionTTL != 30*time.Minute {
		t.Errorf("SessionTTL = %v, want 30m", cfg.SessionTTL)
	}
	if !cfg.CookieSecure {
		t.Error("CookieSecure = false, want true")
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "unknown backend", key: "STORE_BACKEND", value: "cassandra"},
		{name: "bad ttl", key: "SESSION_TTL", value: "soon"},
		{name: "bad cookie flag", key: "COOKIE_SECURE", value: "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SESSION_SECRET", "s3cret")
			t.Setenv(tt.key, tt.value)

			if _, err := Load(); err == nil {
				t.Errorf("Load() with %s=%q succeeded, want error", tt.key, tt.value)
			}
		})
	}
}
