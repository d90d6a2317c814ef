package config

import (
	"context"
	"os"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Port != "3000" {
		t.Fatalf("expected default port 3000, got %q", cfg.Port)
	}
	if cfg.TokenTTL != 2*time.Hour {
		t.Fatalf("expected default token ttl 2h, got %v", cfg.TokenTTL)
	}
	if cfg.JWTSecret != "test-secret" {
		t.Fatalf("unexpected secret %q", cfg.JWTSecret)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("PORT", "8081")
	t.Setenv("TOKEN_TTL", "30m")
	t.Setenv("DATABASE_URL", "postgres://db:5432/test")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Port != "8081" || cfg.TokenTTL != 30*time.Minute {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.Database.URL != "postgres://db:5432/test" {
		t.Fatalf("database url not applied: %q", cfg.Database.URL)
	}
}

func TestLoad_MissingSecret(t *testing.T) {
	// t.Setenv registers cleanup, then the variable is removed so the
	// required check actually fires.
	t.Setenv("JWT_SECRET", "")
	os.Unsetenv("JWT_SECRET")

	if _, err := Load(context.Background()); err == nil {
		t.Fatalf("expected error when JWT_SECRET is unset")
	}
}
