package config

import (
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("STOREFRONT_APP_ENV", "dev")
	t.Setenv("STOREFRONT_APP_PORT", "8080")
	t.Setenv("STOREFRONT_JWT_SECRET", "test-secret")
	t.Setenv("STOREFRONT_ADMIN_USERNAME", "admin")
	t.Setenv("STOREFRONT_ADMIN_PASSWORD_HASH", "$argon2id$v=19$m=65536,t=3,p=2$c2FsdA$aGFzaA")
}

func TestLoadAppliesDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.App.LogLevel != "info" {
		t.Fatalf("expected default log level info, got %q", cfg.App.LogLevel)
	}
	if cfg.JWT.ExpirationMinutes != 60 {
		t.Fatalf("expected default expiration 60, got %d", cfg.JWT.ExpirationMinutes)
	}
	if cfg.Cart.TTL != time.Hour {
		t.Fatalf("expected default cart ttl 1h, got %s", cfg.Cart.TTL)
	}
	if !cfg.App.IsDev() || cfg.App.IsProd() {
		t.Fatal("expected dev environment")
	}
}

func TestLoadFailsWithoutRequiredVars(t *testing.T) {
	t.Setenv("STOREFRONT_APP_ENV", "")
	t.Setenv("STOREFRONT_APP_PORT", "")
	t.Setenv("STOREFRONT_JWT_SECRET", "")
	t.Setenv("STOREFRONT_ADMIN_USERNAME", "")
	t.Setenv("STOREFRONT_ADMIN_PASSWORD_HASH", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when required vars are missing")
	}
}

func TestAccessTokenTTL(t *testing.T) {
	t.Parallel()

	cfg := JWTConfig{ExpirationMinutes: 15}
	if got := cfg.AccessTokenTTL(); got != 15*time.Minute {
		t.Fatalf("expected 15m, got %s", got)
	}
	if got := (JWTConfig{}).AccessTokenTTL(); got != 0 {
		t.Fatalf("expected zero ttl, got %s", got)
	}
}
