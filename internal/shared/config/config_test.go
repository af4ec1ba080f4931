package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.Env != "dev" {
		t.Fatalf("expected default env dev, got %q", cfg.Env)
	}
	if cfg.MaxUploadBytes != 5<<20 {
		t.Fatalf("expected 5MB default upload limit, got %d", cfg.MaxUploadBytes)
	}
	if cfg.RateLimitRPS != 5 || cfg.RateLimitBurst != 10 {
		t.Fatalf("unexpected rate limit defaults: %v, %d", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "Production")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://a.example, http://b.example ,")
	t.Setenv("MAX_UPLOAD_BYTES", "1048576")

	cfg := Load()
	if cfg.Port != "9090" {
		t.Fatalf("expected port 9090, got %q", cfg.Port)
	}
	if cfg.Env != "production" {
		t.Fatalf("expected env normalized to production, got %q", cfg.Env)
	}
	if len(cfg.CORSAllowOrigin) != 2 || cfg.CORSAllowOrigin[1] != "http://b.example" {
		t.Fatalf("unexpected origins: %v", cfg.CORSAllowOrigin)
	}
	if cfg.MaxUploadBytes != 1048576 {
		t.Fatalf("expected 1MB limit, got %d", cfg.MaxUploadBytes)
	}
}

func TestLoadRejectsInvalidNumbers(t *testing.T) {
	t.Setenv("MAX_UPLOAD_BYTES", "not-a-number")
	t.Setenv("RATE_LIMIT_RPS", "-3")

	cfg := Load()
	if cfg.MaxUploadBytes != 5<<20 {
		t.Fatalf("invalid value should fall back to default, got %d", cfg.MaxUploadBytes)
	}
	if cfg.RateLimitRPS != 5 {
		t.Fatalf("negative rate should fall back to default, got %v", cfg.RateLimitRPS)
	}
}
