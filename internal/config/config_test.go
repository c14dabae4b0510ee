package config

import "testing"

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_PATH", "/tmp/findify.db")
	t.Setenv("JWT_SECRET", "secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.ServerPort != 8080 {
		t.Fatalf("port default mismatch: %d", cfg.ServerPort)
	}
	if cfg.Environment != "development" || cfg.IsProduction() {
		t.Fatalf("environment default mismatch: %q", cfg.Environment)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "http://localhost:5173" {
		t.Fatalf("origins default mismatch: %v", cfg.AllowedOrigins)
	}
	if cfg.RetentionDays != 90 {
		t.Fatalf("retention default mismatch: %d", cfg.RetentionDays)
	}
}

func TestLoad_RequiredKeys(t *testing.T) {
	t.Setenv("DATABASE_PATH", "")
	t.Setenv("JWT_SECRET", "secret")
	if _, err := Load(); err == nil {
		t.Fatal("expected error without DATABASE_PATH")
	}

	t.Setenv("DATABASE_PATH", "/tmp/findify.db")
	t.Setenv("JWT_SECRET", "")
	if _, err := Load(); err == nil {
		t.Fatal("expected error without JWT_SECRET")
	}
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("ALLOWED_ORIGINS", "https://findify.app, https://www.findify.app")
	t.Setenv("RETENTION_DAYS", "30")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if !cfg.IsProduction() {
		t.Fatal("expected production environment")
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://www.findify.app" {
		t.Fatalf("origins mismatch: %v", cfg.AllowedOrigins)
	}
	if cfg.RetentionDays != 30 {
		t.Fatalf("retention mismatch: %d", cfg.RetentionDays)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	setRequired(t)

	t.Setenv("PORT", "not-a-port")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid PORT")
	}
	t.Setenv("PORT", "8080")

	t.Setenv("RETENTION_DAYS", "-1")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for negative RETENTION_DAYS")
	}
}
