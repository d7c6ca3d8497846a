package config

import "testing"

func TestLoadServerDefaults(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "postgres://localhost:5432/dice?sslmode=disable")

	cfg, err := LoadServer()
	if err != nil {
		t.Fatalf("LoadServer() error = %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("HTTPAddr = %q, want :8080", cfg.HTTPAddr)
	}
	if cfg.InitialBalance != 5000 {
		t.Fatalf("InitialBalance = %d, want 5000", cfg.InitialBalance)
	}
}

func TestLoadServerRequiresPostgresDSN(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "")

	_, err := LoadServer()
	if err == nil {
		t.Fatal("LoadServer() expected error, got nil")
	}
}

func TestLoadServerParseTypes(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "postgres://localhost:5432/dice?sslmode=disable")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("INITIAL_BALANCE", "10000")
	t.Setenv("SEED_USER_EMAIL", "demo@example.com")

	cfg, err := LoadServer()
	if err != nil {
		t.Fatalf("LoadServer() error = %v", err)
	}
	if cfg.HTTPAddr != ":9090" {
		t.Fatalf("HTTPAddr = %q, want :9090", cfg.HTTPAddr)
	}
	if cfg.InitialBalance != 10000 {
		t.Fatalf("InitialBalance = %d, want 10000", cfg.InitialBalance)
	}
	if cfg.SeedUserEmail != "demo@example.com" {
		t.Fatalf("SeedUserEmail = %q", cfg.SeedUserEmail)
	}
}

func TestLoadAuth(t *testing.T) {
	t.Setenv("JWT_SECRET", "super-secret")

	cfg, err := LoadAuth()
	if err != nil {
		t.Fatalf("LoadAuth() error = %v", err)
	}
	if cfg.TokenTTLHours != 24 {
		t.Fatalf("TokenTTLHours = %d, want 24", cfg.TokenTTLHours)
	}
}

func TestLoadAuthRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if _, err := LoadAuth(); err == nil {
		t.Fatal("LoadAuth() expected error, got nil")
	}
}
