package config

import (
	"os"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	os.Setenv("CONTENT_BACKEND", "file")
	os.Setenv("ADMIN_JWT_SECRET", "testsecret123456789012345678901234")
	defer os.Unsetenv("CONTENT_BACKEND")
	defer os.Unsetenv("ADMIN_JWT_SECRET")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Content.Backend != "file" {
		t.Fatalf("unexpected content backend: %+v", cfg.Content)
	}
	if cfg.Content.Pathname == "" || cfg.Server.Port == "" {
		t.Fatalf("unexpected empty config values: %+v", cfg)
	}
	if cfg.Admin.JWTSecret == "" {
		t.Fatalf("admin secret not picked up from env")
	}
}
