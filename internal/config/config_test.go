package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
addr: ":9000"
databaseUrl: "postgres://localhost/mosaic"
jwtSecret: "file-secret"
siteTitle: "Test Site"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":9000" {
		t.Errorf("addr = %q", cfg.Addr)
	}
	if cfg.SiteTitle != "Test Site" {
		t.Errorf("siteTitle = %q", cfg.SiteTitle)
	}
	if cfg.UploadDir != "uploads" {
		t.Errorf("uploadDir default = %q", cfg.UploadDir)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/envdb")
	t.Setenv("JWT_SECRET", "env-secret")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DatabaseURL != "postgres://localhost/envdb" {
		t.Errorf("databaseUrl = %q", cfg.DatabaseURL)
	}
	if cfg.JWTSecret != "env-secret" {
		t.Errorf("jwtSecret = %q", cfg.JWTSecret)
	}
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	path := writeConfig(t, `jwtSecret: "s"`)

	if _, err := Load(path); err == nil {
		t.Fatal("Load succeeded without a database URL")
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("Load succeeded with a missing explicit config file")
	}
}
