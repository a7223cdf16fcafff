package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigFromFile(t *testing.T) {
	path := writeConfig(t, `
server:
  port: "9090"
  mode: production
upstream:
  base_url: "http://backend:9000/api"
  timeout: 30s
logging:
  level: debug
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Port != "9090" || cfg.Server.Mode != "production" {
		t.Fatalf("server section: %+v", cfg.Server)
	}
	if cfg.Upstream.BaseURL != "http://backend:9000/api" {
		t.Fatalf("upstream base url: %q", cfg.Upstream.BaseURL)
	}
	if cfg.UpstreamTimeout() != 30*time.Second {
		t.Fatalf("timeout: %v", cfg.UpstreamTimeout())
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("logging level: %q", cfg.Logging.Level)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
upstream:
  base_url: "http://backend:9000/api"
`)
	t.Setenv("SERVER_PORT", "7001")
	t.Setenv("UPSTREAM_BASE_URL", "http://other:8000")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Port != "7001" {
		t.Fatalf("env port override lost: %q", cfg.Server.Port)
	}
	if cfg.Upstream.BaseURL != "http://other:8000" {
		t.Fatalf("env base url override lost: %q", cfg.Upstream.BaseURL)
	}
}

func TestMissingFileUsesEnvOnly(t *testing.T) {
	t.Setenv("UPSTREAM_BASE_URL", "http://backend:9000/api")
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Upstream.BaseURL != "http://backend:9000/api" {
		t.Fatalf("base url: %q", cfg.Upstream.BaseURL)
	}
	// Defaults survive
	if cfg.Server.Port != "8080" || cfg.UpstreamTimeout() != 15*time.Second {
		t.Fatalf("defaults lost: port=%q timeout=%v", cfg.Server.Port, cfg.UpstreamTimeout())
	}
}

func TestBaseURLRequired(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("config without upstream base_url accepted")
	}
}

func TestInvalidTimeoutRejected(t *testing.T) {
	path := writeConfig(t, `
upstream:
  base_url: "http://backend:9000/api"
  timeout: never
`)
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("invalid timeout accepted")
	}
}
