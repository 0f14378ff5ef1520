package common

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	if cfg.Server.Name != "GSC-MCP" {
		t.Errorf("Expected server name GSC-MCP, got %s", cfg.Server.Name)
	}
	if cfg.Server.Port != "4244" {
		t.Errorf("Expected port 4244, got %s", cfg.Server.Port)
	}
	if cfg.API.BaseURL != "https://searchconsole.googleapis.com" {
		t.Errorf("Unexpected base URL: %s", cfg.API.BaseURL)
	}
	if cfg.API.GetTimeout() != 30*time.Second {
		t.Errorf("Expected 30s timeout, got %v", cfg.API.GetTimeout())
	}
	if cfg.API.RateLimit != 5 {
		t.Errorf("Expected rate limit 5, got %d", cfg.API.RateLimit)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Missing files should be skipped: %v", err)
	}
	if cfg.Server.Port != "4244" {
		t.Errorf("Expected defaults, got port %s", cfg.Server.Port)
	}
}

func TestLoadConfig_TOMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gsc-mcp.toml")
	content := `
[server]
name = "my-gsc"
port = "9090"

[api]
base_url = "https://example.googleapis.com"
timeout = "10s"
rate_limit = 2

[oauth]
client_id = "cid"
token_file = "/tmp/tok.json"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Server.Name != "my-gsc" || cfg.Server.Port != "9090" {
		t.Errorf("Server section not applied: %+v", cfg.Server)
	}
	if cfg.API.BaseURL != "https://example.googleapis.com" {
		t.Errorf("API base URL not applied: %s", cfg.API.BaseURL)
	}
	if cfg.API.GetTimeout() != 10*time.Second {
		t.Errorf("Expected 10s timeout, got %v", cfg.API.GetTimeout())
	}
	if cfg.OAuth.ClientID != "cid" || cfg.OAuth.TokenFile != "/tmp/tok.json" {
		t.Errorf("OAuth section not applied: %+v", cfg.OAuth)
	}
}

func TestLoadConfig_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("not [valid toml"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("Expected error for invalid TOML")
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("GSC_MCP_PORT", "8181")
	t.Setenv("GSC_API_BASE_URL", "http://localhost:9999")
	t.Setenv("GSC_ACCESS_TOKEN", "env-token")
	t.Setenv("GSC_LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Server.Port != "8181" {
		t.Errorf("Expected env port override, got %s", cfg.Server.Port)
	}
	if cfg.API.BaseURL != "http://localhost:9999" {
		t.Errorf("Expected env base URL override, got %s", cfg.API.BaseURL)
	}
	if cfg.OAuth.AccessToken != "env-token" {
		t.Errorf("Expected env access token, got %s", cfg.OAuth.AccessToken)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Expected env log level, got %s", cfg.Logging.Level)
	}
}

func TestGetTimeout_Invalid(t *testing.T) {
	cfg := APIConfig{Timeout: "bogus"}
	if cfg.GetTimeout() != 30*time.Second {
		t.Errorf("Expected 30s fallback, got %v", cfg.GetTimeout())
	}
}
