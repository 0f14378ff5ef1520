// Package common provides shared configuration, logging, and version
// utilities for gsc-mcp.
package common

import (
	"fmt"
	"os"
	"strconv"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for the gsc-mcp server.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	API     APIConfig     `toml:"api"`
	OAuth   OAuthConfig   `toml:"oauth"`
	Logging LoggingConfig `toml:"logging"`
}

// ServerConfig holds MCP server settings.
type ServerConfig struct {
	Name string `toml:"name"`
	Port string `toml:"port"`
}

// APIConfig holds upstream Search Console API settings.
type APIConfig struct {
	BaseURL   string `toml:"base_url"`
	Timeout   string `toml:"timeout"`
	RateLimit int    `toml:"rate_limit"` // requests per second, 0 disables
}

// GetTimeout parses and returns the request timeout duration.
func (c *APIConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// OAuthConfig holds the OAuth credentials supplied by the host.
// AccessToken takes precedence; otherwise the refresh token and client
// credentials drive a refreshing token source persisted at TokenFile.
type OAuthConfig struct {
	ClientID     string `toml:"client_id"`
	ClientSecret string `toml:"client_secret"`
	TokenFile    string `toml:"token_file"`
	AccessToken  string `toml:"access_token"`
	RefreshToken string `toml:"refresh_token"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level      string   `toml:"level"`
	Format     string   `toml:"format"`
	Outputs    []string `toml:"outputs"`
	FilePath   string   `toml:"file_path"`
	MaxSizeMB  int      `toml:"max_size_mb"`
	MaxBackups int      `toml:"max_backups"`
}

// NewDefaultConfig returns a Config with sensible defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Name: "GSC-MCP",
			Port: "4244",
		},
		API: APIConfig{
			BaseURL:   "https://searchconsole.googleapis.com",
			Timeout:   "30s",
			RateLimit: 5,
		},
		OAuth: OAuthConfig{
			TokenFile: "data/gsc-token.json",
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "json",
			Outputs:    []string{"console", "file"},
			FilePath:   "logs/gsc-mcp.log",
			MaxSizeMB:  100,
			MaxBackups: 3,
		},
	}
}

// LoadConfig loads configuration from files with environment overrides.
// Missing files are skipped; later files override earlier ones.
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for _, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies GSC_* environment variable overrides.
func applyEnvOverrides(config *Config) {
	if port := os.Getenv("GSC_MCP_PORT"); port != "" {
		config.Server.Port = port
	}
	if base := os.Getenv("GSC_API_BASE_URL"); base != "" {
		config.API.BaseURL = base
	}
	if rl := os.Getenv("GSC_API_RATE_LIMIT"); rl != "" {
		if n, err := strconv.Atoi(rl); err == nil {
			config.API.RateLimit = n
		}
	}
	if id := os.Getenv("GSC_CLIENT_ID"); id != "" {
		config.OAuth.ClientID = id
	}
	if secret := os.Getenv("GSC_CLIENT_SECRET"); secret != "" {
		config.OAuth.ClientSecret = secret
	}
	if tok := os.Getenv("GSC_ACCESS_TOKEN"); tok != "" {
		config.OAuth.AccessToken = tok
	}
	if rt := os.Getenv("GSC_REFRESH_TOKEN"); rt != "" {
		config.OAuth.RefreshToken = rt
	}
	if tf := os.Getenv("GSC_TOKEN_FILE"); tf != "" {
		config.OAuth.TokenFile = tf
	}
	if level := os.Getenv("GSC_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
}
