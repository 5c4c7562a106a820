package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds runtime settings for the MessMate CLI.
//
// Fields:
//   - APIBaseURL: base URL of the MessMate REST API.
//   - RequestTimeout: per-request HTTP timeout.
//   - DataDir: directory for the local database and key material.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	DataDir        string
}

// LoadDefaults populates c with sensible defaults. The data directory
// defaults to ~/.messmate, falling back to ./.messmate when the home
// directory cannot be resolved.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:3000"
	c.RequestTimeout = 10 * time.Second

	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	c.DataDir = filepath.Join(home, ".messmate")
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
