// Package config provides reading and writing of stash-mcp configuration.
// Values come from ~/.stash-mcp/config.yaml with environment variables
// taking precedence (STASH_API_TOKEN, STASH_API_URL).
//
// The token is validated once at startup and immutable afterwards; a
// missing token is a fatal startup condition, never a per-call error.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/stash-reader/stash-mcp/internal/api"
)

// Environment variables recognised by Load.
const (
	EnvToken  = "STASH_API_TOKEN"
	EnvAPIURL = "STASH_API_URL"
)

// TokenURL is where users create API tokens.
const TokenURL = "https://stashreader.com/settings/api"

// Config contains the runtime configuration for stash-mcp.
type Config struct {
	APIURL string `yaml:"api_url,omitempty"`
	Token  string `yaml:"token,omitempty"`

	// path is the file this config was loaded from (for Save)
	path string
}

// pathFunc returns the config file path. Tests override it to point at
// a temp directory.
var pathFunc = defaultPath

func defaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".stash-mcp", "config.yaml")
	}
	return filepath.Join(home, ".stash-mcp", "config.yaml")
}

// Path returns the config file location.
func Path() string { return pathFunc() }

// Load reads the config file (a missing file is not an error) and then
// applies environment overrides. It does not validate; call Validate
// once at startup.
func Load() (*Config, error) {
	cfg := &Config{path: pathFunc()}

	data, err := os.ReadFile(cfg.path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// no file yet; env may still provide everything
	case err != nil:
		return nil, fmt.Errorf("reading config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", cfg.path, err)
		}
	}

	if v := os.Getenv(EnvToken); v != "" {
		cfg.Token = v
	}
	if v := os.Getenv(EnvAPIURL); v != "" {
		cfg.APIURL = v
	}
	if cfg.APIURL == "" {
		cfg.APIURL = api.DefaultBaseURL
	}
	return cfg, nil
}

// Validate checks the startup invariants. The returned error names the
// missing value and where to obtain one, because it becomes the
// process's exit diagnostic.
func (c *Config) Validate() error {
	if c.Token == "" {
		return fmt.Errorf(
			"API token not configured (checked %s and %s)\n\nRun: stash-mcp auth\n\nCreate a token at %s",
			EnvToken, c.path, TokenURL)
	}
	return nil
}

// Save writes the config file with owner-only permissions, creating the
// directory if needed.
func (c *Config) Save() error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(c.path, data, 0o600)
}
