// Package config loads AgentChain configuration from a TOML file layered
// over sensible defaults. Absent file or absent keys fall back silently;
// only a present-but-unparsable file is an error.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the top-level configuration.
type Config struct {
	DefaultProvider string                     `toml:"default_provider"`
	LogLevel        string                     `toml:"log_level"`
	Providers       map[string]*ProviderConfig `toml:"provider"`
	Storage         StorageConfig              `toml:"storage"`
	Presets         PresetsConfig              `toml:"presets"`
}

// ProviderConfig configures one backing model service.
type ProviderConfig struct {
	APIKey  string `toml:"api_key"`
	Model   string `toml:"model"`
	BaseURL string `toml:"base_url"`
}

// StorageConfig selects the snapshot store backend.
type StorageConfig struct {
	// Backend is "filesystem", "sqlite" or "memory".
	Backend string `toml:"backend"`
	Path    string `toml:"path"`
}

// PresetsConfig points at an optional remote preset manifest.
type PresetsConfig struct {
	ManifestURL string `toml:"manifest_url"`
}

// Load reads configuration from the default location
// (user config dir / agentchain / config.toml).
func Load() (*Config, error) {
	return LoadFile(configPath())
}

// LoadFile reads configuration from path over the defaults. A missing file
// yields the defaults without error.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("config: decode %s: %w", path, err)
		}
	}

	return cfg, nil
}

// Default returns the baseline configuration.
func Default() *Config {
	return &Config{
		DefaultProvider: "openai",
		LogLevel:        "info",
		Providers:       map[string]*ProviderConfig{},
		Storage: StorageConfig{
			Backend: "filesystem",
			Path:    defaultStoragePath(),
		},
	}
}

func configPath() string {
	dir, _ := os.UserConfigDir()
	return filepath.Join(dir, "agentchain", "config.toml")
}

func defaultStoragePath() string {
	dir, _ := os.UserConfigDir()
	return filepath.Join(dir, "agentchain", "registry.json")
}
