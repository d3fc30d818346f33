// Package config loads the optional TOML configuration file.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds user-tunable settings
type Config struct {
	Scan      ScanConfig      `toml:"scan"`
	WorldBank WorldBankConfig `toml:"worldbank"`
}

// ScanConfig controls the filesystem walker
type ScanConfig struct {
	Workers int `toml:"workers"`
}

// WorldBankConfig controls the population loader
type WorldBankConfig struct {
	BaseURL string `toml:"base_url"`
	Year    int    `toml:"year"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Scan: ScanConfig{Workers: 8},
		// WorldBank zero values select the client's own defaults
	}
}

// Path returns the expected config file location
func Path() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "weightmap.toml"
	}
	return filepath.Join(dir, "weightmap", "config.toml")
}

// Load reads the config file, falling back to defaults when it does not
// exist. A present but unreadable file is an error.
func Load() (Config, error) {
	return LoadFrom(Path())
}

// LoadFrom reads the config from an explicit path
func LoadFrom(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, err
	}
	if cfg.Scan.Workers < 1 {
		cfg.Scan.Workers = Default().Scan.Workers
	}
	return cfg, nil
}
