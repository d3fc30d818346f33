package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromMissingFile(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg.Scan.Workers != 8 {
		t.Errorf("expected default workers 8, got %d", cfg.Scan.Workers)
	}
	if cfg.WorldBank.BaseURL != "" || cfg.WorldBank.Year != 0 {
		t.Error("expected zero worldbank settings by default")
	}
}

func TestLoadFrom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
[scan]
workers = 4

[worldbank]
base_url = "http://localhost:9999"
year = 2020
`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.Scan.Workers != 4 {
		t.Errorf("expected workers 4, got %d", cfg.Scan.Workers)
	}
	if cfg.WorldBank.BaseURL != "http://localhost:9999" {
		t.Errorf("unexpected base url %q", cfg.WorldBank.BaseURL)
	}
	if cfg.WorldBank.Year != 2020 {
		t.Errorf("unexpected year %d", cfg.WorldBank.Year)
	}
}

func TestLoadFromBadWorkers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	os.WriteFile(path, []byte("[scan]\nworkers = 0\n"), 0644)

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.Scan.Workers != 8 {
		t.Errorf("expected workers clamped to default, got %d", cfg.Scan.Workers)
	}
}
