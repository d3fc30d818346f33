package stats

import (
	"path/filepath"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	m := newManagerAt(filepath.Join(t.TempDir(), "stats.json"))
	if err := m.Load(); err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if m.TrimmedLifetime() != 0 {
		t.Errorf("expected zero lifetime, got %d", m.TrimmedLifetime())
	}
}

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.json")

	m := newManagerAt(path)
	m.AddTrimmed(1234)
	m.AddTrimmed(766)
	if err := m.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	m2 := newManagerAt(path)
	if err := m2.Load(); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if m2.TrimmedLifetime() != 2000 {
		t.Errorf("expected 2000, got %d", m2.TrimmedLifetime())
	}
}
