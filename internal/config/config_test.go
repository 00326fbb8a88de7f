package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileIsZeroConfig(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg != (Config{}) {
		t.Errorf("expected zero config, got %+v", cfg)
	}
}

func TestLoad_ValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "host: http://localhost:8100\ntimeout_ms: 2500\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Host != "http://localhost:8100" {
		t.Errorf("unexpected host: %q", cfg.Host)
	}
	if cfg.TimeoutMS != 2500 {
		t.Errorf("unexpected timeout: %d", cfg.TimeoutMS)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("host: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed config")
	}
}
