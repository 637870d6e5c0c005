package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default() is invalid: %v", err)
	}
	if cfg.Model.Enabled {
		t.Error("model should default off")
	}
	if cfg.Detector.MaxRegions != 3 {
		t.Errorf("MaxRegions = %d, want 3", cfg.Detector.MaxRegions)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"model": {"enabled": true, "url": "http://ollama:11434", "model": "llava:13b", "timeout_seconds": 60}}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if !cfg.Model.Enabled {
		t.Error("model should be enabled")
	}
	if cfg.Model.Model != "llava:13b" {
		t.Errorf("Model = %q, want llava:13b", cfg.Model.Model)
	}
	if cfg.Model.Timeout() != 60*time.Second {
		t.Errorf("Timeout = %v, want 60s", cfg.Model.Timeout())
	}
	// Fields absent from the file keep their defaults.
	if cfg.Detector.MaxRegions != 3 {
		t.Errorf("MaxRegions = %d, want default 3", cfg.Detector.MaxRegions)
	}
}

func TestLoadFromFile_Missing(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadFromFile_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"detector": {"max_regions": 0}}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFromFile(path); err == nil {
		t.Error("expected validation error")
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Model.Enabled = true
	cfg.Model.URL = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for enabled model with empty URL")
	}
}
