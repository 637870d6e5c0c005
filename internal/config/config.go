// Package config holds the runtime configuration for the scanner.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config holds the application configuration.
type Config struct {
	Model    ModelConfig    `json:"model"`
	OCR      OCRConfig      `json:"ocr"`
	Detector DetectorConfig `json:"detector"`
}

// ModelConfig configures the optional Ollama vision model.
type ModelConfig struct {
	Enabled        bool   `json:"enabled"`
	URL            string `json:"url"`
	Model          string `json:"model"`
	TimeoutSeconds int    `json:"timeout_seconds"`
}

// OCRConfig configures the optional resin-code reader.
type OCRConfig struct {
	Enabled bool `json:"enabled"`
}

// DetectorConfig configures multi-object detection.
type DetectorConfig struct {
	MaxRegions int `json:"max_regions"`
}

// Default returns a configuration with default values. The model and OCR
// stages default off so a fresh install works with no external services.
func Default() *Config {
	return &Config{
		Model: ModelConfig{
			Enabled:        false,
			URL:            "http://127.0.0.1:11434",
			Model:          "llava:7b",
			TimeoutSeconds: 120,
		},
		OCR: OCRConfig{
			Enabled: false,
		},
		Detector: DetectorConfig{
			MaxRegions: 3,
		},
	}
}

// Timeout returns the model timeout as a duration.
func (m ModelConfig) Timeout() time.Duration {
	return time.Duration(m.TimeoutSeconds) * time.Second
}

// LoadFromFile loads configuration from a JSON file.
func LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Model.Enabled && c.Model.URL == "" {
		return fmt.Errorf("model.url cannot be empty when the model is enabled")
	}
	if c.Model.Enabled && c.Model.Model == "" {
		return fmt.Errorf("model.model cannot be empty when the model is enabled")
	}
	if c.Model.TimeoutSeconds < 0 {
		return fmt.Errorf("model.timeout_seconds must not be negative")
	}
	if c.Detector.MaxRegions < 1 || c.Detector.MaxRegions > 9 {
		return fmt.Errorf("detector.max_regions must be between 1 and 9")
	}
	return nil
}

// GetConfigPath returns the default configuration file path.
func GetConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./config.json"
	}
	return filepath.Join(home, ".config", "plastiscan", "config.json")
}
