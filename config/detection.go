package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DetectionConfig holds the collision detection settings of the editor.
// Fields left out of the JSON file keep their defaults.
type DetectionConfig struct {
	Enabled   *bool   `json:"enabled,omitempty"`
	Precision *string `json:"precision,omitempty"` // "conservative" or "exact"
}

const (
	defaultEnabled   = true
	defaultPrecision = "conservative"
)

// Helper functions to create pointers
func ptrBool(v bool) *bool       { return &v }
func ptrString(v string) *string { return &v }

// Defaults returns a DetectionConfig with every field set to its default
func Defaults() *DetectionConfig {
	return &DetectionConfig{
		Enabled:   ptrBool(defaultEnabled),
		Precision: ptrString(defaultPrecision),
	}
}

// LoadDetectionConfig loads a DetectionConfig from a JSON file.
// The file must have a .json extension, be under 1MB, and only contain known fields.
func LoadDetectionConfig(path string) (*DetectionConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &DetectionConfig{}
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values that are set
func (c *DetectionConfig) Validate() error {
	if c.Precision != nil {
		switch *c.Precision {
		case "conservative", "exact":
		default:
			return fmt.Errorf("precision must be \"conservative\" or \"exact\", got %q", *c.Precision)
		}
	}
	return nil
}

// GetEnabled returns the enabled flag, or its default
func (c *DetectionConfig) GetEnabled() bool {
	if c == nil || c.Enabled == nil {
		return defaultEnabled
	}
	return *c.Enabled
}

// GetPrecision returns the precision name, or its default
func (c *DetectionConfig) GetPrecision() string {
	if c == nil || c.Precision == nil {
		return defaultPrecision
	}
	return *c.Precision
}
