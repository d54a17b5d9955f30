// Package config loads the JSON run configuration for the phicp
// command-line tools. Fields are pointer-typed so that a partial config
// file only overrides what it names; flag values fill the rest.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// MaxConfigSize bounds a config file read; run configs are tiny and a
// larger file indicates the wrong path was given.
const MaxConfigSize = 1 << 20

// RunConfig is the optional file-based configuration of a pipeline run.
type RunConfig struct {
	// Leg configurations ("DP", "PV", "IP" and "e", "mu", "pi", "rho", "a1").
	Method1 *string `json:"method_leg1,omitempty"`
	Mode1   *string `json:"mode_leg1,omitempty"`
	Method2 *string `json:"method_leg2,omitempty"`
	Mode2   *string `json:"mode_leg2,omitempty"`

	// Input and outputs.
	InputPath *string `json:"input_path,omitempty"`
	DBPath    *string `json:"db_path,omitempty"`
	PDFPath   *string `json:"pdf_path,omitempty"`
	HTMLPath  *string `json:"html_path,omitempty"`

	// Histogram binning.
	Bins *int `json:"bins,omitempty"`
}

// Load reads a RunConfig from a JSON file.
func Load(path string) (*RunConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}
	info, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("stat config: %w", err)
	}
	if info.Size() > MaxConfigSize {
		return nil, fmt.Errorf("config file %s exceeds %d bytes", cleanPath, MaxConfigSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg RunConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", cleanPath, err)
	}
	return &cfg, nil
}

// StringOr returns *v, or fallback when v is nil.
func StringOr(v *string, fallback string) string {
	if v != nil {
		return *v
	}
	return fallback
}

// IntOr returns *v, or fallback when v is nil.
func IntOr(v *int, fallback int) int {
	if v != nil {
		return *v
	}
	return fallback
}
