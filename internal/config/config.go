// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// DefaultContextRadius is the highlight context radius used when none is configured.
const DefaultContextRadius = 18

// DefaultLogLevel is used when neither the config file nor the environment sets one.
const DefaultLogLevel = "info"

// Environment variables that override config file values.
const (
	EnvOutputDir     = "COOK_OUTPUT_DIR"
	EnvLogLevel      = "COOK_LOG_LEVEL"
	EnvContextRadius = "COOK_CONTEXT_RADIUS"
	EnvSource        = "COOK_SOURCE"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	OutputDir     string `json:"output_dir,omitempty"`                                                     // Directory for .cook files (default: working directory)
	Source        string `json:"source,omitempty"`                                                         // Default source attribution
	ContextRadius int    `json:"context_radius,omitempty" validate:"gte=0,lte=500"`                        // Runes of context around a highlighted match (0 = default)
	LogLevel      string `json:"log_level,omitempty" validate:"omitempty,oneof=trace debug info warn warning error disabled off"` // zerolog level name
	Verbose       bool   `json:"verbose,omitempty"`                                                        // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// ApplyEnv overrides fields from COOK_* environment variables when they are set.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv(EnvOutputDir); v != "" {
		c.OutputDir = v
	}
	if v := os.Getenv(EnvSource); v != "" {
		c.Source = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = strings.ToLower(v)
	}
	if v := os.Getenv(EnvContextRadius); v != "" {
		radius, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config error: %s must be an integer: %w", EnvContextRadius, err)
		}
		c.ContextRadius = radius
	}
	return nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("config error: '%s' failed '%s' check (value: %v)", jsonName(fe.Field()), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("config error: %w", err)
	}

	if c.OutputDir != "" {
		info, err := os.Stat(c.OutputDir)
		if os.IsNotExist(err) {
			return fmt.Errorf("config error: output directory not found: %s", c.OutputDir)
		}
		if err == nil && !info.IsDir() {
			return fmt.Errorf("config error: output path is not a directory: %s", c.OutputDir)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.Source == "" {
		result.Source = defaults.Source
	}
	if result.LogLevel == "" {
		if defaults.LogLevel != "" {
			result.LogLevel = defaults.LogLevel
		} else {
			result.LogLevel = DefaultLogLevel
		}
	}
	if result.ContextRadius == 0 {
		if defaults.ContextRadius > 0 {
			result.ContextRadius = defaults.ContextRadius
		} else {
			result.ContextRadius = DefaultContextRadius
		}
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

func jsonName(field string) string {
	switch field {
	case "ContextRadius":
		return "context_radius"
	case "LogLevel":
		return "log_level"
	default:
		return field
	}
}
