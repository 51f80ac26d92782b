// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for nexus.
//
// Supports both TOML and JSON configuration formats, with sensible defaults,
// environment variable overrides, and validation.
//
// Configuration file locations (in order of precedence):
//   - ~/.nexus/config.toml
//   - ~/.nexus/config.json
//   - Built-in defaults
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/jeranaias/nexus-tui/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete nexus configuration.
type Config struct {
	// Version of the config format
	Version string `toml:"version" json:"version"`

	UI        UIConfig        `toml:"ui" json:"ui"`
	Warp      WarpConfig      `toml:"warp" json:"warp"`
	Assistant AssistantConfig `toml:"assistant" json:"assistant"`
	Content   ContentConfig   `toml:"content" json:"content"`
	Log       LogConfig       `toml:"log" json:"log"`
}

// UIConfig controls rendering.
type UIConfig struct {
	// Theme is "dark", "light" or "auto" (detect from the terminal)
	Theme string `toml:"theme" json:"theme"`

	// Stars is the number of background stars
	Stars int `toml:"stars" json:"stars"`

	// ShowHints shows the key hint bar
	ShowHints bool `toml:"show_hints" json:"show_hints"`

	// Animate enables twinkle and tilt animation ticks
	Animate bool `toml:"animate" json:"animate"`
}

// WarpConfig controls the warp navigation overlay.
type WarpConfig struct {
	// HoldMode is "toggle" or "repeat"
	HoldMode string `toml:"hold_mode" json:"hold_mode"`

	// ReleaseTimeoutMs is the repeat-mode silence that counts as a key release
	ReleaseTimeoutMs int `toml:"release_timeout_ms" json:"release_timeout_ms"`
}

// AssistantConfig controls the chat assistant.
type AssistantConfig struct {
	// Seed for reply selection; 0 means time based
	Seed int64 `toml:"seed" json:"seed"`

	// StartOpen opens the chat panel on launch
	StartOpen bool `toml:"start_open" json:"start_open"`
}

// ContentConfig points at an optional portfolio content override.
type ContentConfig struct {
	Path  string `toml:"path" json:"path"`
	Watch bool   `toml:"watch" json:"watch"`
}

// LogConfig controls the debug log.
type LogConfig struct {
	// File is the log path; empty disables logging unless --debug is set
	File string `toml:"file" json:"file"`

	// Level is debug, info, warn or error
	Level string `toml:"level" json:"level"`
}

// Limits for numeric settings.
const (
	MinReleaseTimeoutMs = 100
	MaxReleaseTimeoutMs = 5000
	MaxStars            = 1000
)

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Version: "1.0.0",
		UI: UIConfig{
			Theme:     "auto",
			Stars:     100,
			ShowHints: true,
			Animate:   true,
		},
		Warp: WarpConfig{
			HoldMode:         "toggle",
			ReleaseTimeoutMs: 650,
		},
		Assistant: AssistantConfig{
			Seed:      0,
			StartOpen: false,
		},
		Content: ContentConfig{
			Watch: true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// ReleaseTimeout returns the repeat-mode release timeout.
func (c *Config) ReleaseTimeout() time.Duration {
	return time.Duration(c.Warp.ReleaseTimeoutMs) * time.Millisecond
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the nexus configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".nexus"), nil
}

// ConfigPathTOML returns the path to the TOML config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathJSON returns the path to the JSON config file.
func ConfigPathJSON() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// DefaultLogPath returns the log file used by --debug.
func DefaultLogPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "nexus.log"), nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the config file(s).
// Tries TOML first, then JSON, and falls back to defaults.
// Environment overrides are applied last.
func Load() (*Config, error) {
	var loadErr error

	if tomlPath, err := ConfigPathTOML(); err == nil {
		if _, statErr := os.Stat(tomlPath); statErr == nil {
			cfg, err := LoadFromPath(tomlPath)
			if err == nil {
				return cfg, nil
			}
			loadErr = err
		}
	}

	if loadErr == nil {
		if jsonPath, err := ConfigPathJSON(); err == nil {
			if _, statErr := os.Stat(jsonPath); statErr == nil {
				cfg, err := LoadFromPath(jsonPath)
				if err == nil {
					return cfg, nil
				}
				loadErr = err
			}
		}
	}

	// Defaults (with any load error for informational purposes)
	cfg := Default()
	cfg.ApplyEnvOverrides()
	if err := fillDefaults(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, loadErr
}

// LoadTOML decodes a TOML file over cfg.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return fillDefaults(cfg)
}

// LoadJSON decodes a JSON file over cfg.
func LoadJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	return fillDefaults(cfg)
}

// LoadFromPath loads configuration from a specific file path with full
// validation. Keys missing from the file keep their defaults.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if strings.HasSuffix(path, ".json") {
		if err := LoadJSON(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load JSON config from %s: %w", path, err)
		}
	} else {
		// Default to TOML
		if err := LoadTOML(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load TOML config from %s: %w", path, err)
		}
	}

	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// fillDefaults fills in empty values that Validate would reject. Zero stars
// is a valid setting and is left alone.
func fillDefaults(cfg *Config) error {
	defaults := Default()

	if cfg.Version == "" {
		cfg.Version = defaults.Version
	}
	if cfg.UI.Theme == "" {
		cfg.UI.Theme = defaults.UI.Theme
	}
	if cfg.Warp.HoldMode == "" {
		cfg.Warp.HoldMode = defaults.Warp.HoldMode
	}
	if cfg.Warp.ReleaseTimeoutMs == 0 {
		cfg.Warp.ReleaseTimeoutMs = defaults.Warp.ReleaseTimeoutMs
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaults.Log.Level
	}
	return nil
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// SaveTOML writes the configuration to a TOML file.
func SaveTOML(cfg *Config, path string) error {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "# nexus configuration file")
	fmt.Fprintln(&buf, "# Generated by nexus config init - edit with care")
	fmt.Fprintln(&buf, "#")
	fmt.Fprintln(&buf, "# Environment overrides: NEXUS_THEME, NEXUS_HOLD_MODE, NEXUS_SEED,")
	fmt.Fprintln(&buf, "# NEXUS_CONTENT, NEXUS_DEBUG, NEXUS_LOG_FILE")
	fmt.Fprintln(&buf, "")

	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := util.AtomicWriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// SaveJSON writes the configuration to a JSON file.
func SaveJSON(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := util.AtomicWriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	validThemes := map[string]bool{"auto": true, "dark": true, "light": true}
	if !validThemes[strings.ToLower(c.UI.Theme)] {
		errs = append(errs, ValidationError{
			Field:   "ui.theme",
			Message: fmt.Sprintf("invalid theme '%s', must be one of: auto, dark, light", c.UI.Theme),
		})
	}

	if c.UI.Stars < 0 || c.UI.Stars > MaxStars {
		errs = append(errs, ValidationError{
			Field:   "ui.stars",
			Message: fmt.Sprintf("must be between 0 and %d, got %d", MaxStars, c.UI.Stars),
		})
	}

	validModes := map[string]bool{"toggle": true, "repeat": true}
	if !validModes[strings.ToLower(c.Warp.HoldMode)] {
		errs = append(errs, ValidationError{
			Field:   "warp.hold_mode",
			Message: fmt.Sprintf("invalid hold mode '%s', must be one of: toggle, repeat", c.Warp.HoldMode),
		})
	}

	if c.Warp.ReleaseTimeoutMs < MinReleaseTimeoutMs || c.Warp.ReleaseTimeoutMs > MaxReleaseTimeoutMs {
		errs = append(errs, ValidationError{
			Field: "warp.release_timeout_ms",
			Message: fmt.Sprintf("must be between %d and %d, got %d",
				MinReleaseTimeoutMs, MaxReleaseTimeoutMs, c.Warp.ReleaseTimeoutMs),
		})
	}

	if c.Content.Path != "" {
		if info, err := os.Stat(c.Content.Path); err != nil {
			errs = append(errs, ValidationError{
				Field:   "content.path",
				Message: fmt.Sprintf("cannot read '%s': %v", c.Content.Path, err),
			})
		} else if info.IsDir() {
			errs = append(errs, ValidationError{
				Field:   "content.path",
				Message: fmt.Sprintf("'%s' is a directory", c.Content.Path),
			})
		}
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Log.Level)] {
		errs = append(errs, ValidationError{
			Field:   "log.level",
			Message: fmt.Sprintf("invalid level '%s', must be one of: debug, info, warn, error", c.Log.Level),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides to the config.
//   - NEXUS_THEME: overrides ui.theme
//   - NEXUS_HOLD_MODE: overrides warp.hold_mode
//   - NEXUS_SEED: overrides assistant.seed
//   - NEXUS_CONTENT: overrides content.path
//   - NEXUS_DEBUG: sets log.level to debug
//   - NEXUS_LOG_FILE: overrides log.file
func (c *Config) ApplyEnvOverrides() {
	if theme := os.Getenv("NEXUS_THEME"); theme != "" {
		c.UI.Theme = theme
	}

	if mode := os.Getenv("NEXUS_HOLD_MODE"); mode != "" {
		c.Warp.HoldMode = mode
	}

	if seed := os.Getenv("NEXUS_SEED"); seed != "" {
		if n, err := strconv.ParseInt(seed, 10, 64); err == nil {
			c.Assistant.Seed = n
		}
	}

	if path := os.Getenv("NEXUS_CONTENT"); path != "" {
		c.Content.Path = path
	}

	if debug := os.Getenv("NEXUS_DEBUG"); debug == "1" || strings.ToLower(debug) == "true" {
		c.Log.Level = "debug"
	}

	if file := os.Getenv("NEXUS_LOG_FILE"); file != "" {
		c.Log.File = file
	}
}

// =============================================================================
// GET/SET HELPERS (DOT NOTATION)
// =============================================================================

// Get retrieves a configuration value using dot notation (e.g., "warp.hold_mode").
func (c *Config) Get(key string) (interface{}, error) {
	field, err := c.lookup(key)
	if err != nil {
		return nil, err
	}
	return field.Interface(), nil
}

// Set sets a configuration value using dot notation (e.g., "ui.stars").
// String values are converted to the field's type.
func (c *Config) Set(key string, value interface{}) error {
	field, err := c.lookup(key)
	if err != nil {
		return err
	}
	if !field.CanSet() {
		return fmt.Errorf("cannot set field: %s", key)
	}
	return setFieldValue(field, value)
}

func (c *Config) lookup(key string) (reflect.Value, error) {
	if key == "" {
		return reflect.Value{}, errors.New("empty key")
	}
	parts := strings.Split(key, ".")

	v := reflect.ValueOf(c).Elem()
	for i, part := range parts {
		fieldName := normalizeFieldName(part)
		field := v.FieldByNameFunc(func(name string) bool {
			return strings.EqualFold(name, fieldName)
		})
		if !field.IsValid() {
			return reflect.Value{}, fmt.Errorf("unknown field: %s", strings.Join(parts[:i+1], "."))
		}

		if i == len(parts)-1 {
			return field, nil
		}

		if field.Kind() != reflect.Struct {
			return reflect.Value{}, fmt.Errorf("field '%s' is not a struct", strings.Join(parts[:i+1], "."))
		}
		v = field
	}
	return reflect.Value{}, fmt.Errorf("invalid key: %s", key)
}

// normalizeFieldName converts a snake_case or kebab-case name to its Go field equivalent.
func normalizeFieldName(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-'
	})

	var result strings.Builder
	for _, part := range parts {
		if len(part) > 0 {
			result.WriteString(strings.ToUpper(string(part[0])))
			result.WriteString(strings.ToLower(part[1:]))
		}
	}
	return result.String()
}

// setFieldValue sets a reflect.Value from an interface{} value with type conversion.
func setFieldValue(field reflect.Value, value interface{}) error {
	if strVal, ok := value.(string); ok {
		switch field.Kind() {
		case reflect.String:
			field.SetString(strVal)
			return nil
		case reflect.Int, reflect.Int64:
			intVal, err := strconv.ParseInt(strVal, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid integer value: %v", err)
			}
			field.SetInt(intVal)
			return nil
		case reflect.Bool:
			lower := strings.ToLower(strVal)
			field.SetBool(lower == "1" || lower == "true" || lower == "yes")
			return nil
		}
	}

	val := reflect.ValueOf(value)
	if !val.IsValid() {
		return fmt.Errorf("cannot assign nil to %s", field.Type())
	}
	if val.Type().AssignableTo(field.Type()) {
		field.Set(val)
		return nil
	}
	if val.Type().ConvertibleTo(field.Type()) {
		field.Set(val.Convert(field.Type()))
		return nil
	}
	return fmt.Errorf("cannot assign %T to %s", value, field.Type())
}

// GetAllKeys returns all configuration keys in dot notation.
func GetAllKeys() []string {
	return []string{
		"version",
		"ui.theme",
		"ui.stars",
		"ui.show_hints",
		"ui.animate",
		"warp.hold_mode",
		"warp.release_timeout_ms",
		"assistant.seed",
		"assistant.start_open",
		"content.path",
		"content.watch",
		"log.file",
		"log.level",
	}
}

// String returns the configuration as TOML.
func (c *Config) String() string {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Sprintf("<config: %v>", err)
	}
	return buf.String()
}
