// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// isolateHome points the config directory at a temp dir and clears NEXUS_* vars.
func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	for _, key := range []string{"NEXUS_THEME", "NEXUS_HOLD_MODE", "NEXUS_SEED", "NEXUS_CONTENT", "NEXUS_DEBUG", "NEXUS_LOG_FILE"} {
		t.Setenv(key, "")
	}
	return home
}

func TestConfig_Default(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	if cfg.UI.Stars != 100 {
		t.Errorf("Expected 100 stars, got %d", cfg.UI.Stars)
	}
	if cfg.ReleaseTimeout() != 650*time.Millisecond {
		t.Errorf("Expected 650ms release timeout, got %v", cfg.ReleaseTimeout())
	}
	if !cfg.UI.ShowHints || !cfg.UI.Animate {
		t.Error("hints and animation should default on")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"invalid theme", func(c *Config) { c.UI.Theme = "neon" }, "ui.theme"},
		{"negative stars", func(c *Config) { c.UI.Stars = -1 }, "ui.stars"},
		{"too many stars", func(c *Config) { c.UI.Stars = MaxStars + 1 }, "ui.stars"},
		{"invalid hold mode", func(c *Config) { c.Warp.HoldMode = "press" }, "warp.hold_mode"},
		{"timeout too short", func(c *Config) { c.Warp.ReleaseTimeoutMs = 50 }, "warp.release_timeout_ms"},
		{"timeout too long", func(c *Config) { c.Warp.ReleaseTimeoutMs = 6000 }, "warp.release_timeout_ms"},
		{"missing content", func(c *Config) { c.Content.Path = "/does/not/exist.yaml" }, "content.path"},
		{"invalid level", func(c *Config) { c.Log.Level = "trace" }, "log.level"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected a validation error")
			}
			var verrs ValidateErrors
			if !errors.As(err, &verrs) {
				t.Fatalf("expected ValidateErrors, got %T", err)
			}
			if verrs[0].Field != tc.field {
				t.Errorf("expected field %q, got %q", tc.field, verrs[0].Field)
			}
		})
	}
}

func TestConfig_ValidateCollectsAll(t *testing.T) {
	cfg := Default()
	cfg.UI.Theme = "neon"
	cfg.Warp.HoldMode = "press"
	err := cfg.Validate()
	var verrs ValidateErrors
	if !errors.As(err, &verrs) || len(verrs) != 2 {
		t.Fatalf("expected 2 validation errors, got %v", err)
	}
	if !strings.Contains(err.Error(), "; ") {
		t.Errorf("errors should be joined: %s", err)
	}
}

func TestConfig_SaveAndLoadTOML(t *testing.T) {
	isolateHome(t)
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := Default()
	cfg.UI.Theme = "light"
	cfg.Warp.HoldMode = "repeat"
	cfg.Assistant.Seed = 42
	if err := SaveTOML(cfg, path); err != nil {
		t.Fatalf("SaveTOML failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "# nexus configuration file") {
		t.Error("saved file should start with the header comment")
	}

	loaded, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}
	if loaded.UI.Theme != "light" || loaded.Warp.HoldMode != "repeat" || loaded.Assistant.Seed != 42 {
		t.Errorf("round trip lost values: %+v", loaded)
	}
}

func TestConfig_LoadPartialKeepsDefaults(t *testing.T) {
	isolateHome(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[warp]\nhold_mode = \"repeat\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}
	if cfg.Warp.HoldMode != "repeat" {
		t.Errorf("hold mode not loaded: %q", cfg.Warp.HoldMode)
	}
	if !cfg.UI.ShowHints || cfg.UI.Stars != 100 || cfg.Warp.ReleaseTimeoutMs != 650 {
		t.Errorf("missing keys should keep defaults: %+v", cfg)
	}
}

func TestConfig_LoadZeroStars(t *testing.T) {
	isolateHome(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[ui]\nstars = 0\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}
	if cfg.UI.Stars != 0 {
		t.Errorf("stars = %d, want 0 (starfield off)", cfg.UI.Stars)
	}
}

func TestConfig_LoadJSON(t *testing.T) {
	isolateHome(t)
	path := filepath.Join(t.TempDir(), "config.json")
	cfg := Default()
	cfg.UI.Stars = 250
	if err := SaveJSON(cfg, path); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}
	if loaded.UI.Stars != 250 {
		t.Errorf("expected 250 stars, got %d", loaded.UI.Stars)
	}
}

func TestConfig_LoadInvalidFile(t *testing.T) {
	isolateHome(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[warp]\nhold_mode = \"sticky\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFromPath(path); err == nil {
		t.Error("expected invalid hold mode to be rejected")
	}
}

func TestConfig_LoadFallsBackToDefaults(t *testing.T) {
	home := isolateHome(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load without files should not fail: %v", err)
	}
	if cfg.UI.Theme != "auto" {
		t.Errorf("expected default theme, got %q", cfg.UI.Theme)
	}

	dir := filepath.Join(home, ".nexus")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("not = [valid"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err = Load()
	if err == nil {
		t.Error("expected the decode error to be reported")
	}
	if cfg == nil || cfg.Warp.HoldMode != "toggle" {
		t.Error("broken file should fall back to defaults")
	}
}

func TestConfig_ApplyEnvOverrides(t *testing.T) {
	isolateHome(t)
	t.Setenv("NEXUS_THEME", "dark")
	t.Setenv("NEXUS_HOLD_MODE", "repeat")
	t.Setenv("NEXUS_SEED", "7")
	t.Setenv("NEXUS_DEBUG", "1")
	t.Setenv("NEXUS_LOG_FILE", "/tmp/nexus-test.log")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	if cfg.UI.Theme != "dark" || cfg.Warp.HoldMode != "repeat" || cfg.Assistant.Seed != 7 {
		t.Errorf("env overrides not applied: %+v", cfg)
	}
	if cfg.Log.Level != "debug" || cfg.Log.File != "/tmp/nexus-test.log" {
		t.Errorf("log overrides not applied: %+v", cfg.Log)
	}

	t.Setenv("NEXUS_SEED", "abc")
	cfg = Default()
	cfg.ApplyEnvOverrides()
	if cfg.Assistant.Seed != 0 {
		t.Error("invalid seed should be ignored")
	}
}

func TestConfig_GetSet(t *testing.T) {
	cfg := Default()

	if err := cfg.Set("ui.stars", "42"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := cfg.Set("warp.hold-mode", "repeat"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := cfg.Set("ui.show_hints", "no"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := cfg.Set("assistant.seed", int64(9)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	for key, want := range map[string]interface{}{
		"ui.stars":       42,
		"warp.hold_mode": "repeat",
		"ui.show_hints":  false,
		"assistant.seed": int64(9),
	} {
		got, err := cfg.Get(key)
		if err != nil {
			t.Fatalf("Get(%s) failed: %v", key, err)
		}
		if got != want {
			t.Errorf("Get(%s) = %v, want %v", key, got, want)
		}
	}

	if err := cfg.Set("ui.stars", "many"); err == nil {
		t.Error("expected integer parse error")
	}
	if _, err := cfg.Get("ui.colour"); err == nil {
		t.Error("expected unknown field error")
	}
	if _, err := cfg.Get("version.major"); err == nil {
		t.Error("expected not-a-struct error")
	}
	if _, err := cfg.Get(""); err == nil {
		t.Error("expected empty key error")
	}
}

func TestConfig_AllKeysResolve(t *testing.T) {
	cfg := Default()
	for _, key := range GetAllKeys() {
		if _, err := cfg.Get(key); err != nil {
			t.Errorf("GetAllKeys lists %q but Get fails: %v", key, err)
		}
	}
}

func TestConfig_StringIsTOML(t *testing.T) {
	out := Default().String()
	if !strings.Contains(out, "[warp]") || !strings.Contains(out, "hold_mode = \"toggle\"") {
		t.Errorf("unexpected String() output:\n%s", out)
	}
}
