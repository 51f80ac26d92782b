// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config.go - Config command implementation for nexus.
//
// Command: config [subcommand]
// Short:   View and modify configuration
//
// Subcommands:
//   show (default)      Display effective configuration
//   path                Show configuration file path
//   init [--force]      Write a default configuration file
//   get <key>           Print one value
//   set <key> <value>   Set a value in the configuration file
//
// Examples:
//   nexus config
//   nexus config show --json
//   nexus config init
//   nexus config get warp.hold_mode
//   nexus config set warp.hold_mode repeat
//   nexus config set ui.stars 250
//   nexus --config ./station.toml config set ui.theme light
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jeranaias/nexus-tui/internal/config"
)

// HandleConfig handles the "config" command.
func HandleConfig(w io.Writer, args Args) error {
	sub := strings.ToLower(args.Subcommand)
	switch sub {
	case "", "show":
		return handleConfigShow(w, args)
	case "path":
		return handleConfigPath(w, args)
	case "init":
		return handleConfigInit(w, args)
	case "get":
		return handleConfigGet(w, args)
	case "set":
		return handleConfigSet(w, args)
	case "keys":
		for _, k := range config.GetAllKeys() {
			fmt.Fprintln(w, k)
		}
		return nil
	default:
		return &UsageError{Message: fmt.Sprintf("unknown config subcommand: %s (show, path, init, get, set)", args.Subcommand)}
	}
}

// configFilePath is the file config init/set write to.
func configFilePath(args Args) (string, error) {
	if args.ConfigPath != "" {
		return args.ConfigPath, nil
	}
	return config.ConfigPathTOML()
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func handleConfigShow(w io.Writer, args Args) error {
	path, err := configFilePath(args)
	if err != nil {
		return NewCommandError("config", "show", err)
	}
	cfg, err := LoadConfig(args)
	if err != nil {
		return NewCommandError("config", "show", err)
	}

	if args.JSON {
		return NewJSONResponse("config show", ConfigData{
			Path:   path,
			Exists: fileExists(path),
			Config: cfg,
		}).Print(w)
	}

	fmt.Fprintln(w, TitleStyle.Render("NEXUS Configuration"))
	fmt.Fprintln(w, RenderSeparator(40))
	source := path
	if !fileExists(path) {
		source = path + " (not found, defaults)"
	}
	fmt.Fprintf(w, "%s%s\n\n", RenderLabel("File:"), ValueStyle.Render(source))
	fmt.Fprint(w, cfg.String())
	return nil
}

func handleConfigPath(w io.Writer, args Args) error {
	path, err := configFilePath(args)
	if err != nil {
		return NewCommandError("config", "path", err)
	}
	if args.JSON {
		return NewJSONResponse("config path", ConfigData{Path: path, Exists: fileExists(path)}).Print(w)
	}
	fmt.Fprintln(w, path)
	return nil
}

func handleConfigInit(w io.Writer, args Args) error {
	path, err := configFilePath(args)
	if err != nil {
		return NewCommandError("config", "init", err)
	}
	if fileExists(path) && !args.Force {
		return NewCommandError("config", "init", fmt.Errorf("%s already exists (use --force to overwrite)", path))
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return NewCommandError("config", "init", err)
	}
	if err := saveConfig(config.Default(), path); err != nil {
		return NewCommandError("config", "init", err)
	}

	if args.JSON {
		return NewJSONResponse("config init", ConfigData{Path: path, Exists: true, Config: config.Default()}).Print(w)
	}
	fmt.Fprintf(w, "%s Wrote %s\n", SuccessStyle.Render("[OK]"), path)
	return nil
}

func handleConfigGet(w io.Writer, args Args) error {
	if args.ConfigKey == "" {
		return &UsageError{Message: "usage: nexus config get <key>"}
	}
	cfg, err := LoadConfig(args)
	if err != nil {
		return NewCommandError("config", "get", err)
	}
	v, err := cfg.Get(args.ConfigKey)
	if err != nil {
		return NewCommandError("config", "get", err)
	}

	if args.JSON {
		return NewJSONResponse("config get", ConfigValueData{Key: args.ConfigKey, Value: v}).Print(w)
	}
	fmt.Fprintf(w, "%v\n", v)
	return nil
}

// handleConfigSet edits the file itself: flag and environment overrides are
// not written back.
func handleConfigSet(w io.Writer, args Args) error {
	if args.ConfigKey == "" || args.ConfigVal == "" {
		return &UsageError{Message: "usage: nexus config set <key> <value>"}
	}
	path, err := configFilePath(args)
	if err != nil {
		return NewCommandError("config", "set", err)
	}

	cfg, err := readConfigFile(path)
	if err != nil {
		return NewCommandError("config", "set", err)
	}
	if err := cfg.Set(args.ConfigKey, args.ConfigVal); err != nil {
		return NewCommandError("config", "set", err)
	}
	if err := cfg.Validate(); err != nil {
		return NewCommandError("config", "set", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return NewCommandError("config", "set", err)
	}
	if err := saveConfig(cfg, path); err != nil {
		return NewCommandError("config", "set", err)
	}

	v, _ := cfg.Get(args.ConfigKey)
	if args.JSON {
		return NewJSONResponse("config set", ConfigValueData{Key: args.ConfigKey, Value: v}).Print(w)
	}
	fmt.Fprintf(w, "%s %s = %v\n", SuccessStyle.Render("[OK]"), args.ConfigKey, v)
	return nil
}

// readConfigFile decodes path over the defaults without environment
// overrides. A missing file yields the defaults.
func readConfigFile(path string) (*config.Config, error) {
	cfg := config.Default()
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}
	if strings.HasSuffix(path, ".json") {
		return cfg, config.LoadJSON(cfg, path)
	}
	return cfg, config.LoadTOML(cfg, path)
}

func saveConfig(cfg *config.Config, path string) error {
	if strings.HasSuffix(path, ".json") {
		return config.SaveJSON(cfg, path)
	}
	return config.SaveTOML(cfg, path)
}
