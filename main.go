// nexus - the NEXUS space station portfolio, in your terminal.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/rs/zerolog"

	"github.com/jeranaias/nexus-tui/internal/cli"
	"github.com/jeranaias/nexus-tui/internal/config"
	"github.com/jeranaias/nexus-tui/internal/content"
	"github.com/jeranaias/nexus-tui/internal/logging"
	"github.com/jeranaias/nexus-tui/internal/ui/app"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args, err := cli.Parse()
	if err == nil {
		err = run(cmd, args)
	}
	if err != nil {
		cli.DisplayError(os.Stderr, cmd.String(), err, args.JSON)
		os.Exit(cli.GetExitCode(err))
	}
}

func run(cmd cli.Command, args cli.Args) error {
	switch cmd {
	case cli.CmdHelp:
		cli.HandleHelp(os.Stdout)
		return nil
	case cli.CmdVersion:
		return cli.HandleVersion(os.Stdout, args)
	case cli.CmdConfig:
		return cli.HandleConfig(os.Stdout, args)
	case cli.CmdChat:
		return runChat(args)
	default:
		return runTUI(args)
	}
}

// station is what both front ends need before they start.
type station struct {
	cfg     *config.Config
	content *content.Content
	logger  *zerolog.Logger
	closer  io.Closer
}

func setup(args cli.Args) (*station, error) {
	cfg, err := cli.LoadConfig(args)
	if err != nil {
		return nil, err
	}

	logger, closer, err := logging.Setup(logging.Options{
		File:  cfg.Log.File,
		Level: cfg.Log.Level,
	})
	if err != nil {
		return nil, err
	}
	logger.Info().
		Str("version", Version).
		Str("hold_mode", cfg.Warp.HoldMode).
		Str("content", cfg.Content.Path).
		Msg("station starting")

	c := content.Default()
	if cfg.Content.Path != "" {
		loaded, err := content.Load(cfg.Content.Path)
		if err != nil {
			// The built-in portfolio still works; say why the override was skipped.
			fmt.Fprintf(os.Stderr, "Warning: %v (using built-in content)\n", err)
			logger.Warn().Err(err).Str("path", cfg.Content.Path).Msg("content override rejected")
		} else {
			c = loaded
		}
	}

	return &station{cfg: cfg, content: c, logger: logger, closer: closer}, nil
}

// runTUI starts the full-screen station.
func runTUI(args cli.Args) error {
	st, err := setup(args)
	if err != nil {
		return err
	}
	defer st.closer.Close()

	var watcher *content.Watcher
	if st.cfg.Content.Path != "" && st.cfg.Content.Watch {
		watcher, err = content.NewWatcher(st.cfg.Content.Path, content.DefaultDebounce, st.logger)
		if err != nil {
			st.logger.Warn().Err(err).Msg("content watch disabled")
			watcher = nil
		} else {
			watcher.Watch()
			defer watcher.Close()
		}
	}

	zones := zone.New()
	defer zones.Close()

	m := app.New(app.Options{
		Config:  st.cfg,
		Content: st.content,
		Watcher: watcher,
		Zones:   zones,
		Logger:  st.logger,
	})
	defer m.Close()

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Enable mouse support
		tea.WithReportFocus(),     // Window blur releases the warp key
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running nexus: %w", err)
	}
	return nil
}

// runChat starts the line-mode assistant.
func runChat(args cli.Args) error {
	st, err := setup(args)
	if err != nil {
		return err
	}
	defer st.closer.Close()

	return cli.HandleChat(st.cfg, st.content, st.logger)
}
