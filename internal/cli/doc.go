// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides command-line parsing and the non-TUI commands for
// nexus.
//
// # Key Types
//
//   - Command: the command to execute
//   - Args: parsed global and command-specific flags
//   - ArgParser: subcommand and flag parsing shared by commands
//   - ChatSession: the line-mode assistant REPL
//
// # Usage
//
//	cmd, args, err := cli.Parse()
//	switch cmd {
//	case cli.CmdChat:
//	    return cli.HandleChat(args)
//	case cli.CmdConfig:
//	    return cli.HandleConfig(os.Stdout, args)
//	}
//
// # Commands
//
//   - tui: full-screen station (default)
//   - chat: line-mode assistant
//   - config: show, path, init, get, set
//   - version, help
package cli
