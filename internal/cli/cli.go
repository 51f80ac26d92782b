// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and command handlers for nexus.
package cli

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/jeranaias/nexus-tui/internal/config"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdChat
	CmdConfig
	CmdVersion
	CmdHelp
)

// String returns the command name.
func (c Command) String() string {
	switch c {
	case CmdTUI:
		return "tui"
	case CmdChat:
		return "chat"
	case CmdConfig:
		return "config"
	case CmdVersion:
		return "version"
	case CmdHelp:
		return "help"
	default:
		return "unknown"
	}
}

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	ConfigPath  string
	ContentPath string
	Seed        int64
	SeedSet     bool
	HoldMode    string
	Debug       bool
	Verbose     bool
	JSON        bool

	// Command-specific
	Subcommand string
	ConfigKey  string
	ConfigVal  string
	Force      bool

	// Raw args (remaining after the command name)
	Raw []string
}

const usageText = `nexus - NEXUS space station portfolio for the terminal

Usage:
  nexus                        Start the station (default)
  nexus tui                    Start the station
  nexus chat                   Talk to the station AI on the command line
  nexus config [subcommand]    Configuration
  nexus version [--json]       Show version information
  nexus help                   Show this help

Config Commands:
  nexus config show [--json]        Show effective configuration
  nexus config path                 Show configuration file path
  nexus config init [--force]       Write a default configuration file
  nexus config get <key>            Print one value
  nexus config set <key> <value>    Change one value in the configuration file
  nexus config keys                 List configuration keys

Chat Commands:
  /help          Show chat commands
  /mood          Cycle the assistant's mood
  /quick [N]     List quick replies or send quick reply N
  /clear         Start a new conversation
  /quit          Leave the chat

Station Keys:
  space          Engage warp (hold or press, see --hold)
  drag           Build warp intensity; release over a module to open it
  1 2 3          Toggle About, Projects, Skills
  tab            Focus chat input
  ctrl+a         Open or close the station AI
  ctrl+e         Cycle the AI's mood
  alt+1..3       Quick replies
  q, ctrl+c      Quit

Global Flags:
  --config PATH            Use a specific configuration file
  --content PATH           Load portfolio content from a YAML file
  --seed N                 Seed reply selection (repeatable conversations)
  --hold toggle|repeat     How the warp key is held
  --debug                  Debug logging (to the configured log file)
  -v, --verbose            Verbose output
  --json                   JSON output where supported

Environment:
  NEXUS_THEME, NEXUS_HOLD_MODE, NEXUS_SEED, NEXUS_CONTENT,
  NEXUS_DEBUG, NEXUS_LOG_FILE, NO_COLOR

Version: %s
`

// PrintUsage prints the usage/help text.
func PrintUsage(w io.Writer) {
	fmt.Fprintf(w, usageText, Version)
}

// PrintVersion prints version information.
func PrintVersion(w io.Writer) {
	fmt.Fprintf(w, "nexus version %s\n", Version)
	fmt.Fprintf(w, "  Git commit: %s\n", GitCommit)
	fmt.Fprintf(w, "  Build date: %s\n", BuildDate)
}

// Parse parses os.Args.
func Parse() (Command, Args, error) {
	return ParseArgs(os.Args[1:])
}

// ParseArgs parses command-line arguments and returns the command and args.
func ParseArgs(argv []string) (Command, Args, error) {
	remaining, parsedArgs, err := parseGlobalFlags(argv)
	if err != nil {
		return CmdHelp, parsedArgs, err
	}

	if len(remaining) == 0 {
		return CmdTUI, parsedArgs, nil
	}

	cmd := strings.ToLower(remaining[0])
	remaining = remaining[1:]
	parsedArgs.Raw = remaining

	switch cmd {
	case "tui", "station":
		return CmdTUI, parsedArgs, nil

	case "chat":
		return CmdChat, parsedArgs, nil

	case "config":
		parseConfigArgs(&parsedArgs, remaining)
		return CmdConfig, parsedArgs, nil

	case "version", "--version":
		return CmdVersion, parsedArgs, nil

	case "help", "-h", "--help":
		return CmdHelp, parsedArgs, nil

	default:
		return CmdHelp, parsedArgs, &UsageError{Message: fmt.Sprintf("unknown command: %s", cmd)}
	}
}

// parseGlobalFlags extracts global flags from args and returns remaining args.
func parseGlobalFlags(args []string) ([]string, Args, error) {
	var remaining []string
	var parsedArgs Args

	value := func(i *int, name string) (string, error) {
		if *i+1 >= len(args) {
			return "", &UsageError{Message: fmt.Sprintf("%s requires a value", name)}
		}
		*i++
		return args[*i], nil
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		name, inline, hasInline := strings.Cut(arg, "=")

		var err error
		switch name {
		case "--config", "--content", "--seed", "--hold":
			v := inline
			if !hasInline {
				if v, err = value(&i, name); err != nil {
					return nil, parsedArgs, err
				}
			}
			if err = setValueFlag(&parsedArgs, name, v); err != nil {
				return nil, parsedArgs, err
			}
		case "--debug":
			parsedArgs.Debug = true
		case "-v", "--verbose":
			parsedArgs.Verbose = true
		case "--json":
			parsedArgs.JSON = true
		default:
			remaining = append(remaining, arg)
		}
	}

	return remaining, parsedArgs, nil
}

func setValueFlag(a *Args, name, v string) error {
	switch name {
	case "--config":
		a.ConfigPath = v
	case "--content":
		a.ContentPath = v
	case "--hold":
		mode := strings.ToLower(v)
		if mode != "toggle" && mode != "repeat" {
			return &UsageError{Message: fmt.Sprintf("invalid --hold %q, must be toggle or repeat", v)}
		}
		a.HoldMode = mode
	case "--seed":
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return &UsageError{Message: fmt.Sprintf("invalid --seed %q: must be an integer", v)}
		}
		a.Seed = n
		a.SeedSet = true
	}
	return nil
}

// parseConfigArgs parses config command specific arguments.
func parseConfigArgs(args *Args, remaining []string) {
	p := NewArgParser(remaining, "force")
	args.Subcommand = p.Subcommand()
	args.ConfigKey = p.Positional(1)
	args.ConfigVal = strings.Join(p.PositionalFrom(2), " ")
	args.Force = p.BoolFlag("force")
}

// =============================================================================
// CONFIG RESOLUTION
// =============================================================================

// LoadConfig loads the configuration named by --config (or the default
// locations) and applies the global flag overrides on top.
func LoadConfig(args Args) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if args.ConfigPath != "" {
		cfg, err = config.LoadFromPath(args.ConfigPath)
		if err != nil {
			return nil, err
		}
	} else {
		cfg, err = config.Load()
		if cfg == nil {
			return nil, err
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
		}
	}

	args.ApplyTo(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// ApplyTo overrides cfg with the values given on the command line.
func (a Args) ApplyTo(cfg *config.Config) {
	if a.ContentPath != "" {
		cfg.Content.Path = a.ContentPath
	}
	if a.SeedSet {
		cfg.Assistant.Seed = a.Seed
	}
	if a.HoldMode != "" {
		cfg.Warp.HoldMode = a.HoldMode
	}
	if a.Debug {
		cfg.Log.Level = "debug"
		if cfg.Log.File == "" {
			if path, err := config.DefaultLogPath(); err == nil {
				cfg.Log.File = path
			}
		}
	}
}

// =============================================================================
// COMMAND HANDLERS
// =============================================================================

// HandleVersion handles the "version" command with JSON output support.
func HandleVersion(w io.Writer, args Args) error {
	if args.JSON {
		data := VersionData{
			Version:   Version,
			GitCommit: GitCommit,
			BuildDate: BuildDate,
			GoVersion: runtime.Version(),
		}
		return NewJSONResponse("version", data).Print(w)
	}
	PrintVersion(w)
	return nil
}

// HandleHelp handles the "help" command.
func HandleHelp(w io.Writer) {
	PrintUsage(w)
}
