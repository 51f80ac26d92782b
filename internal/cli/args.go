// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// args.go - Subcommand argument parsing for nexus commands.
package cli

import (
	"strings"
)

// ArgParser splits the words after a command into switches and positional
// values. Only the switches named when it is built are treated as flags, so
// values such as "-5" or "--" reach the subcommand untouched.
type ArgParser struct {
	switches   map[string]bool // declared switch -> set
	positional []string        // subcommand first
}

// NewArgParser parses raw with the given boolean switches.
//
//	p := NewArgParser([]string{"init", "--force"}, "force")
//	p.Subcommand()      // "init"
//	p.BoolFlag("force") // true
func NewArgParser(raw []string, switches ...string) *ArgParser {
	p := &ArgParser{switches: make(map[string]bool, len(switches))}
	known := make(map[string]bool, len(switches))
	for _, s := range switches {
		known[s] = true
	}

	for _, arg := range raw {
		if !strings.HasPrefix(arg, "--") {
			p.positional = append(p.positional, arg)
			continue
		}
		name, value, hasValue := strings.Cut(strings.TrimPrefix(arg, "--"), "=")
		if !known[name] {
			p.positional = append(p.positional, arg)
			continue
		}
		// --force=false switches it back off
		p.switches[name] = !hasValue || value != "false"
	}
	return p
}

// Subcommand returns the first positional argument, or "".
func (p *ArgParser) Subcommand() string {
	return p.Positional(0)
}

// BoolFlag reports whether a declared switch was given.
func (p *ArgParser) BoolFlag(name string) bool {
	return p.switches[strings.TrimLeft(name, "-")]
}

// Positional returns the positional argument at index (0 is the
// subcommand), or "" when out of range.
func (p *ArgParser) Positional(index int) string {
	if index < 0 || index >= len(p.positional) {
		return ""
	}
	return p.positional[index]
}

// PositionalFrom returns the positional arguments from index on, for values
// that were split on spaces.
func (p *ArgParser) PositionalFrom(index int) []string {
	if index < 0 || index >= len(p.positional) {
		return nil
	}
	return p.positional[index:]
}
