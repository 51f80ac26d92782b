// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"fmt"
	"strings"
)

// Module is one of the selectable portfolio sections.
// The zero value is ModuleNone.
type Module string

const (
	ModuleNone     Module = ""
	ModuleAbout    Module = "about"
	ModuleProjects Module = "projects"
	ModuleSkills   Module = "skills"
)

// Modules returns the selectable modules in display order.
func Modules() []Module {
	return []Module{ModuleAbout, ModuleProjects, ModuleSkills}
}

// String returns the module name, or "none" for ModuleNone.
func (m Module) String() string {
	if m == ModuleNone {
		return "none"
	}
	return string(m)
}

// Title returns the upper-case label shown on cards and warp targets.
func (m Module) Title() string {
	if m == ModuleNone {
		return ""
	}
	return strings.ToUpper(string(m))
}

// Valid reports whether m is a selectable module.
func (m Module) Valid() bool {
	switch m {
	case ModuleAbout, ModuleProjects, ModuleSkills:
		return true
	}
	return false
}

// ParseModule converts a name (case-insensitive) into a Module.
// "none" and the empty string map to ModuleNone.
func ParseModule(s string) (Module, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return ModuleNone, nil
	case "about":
		return ModuleAbout, nil
	case "projects":
		return ModuleProjects, nil
	case "skills":
		return ModuleSkills, nil
	}
	return ModuleNone, fmt.Errorf("unknown module %q", s)
}
