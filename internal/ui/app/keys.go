// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/nexus-tui/internal/model"
)

// =============================================================================
// KEY MAP DEFINITION
// =============================================================================

// KeyMap defines the keyboard bindings of the station screen.
type KeyMap struct {
	About     key.Binding
	Projects  key.Binding
	Skills    key.Binding
	Warp      key.Binding
	Release   key.Binding
	FocusChat key.Binding
	Assistant key.Binding
	Emotion   key.Binding
	Quick     []key.Binding
	Send      key.Binding
	ClearChat key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		About: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "about"),
		),
		Projects: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "projects"),
		),
		Skills: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "skills"),
		),
		Warp: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "warp"),
		),
		Release: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "release warp / leave chat"),
		),
		FocusChat: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "focus chat"),
		),
		Assistant: key.NewBinding(
			key.WithKeys("ctrl+a"),
			key.WithHelp("C-a", "toggle assistant"),
		),
		Emotion: key.NewBinding(
			key.WithKeys("ctrl+e"),
			key.WithHelp("C-e", "cycle mood"),
		),
		Quick: []key.Binding{
			key.NewBinding(key.WithKeys("alt+1"), key.WithHelp("M-1", "quick reply 1")),
			key.NewBinding(key.WithKeys("alt+2"), key.WithHelp("M-2", "quick reply 2")),
			key.NewBinding(key.WithKeys("alt+3"), key.WithHelp("M-3", "quick reply 3")),
		},
		Send: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "send"),
		),
		ClearChat: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("C-l", "clear chat"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("C-c", "quit"),
		),
	}
}

// ModuleFor returns the module bound to a number key.
func (k KeyMap) ModuleFor(msg tea.KeyMsg) (model.Module, bool) {
	switch {
	case key.Matches(msg, k.About):
		return model.ModuleAbout, true
	case key.Matches(msg, k.Projects):
		return model.ModuleProjects, true
	case key.Matches(msg, k.Skills):
		return model.ModuleSkills, true
	}
	return model.ModuleNone, false
}

// QuickIndex returns the quick reply bound to msg.
func (k KeyMap) QuickIndex(msg tea.KeyMsg) (int, bool) {
	for i, b := range k.Quick {
		if key.Matches(msg, b) {
			return i, true
		}
	}
	return 0, false
}

// ShortHelp returns the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Warp, k.Assistant, k.FocusChat, k.Quit}
}

// FullHelp returns all bindings, grouped.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.About, k.Projects, k.Skills},
		{k.Warp, k.Release},
		append([]key.Binding{k.FocusChat, k.Assistant, k.Emotion, k.Send, k.ClearChat}, k.Quick...),
		{k.Quit, k.ForceQuit},
	}
}
