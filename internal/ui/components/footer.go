// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/nexus-tui/internal/content"
	"github.com/jeranaias/nexus-tui/internal/ui/styles"
)

// =============================================================================
// FOOTER - links, system status and key shortcuts
// =============================================================================

// Shortcut is one key hint in the footer.
type Shortcut struct {
	Key  string
	Desc string
}

// DefaultShortcuts are the keys listed in the footer.
var DefaultShortcuts = []Shortcut{
	{"1-3", "modules"},
	{"space", "warp"},
	{"ctrl+a", "assistant"},
	{"tab", "chat"},
	{"q", "quit"},
}

// Footer renders the bottom bar.
type Footer struct {
	theme     *styles.Theme
	content   content.Footer
	Shortcuts []Shortcut
	Width     int
}

// NewFooter creates the footer.
func NewFooter(theme *styles.Theme, c content.Footer) *Footer {
	return &Footer{theme: theme, content: c, Shortcuts: DefaultShortcuts, Width: 80}
}

// SetContent replaces links and status.
func (f *Footer) SetContent(c content.Footer) {
	f.content = c
}

// SetWidth updates the width.
func (f *Footer) SetWidth(width int) {
	f.Width = width
}

// View renders links and status on one line and shortcuts on the next.
// Narrow terminals drop the links.
func (f *Footer) View() string {
	width := max(f.Width, 20)

	status := styles.RenderOnline(f.content.Status)
	top := status
	if width >= 60 {
		links := make([]string, len(f.content.Links))
		for i, l := range f.content.Links {
			links[i] = f.theme.FooterLink.Render(l.Label)
		}
		left := strings.Join(links, "  ")
		gap := width - lipgloss.Width(left) - lipgloss.Width(status)
		if gap > 0 {
			top = left + strings.Repeat(" ", gap) + status
		}
	}

	keys := make([]string, len(f.Shortcuts))
	for i, s := range f.Shortcuts {
		keys[i] = f.theme.ShortcutKey.Render(s.Key) + " " + f.theme.ShortcutDesc.Render(s.Desc)
	}
	bottom := lipgloss.NewStyle().MaxWidth(width).Render(strings.Join(keys, "  "))

	return f.theme.Footer.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, top, bottom))
}
