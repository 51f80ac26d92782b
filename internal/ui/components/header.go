// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the NEXUS station TUI.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jeranaias/nexus-tui/internal/content"
	"github.com/jeranaias/nexus-tui/internal/ui/styles"
)

// =============================================================================
// HEADER COMPONENT - badge, gradient title, subtitle
// =============================================================================

// Header represents the station title block.
type Header struct {
	Content content.Header
	Width   int
	theme   *styles.Theme
}

// NewHeader creates a new Header component.
func NewHeader(theme *styles.Theme, c content.Header) *Header {
	return &Header{
		Content: c,
		Width:   80,
		theme:   theme,
	}
}

// SetWidth updates the header width.
func (h *Header) SetWidth(width int) {
	h.Width = width
}

// SetContent replaces the header text.
func (h *Header) SetContent(c content.Header) {
	h.Content = c
}

// View renders the header centred in the available width.
func (h *Header) View() string {
	width := h.Width
	if width < 20 {
		width = 20
	}

	badge := h.theme.HeaderBadge.Render(
		lipgloss.NewStyle().Foreground(styles.Green).Render("●") + " " + h.Content.Badge)

	title := GradientTitle(spaced(h.Content.Title),
		h.theme.Color(styles.Primary), h.theme.Color(styles.Secondary))
	title = h.theme.HeaderTitle.Render(title)

	subtitle := h.theme.HeaderSubtitle.Render(h.Content.Subtitle)

	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	return lipgloss.JoinVertical(lipgloss.Center,
		center.Render(badge),
		center.Render(title),
		center.Render(subtitle),
	)
}

// ViewCompact renders a single line for short terminals.
func (h *Header) ViewCompact() string {
	line := h.theme.HeaderTitle.Render(h.Content.Title) + "  " +
		h.theme.HeaderSubtitle.Render(h.Content.Badge)
	return lipgloss.NewStyle().Width(max(h.Width, 20)).Align(lipgloss.Center).Render(line)
}

// spaced puts a space between letters for the wide-tracked title.
func spaced(s string) string {
	return strings.Join(strings.Split(s, ""), " ")
}

// GradientTitle colors text with a gradient from startColor to endColor.
// Works best in terminals with true color support.
func GradientTitle(text string, startColor, endColor string) string {
	chars := []rune(text)
	if len(chars) == 0 {
		return ""
	}
	if len(chars) < 3 {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(startColor)).Render(text)
	}

	colors := styles.Gradient(startColor, endColor, len(chars))
	var result strings.Builder
	for i, char := range chars {
		result.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors[i])).
			Render(string(char)))
	}
	return result.String()
}
