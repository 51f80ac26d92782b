// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jeranaias/nexus-tui/internal/model"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the application.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// HEADER STYLES
	// ==========================================================================

	HeaderBadge    lipgloss.Style
	HeaderTitle    lipgloss.Style
	HeaderSubtitle lipgloss.Style

	// ==========================================================================
	// MODULE CARD STYLES
	// ==========================================================================

	Card      lipgloss.Style
	CardTitle lipgloss.Style
	CardCode  lipgloss.Style
	CardBody  lipgloss.Style
	Tag       lipgloss.Style

	// ==========================================================================
	// CHAT PANEL STYLES
	// ==========================================================================

	ChatPanel       lipgloss.Style
	ChatTitle       lipgloss.Style
	ChatLauncher    lipgloss.Style
	UserBubble      lipgloss.Style
	AssistantBubble lipgloss.Style
	Timestamp       lipgloss.Style
	QuickReply      lipgloss.Style
	InputBox        lipgloss.Style
	Button          lipgloss.Style
	ButtonDisabled  lipgloss.Style

	// ==========================================================================
	// WARP OVERLAY STYLES
	// ==========================================================================

	HintBadge     lipgloss.Style
	HintKey       lipgloss.Style
	OverlayHint   lipgloss.Style
	TargetCaption lipgloss.Style

	// ==========================================================================
	// FOOTER STYLES
	// ==========================================================================

	Footer       lipgloss.Style
	FooterLink   lipgloss.Style
	FooterStatus lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style
}

// NewTheme creates a theme. mode is "dark", "light" or "auto"; auto asks the
// terminal for its background.
func NewTheme(mode string) *Theme {
	colorProfile := termenv.ColorProfile()

	var isDark bool
	switch strings.ToLower(mode) {
	case "dark":
		isDark = true
	case "light":
		isDark = false
	default:
		isDark = termenv.HasDarkBackground()
	}
	lipgloss.SetHasDarkBackground(isDark)

	t := &Theme{
		IsDark:       isDark,
		HasTrueColor: colorProfile == termenv.TrueColor,
		ColorProfile: colorProfile,
	}
	t.initStyles()
	return t
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	// Header
	t.HeaderBadge = lipgloss.NewStyle().
		Foreground(Primary).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Primary).
		Padding(0, 2)

	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	t.HeaderSubtitle = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Italic(true)

	// Cards
	t.Card = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 2)

	t.CardTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary)

	t.CardCode = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.CardBody = lipgloss.NewStyle().
		Foreground(TextSecondary).
		MarginTop(1)

	t.Tag = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Padding(0, 1)

	// Chat
	t.ChatPanel = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Primary).
		Background(Surface).
		Padding(0, 1)

	t.ChatTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary)

	t.ChatLauncher = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Primary).
		Foreground(Primary).
		Bold(true).
		Padding(0, 1)

	t.UserBubble = lipgloss.NewStyle().
		Foreground(UserBubbleFg).
		Background(UserBubbleBg).
		Padding(0, 1)

	t.AssistantBubble = lipgloss.NewStyle().
		Foreground(AssistantBubbleFg).
		Background(AssistantBubbleBg).
		Padding(0, 1)

	t.Timestamp = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.QuickReply = lipgloss.NewStyle().
		Foreground(Secondary).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(Secondary).
		BorderLeft(true).
		PaddingLeft(1)

	t.InputBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(Overlay)

	t.Button = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(Primary).
		Bold(true).
		Padding(0, 1)

	t.ButtonDisabled = lipgloss.NewStyle().
		Foreground(TextMuted).
		Background(SurfaceBright).
		Padding(0, 1)

	// Warp overlay
	t.HintBadge = lipgloss.NewStyle().
		Foreground(TextSecondary).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Secondary).
		Padding(0, 1)

	t.HintKey = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	t.OverlayHint = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)

	t.TargetCaption = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	// Footer
	t.Footer = lipgloss.NewStyle().
		Foreground(TextMuted).
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(Overlay)

	t.FooterLink = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Underline(true)

	t.FooterStatus = lipgloss.NewStyle().
		Foreground(Green)

	t.ShortcutKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(TextMuted)
}

// CardBorder returns the card style for m, glowing in the module color when
// selected or hovered.
func (t *Theme) CardBorder(m model.Module, selected bool) lipgloss.Style {
	s := t.Card
	if selected {
		s = s.BorderStyle(lipgloss.ThickBorder()).BorderForeground(ModuleColor(m))
	}
	return s
}

// Color resolves an adaptive color for this theme.
func (t *Theme) Color(c lipgloss.AdaptiveColor) string {
	return Resolve(c, t.IsDark)
}

// SetSize updates the theme dimensions for responsive layouts.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// GetLayoutMode returns the current layout mode based on width.
func (t *Theme) GetLayoutMode() LayoutMode {
	if t.Width < 60 {
		return LayoutNarrow
	}
	if t.Width < 100 {
		return LayoutMedium
	}
	return LayoutWide
}

// LayoutMode represents the current responsive layout mode.
type LayoutMode int

const (
	LayoutNarrow LayoutMode = iota // < 60 columns, cards stacked
	LayoutMedium                   // 60-100 columns
	LayoutWide                     // > 100 columns, cards side by side
)
