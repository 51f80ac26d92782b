// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the NEXUS station TUI.
// All colors use Lip Gloss AdaptiveColor for automatic light/dark detection.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/jeranaias/nexus-tui/internal/model"
)

// =============================================================================
// STATION ACCENT COLORS
// =============================================================================

// Primary - Cyan station glow, about module, active projects
var Primary = lipgloss.AdaptiveColor{Light: "#0891B2", Dark: "#22D3EE"}

// PrimaryDeep - Darker cyan for backgrounds
var PrimaryDeep = lipgloss.AdaptiveColor{Light: "#0E7490", Dark: "#164E63"}

// Secondary - Purple, projects module, beta projects
var Secondary = lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#A78BFA"}

// SecondaryDeep - Darker purple for backgrounds
var SecondaryDeep = lipgloss.AdaptiveColor{Light: "#5B21B6", Dark: "#4C1D95"}

// Accent - Pink, skills module, excited emotion
var Accent = lipgloss.AdaptiveColor{Light: "#DB2777", Dark: "#F472B6"}

// =============================================================================
// SEMANTIC COLORS
// =============================================================================

// Green - Live projects, happy emotion, systems operational
var Green = lipgloss.AdaptiveColor{Light: "#16A34A", Dark: "#4ADE80"}

// Blue - Thinking emotion
var Blue = lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#60A5FA"}

// Gray - Neutral emotion
var Gray = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}

// Amber - Warnings
var Amber = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"}

// Rose - Errors
var Rose = lipgloss.AdaptiveColor{Light: "#E11D48", Dark: "#FB7185"}

// =============================================================================
// SURFACE COLORS
// =============================================================================

// Space - Backdrop behind everything
var Space = lipgloss.AdaptiveColor{Light: "#F1F5F9", Dark: "#070B1A"}

// Surface - Glass panels (cards, chat)
var Surface = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#111827"}

// SurfaceBright - Highlighted panels
var SurfaceBright = lipgloss.AdaptiveColor{Light: "#E0F2FE", Dark: "#1E293B"}

// Overlay - Borders, separators
var Overlay = lipgloss.AdaptiveColor{Light: "#CBD5E1", Dark: "#334155"}

// Star - Base star color
var Star = lipgloss.AdaptiveColor{Light: "#475569", Dark: "#E2E8F0"}

// =============================================================================
// TEXT COLORS
// =============================================================================

// TextPrimary - Main body text
var TextPrimary = lipgloss.AdaptiveColor{Light: "#0F172A", Dark: "#E2E8F0"}

// TextSecondary - Labels
var TextSecondary = lipgloss.AdaptiveColor{Light: "#475569", Dark: "#94A3B8"}

// TextMuted - Hints, module codes
var TextMuted = lipgloss.AdaptiveColor{Light: "#94A3B8", Dark: "#64748B"}

// TextInverse - Text on colored backgrounds
var TextInverse = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#070B1A"}

// =============================================================================
// MESSAGE BUBBLE COLORS
// =============================================================================

var UserBubbleBg = lipgloss.AdaptiveColor{Light: "#CFFAFE", Dark: "#155E75"}
var UserBubbleFg = lipgloss.AdaptiveColor{Light: "#164E63", Dark: "#ECFEFF"}
var AssistantBubbleBg = lipgloss.AdaptiveColor{Light: "#EDE9FE", Dark: "#2E1065"}
var AssistantBubbleFg = lipgloss.AdaptiveColor{Light: "#4C1D95", Dark: "#EDE9FE"}

// =============================================================================
// DOMAIN COLOR LOOKUPS
// =============================================================================

// ModuleColor returns the glow color of a module card and warp target.
func ModuleColor(m model.Module) lipgloss.AdaptiveColor {
	switch m {
	case model.ModuleAbout:
		return Primary
	case model.ModuleProjects:
		return Secondary
	case model.ModuleSkills:
		return Accent
	default:
		return Overlay
	}
}

// EmotionColor returns the color of the assistant's mood line.
func EmotionColor(e model.Emotion) lipgloss.AdaptiveColor {
	switch e {
	case model.EmotionHappy:
		return Green
	case model.EmotionThinking:
		return Blue
	case model.EmotionExcited:
		return Accent
	default:
		return Gray
	}
}

// StatusColor returns the badge color of a project status.
func StatusColor(status string) lipgloss.AdaptiveColor {
	switch status {
	case "Live":
		return Green
	case "Active":
		return Primary
	default:
		return Secondary
	}
}

// =============================================================================
// STATUS INDICATORS
// =============================================================================

// StatusIndicatorSet contains text indicators for status states.
type StatusIndicatorSet struct {
	Online  string
	Warning string
	Error   string
}

// StatusIndicators are ASCII-only for maximum compatibility.
var StatusIndicators = StatusIndicatorSet{
	Online:  "[*]",
	Warning: "[!]",
	Error:   "[X]",
}

// RenderOnline renders a green status line with the online indicator.
func RenderOnline(message string) string {
	return lipgloss.NewStyle().Foreground(Green).Render(StatusIndicators.Online + " " + message)
}

// RenderWarning renders a warning message.
func RenderWarning(message string) string {
	return lipgloss.NewStyle().Foreground(Amber).Bold(true).Render(StatusIndicators.Warning + " " + message)
}

// RenderError renders an error message.
func RenderError(message string) string {
	return lipgloss.NewStyle().Foreground(Rose).Bold(true).Render(StatusIndicators.Error + " " + message)
}

// RenderLink renders text as a link with underline.
func RenderLink(text string) string {
	return lipgloss.NewStyle().Foreground(Primary).Underline(true).Render(text)
}
