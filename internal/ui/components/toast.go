// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/jeranaias/nexus-tui/internal/ui/styles"
)

// =============================================================================
// TOASTS
// =============================================================================
// Toasts sit in the bottom-right corner and dismiss themselves; the station
// uses them to report content reloads.

// ToastKind represents the type of toast notification.
type ToastKind int

const (
	ToastKindStatus ToastKind = iota
	ToastKindWarning
)

// Toast durations.
const (
	StatusToastDuration  = 3 * time.Second
	WarningToastDuration = 6 * time.Second

	toastTickInterval = 250 * time.Millisecond
)

// Toast is a non-blocking notification.
type Toast struct {
	Message   string
	Kind      ToastKind
	CreatedAt time.Time
	Duration  time.Duration
}

// NewStatusToast creates an informational toast.
func NewStatusToast(message string, now time.Time) Toast {
	return Toast{Message: message, Kind: ToastKindStatus, CreatedAt: now, Duration: StatusToastDuration}
}

// NewWarningToast creates a warning toast.
func NewWarningToast(message string, now time.Time) Toast {
	return Toast{Message: message, Kind: ToastKindWarning, CreatedAt: now, Duration: WarningToastDuration}
}

// Expired reports whether the toast should be dismissed at now.
func (t Toast) Expired(now time.Time) bool {
	return now.Sub(t.CreatedAt) >= t.Duration
}

// =============================================================================
// TOAST STACK
// =============================================================================

// ToastTickMsg drives toast expiry.
type ToastTickMsg struct {
	Time time.Time
}

// ToastTickCmd schedules the next expiry check.
func ToastTickCmd() tea.Cmd {
	return tea.Tick(toastTickInterval, func(t time.Time) tea.Msg {
		return ToastTickMsg{Time: t}
	})
}

// ToastStack holds the visible toasts, oldest first.
type ToastStack struct {
	toasts []Toast
	max    int
}

// NewToastStack creates a stack that keeps at most limit toasts.
func NewToastStack(limit int) *ToastStack {
	if limit <= 0 {
		limit = 3
	}
	return &ToastStack{max: limit}
}

// Push adds a toast. It returns a tick command when the stack was empty.
func (s *ToastStack) Push(t Toast) tea.Cmd {
	wasEmpty := len(s.toasts) == 0
	s.toasts = append(s.toasts, t)
	if len(s.toasts) > s.max {
		s.toasts = s.toasts[len(s.toasts)-s.max:]
	}
	if wasEmpty {
		return ToastTickCmd()
	}
	return nil
}

// Tick drops expired toasts and keeps ticking while any remain.
func (s *ToastStack) Tick(now time.Time) tea.Cmd {
	kept := s.toasts[:0]
	for _, t := range s.toasts {
		if !t.Expired(now) {
			kept = append(kept, t)
		}
	}
	s.toasts = kept
	if len(s.toasts) == 0 {
		return nil
	}
	return ToastTickCmd()
}

// Toasts returns a copy of the visible toasts.
func (s *ToastStack) Toasts() []Toast {
	out := make([]Toast, len(s.toasts))
	copy(out, s.toasts)
	return out
}

// Len returns the number of visible toasts.
func (s *ToastStack) Len() int { return len(s.toasts) }

// View renders the stack, newest at the bottom.
func (s *ToastStack) View(width int) string {
	if len(s.toasts) == 0 {
		return ""
	}
	rendered := make([]string, len(s.toasts))
	for i, t := range s.toasts {
		rendered[i] = RenderToast(t, width)
	}
	return lipgloss.JoinVertical(lipgloss.Right, rendered...)
}

// RenderToast renders a single toast.
func RenderToast(t Toast, width int) string {
	maxWidth := 48
	if width > 0 && width-4 < maxWidth {
		maxWidth = width - 4
	}
	if maxWidth < 20 {
		maxWidth = 20
	}

	color, icon := styles.Primary, "[i]"
	if t.Kind == ToastKindWarning {
		color, icon = styles.Amber, styles.StatusIndicators.Warning
	}

	text := wordwrap.String(t.Message, maxWidth-len(icon)-5)
	body := lipgloss.NewStyle().Foreground(color).Bold(true).Render(icon) + " " +
		lipgloss.NewStyle().Foreground(styles.TextPrimary).Render(text)

	return lipgloss.NewStyle().
		Background(styles.Surface).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Padding(0, 1).
		MaxWidth(maxWidth).
		Render(body)
}
