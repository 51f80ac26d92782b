// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/nexus-tui/internal/ui/styles"
)

// =============================================================================
// SPINNER MODEL
// =============================================================================

// Spinner wraps the bubbles spinner with an on/off switch and a label.
type Spinner struct {
	// Core spinner from bubbles
	spinner spinner.Model

	message   string
	color     lipgloss.AdaptiveColor
	startTime time.Time
	isActive  bool
}

// newSpinner builds a Spinner from a frame set.
func newSpinner(cfg styles.SpinnerConfig, message string, color lipgloss.AdaptiveColor) Spinner {
	s := spinner.New(spinner.WithSpinner(spinner.Spinner{
		Frames: cfg.Frames,
		FPS:    cfg.Duration(),
	}))
	return Spinner{spinner: s, message: message, color: color}
}

// NewThinkingSpinner shows the dots while a reply is pending.
func NewThinkingSpinner(message string) Spinner {
	return newSpinner(styles.ThinkingSpinner, message, styles.Blue)
}

// SetMessage sets the label after the frames.
func (s *Spinner) SetMessage(msg string) {
	s.message = msg
}

// =============================================================================
// STATE MANAGEMENT
// =============================================================================

// Start activates the spinner. Starting an active spinner returns nil so only
// one tick loop runs.
func (s *Spinner) Start() tea.Cmd {
	if s.isActive {
		return nil
	}
	s.isActive = true
	s.startTime = time.Now()
	return s.spinner.Tick
}

// Stop deactivates the spinner. Its pending tick is dropped by Update.
func (s *Spinner) Stop() {
	s.isActive = false
}

// IsActive returns whether the spinner is currently running.
func (s *Spinner) IsActive() bool {
	return s.isActive
}

// GetElapsed returns the duration since the spinner started.
func (s *Spinner) GetElapsed() time.Duration {
	if s.startTime.IsZero() {
		return 0
	}
	return time.Since(s.startTime)
}

// =============================================================================
// BUBBLE TEA INTERFACE
// =============================================================================

// Update advances the frames while active.
func (s Spinner) Update(msg tea.Msg) (Spinner, tea.Cmd) {
	if !s.isActive {
		return s, nil
	}

	var cmd tea.Cmd
	s.spinner, cmd = s.spinner.Update(msg)
	return s, cmd
}

// View renders the spinner, or nothing when stopped.
func (s Spinner) View() string {
	if !s.isActive {
		return ""
	}
	frames := lipgloss.NewStyle().Foreground(s.color).Render(s.spinner.View())
	if s.message == "" {
		return frames
	}
	return frames + " " + lipgloss.NewStyle().Foreground(styles.TextMuted).Italic(true).Render(s.message)
}
