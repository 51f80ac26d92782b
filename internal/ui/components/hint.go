// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/jeranaias/nexus-tui/internal/ui/styles"
	"github.com/jeranaias/nexus-tui/internal/warp"
)

// HintBadge is the idle reminder of the warp gesture.
type HintBadge struct {
	theme *styles.Theme
	mode  warp.HoldMode
}

// NewHintBadge creates the badge for a hold mode.
func NewHintBadge(theme *styles.Theme, mode warp.HoldMode) *HintBadge {
	return &HintBadge{theme: theme, mode: mode}
}

// Text returns the unstyled badge text.
func (h *HintBadge) Text() string {
	if h.mode == warp.HoldRepeat {
		return "Hold space + drag to warp"
	}
	return "Press space + drag to warp, esc to exit"
}

// View renders the badge.
func (h *HintBadge) View() string {
	return h.theme.HintBadge.Render(h.theme.HintKey.Render("⌁") + " " + h.Text())
}
