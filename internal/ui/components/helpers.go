// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strconv"
	"strings"

	zone "github.com/lrstanley/bubblezone"
	"github.com/mattn/go-runewidth"

	"github.com/jeranaias/nexus-tui/internal/model"
)

// =============================================================================
// MOUSE ZONES
// =============================================================================

// Zone IDs marked in the rendered view and resolved by the app on clicks.
const (
	ZoneChatLauncher = "chat:launcher"
	ZoneChatEmotion  = "chat:emotion"
	ZoneChatSend     = "chat:send"
	ZoneChatClose    = "chat:close"

	zoneCardPrefix  = "card:"
	zoneQuickPrefix = "chat:quick:"
)

// CardZone is the zone ID of a module card.
func CardZone(m model.Module) string {
	return zoneCardPrefix + m.String()
}

// QuickZone is the zone ID of the i-th quick reply.
func QuickZone(i int) string {
	return zoneQuickPrefix + strconv.Itoa(i)
}

// ParseCardZone returns the module of a card zone ID.
func ParseCardZone(id string) (model.Module, bool) {
	name, ok := strings.CutPrefix(id, zoneCardPrefix)
	if !ok {
		return model.ModuleNone, false
	}
	m, err := model.ParseModule(name)
	if err != nil || m == model.ModuleNone {
		return model.ModuleNone, false
	}
	return m, true
}

// ParseQuickZone returns the quick reply index of a zone ID.
func ParseQuickZone(id string) (int, bool) {
	n, ok := strings.CutPrefix(id, zoneQuickPrefix)
	if !ok {
		return 0, false
	}
	i, err := strconv.Atoi(n)
	if err != nil || i < 0 {
		return 0, false
	}
	return i, true
}

// mark wraps s in a zone when a manager is present.
func mark(z *zone.Manager, id, s string) string {
	if z == nil {
		return s
	}
	return z.Mark(id, s)
}

// =============================================================================
// TEXT HELPERS
// =============================================================================

// truncate cuts s to width display columns, adding "..." when cut.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= 3 {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, "...")
}
