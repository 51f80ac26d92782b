// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jeranaias/nexus-tui/internal/model"
)

// =============================================================================
// HELPER FUNCTION TESTS
// =============================================================================

func TestCardZoneRoundTrip(t *testing.T) {
	for _, m := range model.Modules() {
		got, ok := ParseCardZone(CardZone(m))
		require.True(t, ok)
		require.Equal(t, m, got)
	}
}

func TestParseCardZoneRejects(t *testing.T) {
	tests := []string{"", "card:", "card:none", "card:bridge", "chat:send", "about"}
	for _, id := range tests {
		_, ok := ParseCardZone(id)
		require.False(t, ok, id)
	}
}

func TestParseQuickZone(t *testing.T) {
	tests := []struct {
		id   string
		want int
		ok   bool
	}{
		{QuickZone(0), 0, true},
		{QuickZone(2), 2, true},
		{"chat:quick:-1", 0, false},
		{"chat:quick:x", 0, false},
		{ZoneChatSend, 0, false},
	}

	for _, tc := range tests {
		got, ok := ParseQuickZone(tc.id)
		require.Equal(t, tc.ok, ok, tc.id)
		require.Equal(t, tc.want, got, tc.id)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input string
		width int
		want  string
	}{
		{"station", 10, "station"},
		{"station", 7, "station"},
		{"station", 6, "sta..."},
		{"station", 3, "sta"},
		{"station", 0, ""},
		{"◉ core", 6, "◉ core"},
	}

	for _, tc := range tests {
		require.Equal(t, tc.want, truncate(tc.input, tc.width), tc.input)
	}
}

func TestMarkWithoutManager(t *testing.T) {
	require.Equal(t, "x", mark(nil, ZoneChatSend, "x"))
}
