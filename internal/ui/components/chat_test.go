// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/nexus-tui/internal/content"
)

func newTestPanel() (*ChatPanel, *content.Content) {
	c := content.Default()
	p := NewChatPanel(testTheme(), nil, testAssistant(c), c)
	p.SetSize(80, 30)
	return p, c
}

func TestChatPanelLauncherWhenClosed(t *testing.T) {
	p, _ := newTestPanel()
	view := plain(p.View())
	require.Contains(t, view, "NEXUS AI")
	require.NotContains(t, view, "send")
}

func TestChatPanelOpenView(t *testing.T) {
	p, c := newTestPanel()
	p.assistant.Open()
	p.Refresh()

	view := plain(p.View())
	require.Contains(t, view, c.Assistant.Greeting)
	require.Contains(t, view, "Ready to work")
	require.Contains(t, view, "[-_-]")
	require.Contains(t, view, "alt+1")
	require.Contains(t, view, "send")
	for _, q := range c.Assistant.QuickReplies {
		require.Contains(t, view, q)
	}
}

func TestChatPanelSendShowsThinkingThenReply(t *testing.T) {
	p, c := newTestPanel()
	a := p.assistant
	a.Open()

	a.SetInput("hello station")
	p.Refresh()
	pending, ok := a.Send()
	require.True(t, ok)

	cmd := p.Refresh()
	require.NotNil(t, cmd, "spinner should start while a reply is pending")
	view := plain(p.View())
	require.Contains(t, view, "hello station")
	require.Contains(t, view, "Processing...")
	require.Contains(t, view, "(o_o)?")

	require.True(t, a.Resolve(pending))
	require.Nil(t, p.Refresh())
	view = plain(p.View())
	require.Contains(t, view, c.Assistant.Replies[0])
	require.NotContains(t, view, "Processing...")
}

func TestChatPanelTypingMirrorsInput(t *testing.T) {
	p, _ := newTestPanel()
	p.assistant.Open()

	// Unfocused panels ignore keys.
	p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	require.Equal(t, "", p.assistant.Input())

	p.Focus()
	require.True(t, p.Focused())
	p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hi")})
	require.Equal(t, "hi", p.assistant.Input())

	p.Blur()
	require.False(t, p.Focused())
}

func TestChatPanelQuickReplyFillsInput(t *testing.T) {
	p, c := newTestPanel()
	p.assistant.Open()
	require.True(t, p.assistant.QuickReply(1))
	p.Refresh()
	require.Equal(t, c.Assistant.QuickReplies[1], p.input.Value())
}

func TestChatPanelZones(t *testing.T) {
	z := zone.New()
	defer z.Close()

	c := content.Default()
	p := NewChatPanel(testTheme(), z, testAssistant(c), c)
	p.SetSize(60, 24)
	require.Contains(t, scanned(t, z, p.View()), "NEXUS AI")

	p.assistant.Open()
	p.Refresh()
	require.Contains(t, scanned(t, z, p.View()), "send")
}

func TestChatPanelMinimumSize(t *testing.T) {
	p, _ := newTestPanel()
	p.SetSize(1, 1)
	require.Equal(t, 24, p.Width)
	require.Equal(t, 10, p.Height)
	require.GreaterOrEqual(t, p.log.Height, 3)
}
