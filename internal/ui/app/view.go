// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/nexus-tui/internal/ui/components"
)

// minBackdropHeight keeps a sliver of starfield on short terminals.
const minBackdropHeight = 3

// View renders the station screen, or the warp overlay while it is armed.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Initializing station..."
	}

	if m.navigator.Held() {
		return m.overlay.View(components.WarpFrame{
			Width:   m.width,
			Height:  m.height,
			Visuals: m.navigator.Visuals(),
			Hover:   m.navigator.Hover(),
			Elapsed: m.elapsed,
			Opacity: m.overlayOpacity,
		})
	}

	view := m.pageView()
	if m.zones != nil {
		return m.zones.Scan(view)
	}
	return view
}

// pageView lays out header, backdrop, cards, chat and footer. The backdrop
// absorbs whatever height is left.
func (m *Model) pageView() string {
	header := m.header.View()
	if m.height < 30 {
		header = m.header.ViewCompact()
	}
	footer := m.footer.View()
	bottom := m.bottomBar()

	main := m.cards.View()
	chatOpen := m.assistant.IsOpen()
	if chatOpen && !m.sideChat() {
		main = m.chat.View()
	}

	mainWidth := m.width
	if chatOpen && m.sideChat() {
		mainWidth = m.width - components.ChatWidth - 1
	}

	used := lipgloss.Height(header) + lipgloss.Height(main) + lipgloss.Height(bottom) + lipgloss.Height(footer)
	bandHeight := max(m.height-used, minBackdropHeight)
	rotX, rotY := m.shell.Rotation()
	band := m.backdrop.View(mainWidth, bandHeight, m.elapsed, rotX, rotY)

	body := lipgloss.JoinVertical(lipgloss.Left, band, main)
	if chatOpen && m.sideChat() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, " ", m.chat.View())
	}

	page := lipgloss.JoinVertical(lipgloss.Left, header, body, bottom, footer)
	return lipgloss.NewStyle().MaxWidth(m.width).MaxHeight(m.height).Render(page)
}

// bottomBar holds the warp hint on the left and the chat launcher or toasts
// on the right.
func (m *Model) bottomBar() string {
	var left string
	if m.cfg.UI.ShowHints {
		left = m.hint.View()
	}

	var right []string
	if m.toasts.Len() > 0 {
		right = append(right, m.toasts.View(m.width/2))
	}
	if !m.assistant.IsOpen() {
		right = append(right, m.chat.View())
	}
	r := lipgloss.JoinVertical(lipgloss.Right, right...)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(r)
	if gap < 1 {
		return lipgloss.JoinVertical(lipgloss.Left, left, r)
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, strings.Repeat(" ", gap), r)
}
