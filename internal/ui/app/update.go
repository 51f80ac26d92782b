// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"math"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/nexus-tui/internal/content"
	"github.com/jeranaias/nexus-tui/internal/model"
	"github.com/jeranaias/nexus-tui/internal/ui/components"
	"github.com/jeranaias/nexus-tui/internal/ui/styles"
	"github.com/jeranaias/nexus-tui/internal/warp"
)

// Chat panel placement.
const (
	sideChatMinWidth = 100
	opacityEpsilon   = 0.005
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.BlurMsg:
		// Key releases are lost while the terminal is unfocused.
		return m, m.releaseWarp()

	case ReplyMsg:
		m.assistant.Resolve(msg.Pending)
		return m, m.chat.Refresh()

	case HoldCheckMsg:
		if m.hold.Expired(msg.Check) == warp.HoldUp {
			return m, m.releaseWarp()
		}
		return m, nil

	case SampleMsg:
		return m, m.handleSample(msg)

	case FrameMsg:
		return m, m.handleFrame(msg)

	case ContentMsg:
		return m, m.handleContent(msg)

	case components.ToastTickMsg:
		return m, m.toasts.Tick(msg.Time)
	}

	// Spinner ticks and cursor blinks belong to the chat panel.
	return m, m.chat.Update(msg)
}

// handleResize lays the components out for the new size.
func (m *Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.theme.SetSize(msg.Width, msg.Height)
	m.sampler.SetSize(msg.Width, msg.Height)

	m.header.SetWidth(msg.Width)
	m.footer.SetWidth(msg.Width)
	if m.sideChat() {
		m.cards.SetWidth(msg.Width - components.ChatWidth - 1)
		m.chat.SetSize(components.ChatWidth, max(msg.Height-8, components.ChatHeight/2))
	} else {
		m.cards.SetWidth(msg.Width)
		m.chat.SetSize(msg.Width, max(msg.Height/2, 10))
	}
	return m, nil
}

// sideChat reports whether the open chat sits beside the cards.
func (m *Model) sideChat() bool {
	return m.width >= sideChatMinWidth
}

// =============================================================================
// KEYBOARD
// =============================================================================

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m.quit()
	}

	// Shortcuts that work everywhere.
	switch {
	case key.Matches(msg, m.keys.Assistant):
		return m, m.toggleAssistant()
	case key.Matches(msg, m.keys.Emotion):
		m.assistant.CycleEmotion()
		return m, m.chat.Refresh()
	case key.Matches(msg, m.keys.ClearChat):
		m.assistant.Clear()
		return m, m.chat.Refresh()
	}
	if i, ok := m.keys.QuickIndex(msg); ok {
		return m, m.quickReply(i)
	}

	if m.chat.Focused() {
		return m.handleChatKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Warp):
		return m, m.pressWarp()
	case key.Matches(msg, m.keys.Release):
		if m.hold.Cancel() == warp.HoldUp {
			return m, m.releaseWarp()
		}
		return m, nil
	case key.Matches(msg, m.keys.FocusChat):
		if !m.assistant.IsOpen() {
			m.assistant.Open()
		}
		return m, tea.Batch(m.chat.Focus(), m.chat.Refresh())
	}

	if mod, ok := m.keys.ModuleFor(msg); ok {
		if m.navigator.Held() {
			// Keyboard activation obeys the same threshold as a click.
			m.navigator.Activate(mod)
		} else {
			m.shell.Toggle(mod)
		}
		m.syncSelection()
	}
	return m, nil
}

// handleChatKey routes keys while the chat input has focus.
func (m *Model) handleChatKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Release), key.Matches(msg, m.keys.FocusChat):
		m.chat.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Send):
		return m, m.send()
	}
	return m, m.chat.Update(msg)
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.Close()
	return m, tea.Quit
}

// =============================================================================
// ASSISTANT ACTIONS
// =============================================================================

func (m *Model) toggleAssistant() tea.Cmd {
	m.assistant.Toggle()
	if m.assistant.IsOpen() {
		return tea.Batch(m.chat.Focus(), m.chat.Refresh())
	}
	m.chat.Blur()
	return m.chat.Refresh()
}

func (m *Model) quickReply(i int) tea.Cmd {
	if !m.assistant.IsOpen() {
		return nil
	}
	m.assistant.QuickReply(i)
	return tea.Batch(m.chat.Focus(), m.chat.Refresh())
}

// send posts the input and schedules the reply.
func (m *Model) send() tea.Cmd {
	p, ok := m.assistant.Send()
	if !ok {
		return nil
	}
	return tea.Batch(m.chat.Refresh(), replyCmd(p))
}

// =============================================================================
// WARP GESTURE
// =============================================================================

// pressWarp feeds a warp key press to the hold tracker.
func (m *Model) pressWarp() tea.Cmd {
	ev, check, schedule := m.hold.Press()
	var cmds []tea.Cmd
	switch ev {
	case warp.HoldDown:
		cmds = append(cmds, m.armWarp())
	case warp.HoldUp:
		cmds = append(cmds, m.releaseWarp())
	}
	if schedule {
		cmds = append(cmds, holdCheckCmd(check, m.hold.Timeout()))
	}
	return tea.Batch(cmds...)
}

// armWarp shows the overlay and subscribes to all pointer motion.
func (m *Model) armWarp() tea.Cmd {
	m.chat.Blur()
	cmds := []tea.Cmd{m.startFrames()}
	if m.navigator.KeyDown() && m.sub.Acquire() {
		cmds = append(cmds, tea.EnableMouseAllMotion)
	}
	return tea.Batch(cmds...)
}

// releaseWarp hides the overlay and drops the pointer subscription. It is
// safe to call when the overlay is not armed.
func (m *Model) releaseWarp() tea.Cmd {
	m.hold.Cancel()
	m.navigator.KeyUp()
	m.sampleGen++
	if m.sub.Release() {
		return tea.Batch(tea.EnableMouseCellMotion, m.startFrames())
	}
	return nil
}

// handleSample moves the navigator to the newest drag position. Ticks from
// an earlier drag are dropped.
func (m *Model) handleSample(msg SampleMsg) tea.Cmd {
	if msg.Gen != m.sampleGen {
		return nil
	}
	if p, ok := m.sampler.Sample(); ok {
		m.navigator.PointerMove(p)
	}
	if !m.navigator.Dragging() {
		return nil
	}
	return sampleCmd(m.sampleGen)
}

// =============================================================================
// MOUSE
// =============================================================================

func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	m.shell.PointAt(float64(msg.X), float64(msg.Y), float64(m.width), float64(m.height))
	cmds = append(cmds, m.startFrames())

	if m.navigator.Held() {
		cmds = append(cmds, m.handleWarpMouse(msg))
		return m, tea.Batch(cmds...)
	}

	switch {
	case msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown:
		if m.assistant.IsOpen() {
			cmds = append(cmds, m.chat.Update(msg))
		}
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		cmds = append(cmds, m.handleClick(msg))
	}
	return m, tea.Batch(cmds...)
}

// handleWarpMouse drives the gesture while the warp key is held.
func (m *Model) handleWarpMouse(msg tea.MouseMsg) tea.Cmd {
	target, onTarget := warp.TargetAt(msg.X, msg.Y, m.width, m.height)
	m.navigator.SetHover(target)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		if onTarget && m.navigator.Activate(target) {
			m.syncSelection()
			return nil
		}
		m.navigator.PointerDown(m.sampler.Reset(msg.X, msg.Y))
		m.sampleGen++
		return sampleCmd(m.sampleGen)

	case tea.MouseActionMotion:
		m.sampler.Observe(msg.X, msg.Y)

	case tea.MouseActionRelease:
		m.sampler.Observe(msg.X, msg.Y)
		if p, ok := m.sampler.Sample(); ok {
			m.navigator.PointerMove(p)
		}
		m.navigator.PointerUp()
		m.sampleGen++
	}
	return nil
}

// handleClick resolves a left click against the marked zones.
func (m *Model) handleClick(msg tea.MouseMsg) tea.Cmd {
	if !m.assistant.IsOpen() {
		if m.hitTest(components.ZoneChatLauncher, msg) {
			return m.toggleAssistant()
		}
	} else {
		switch {
		case m.hitTest(components.ZoneChatClose, msg):
			return m.toggleAssistant()
		case m.hitTest(components.ZoneChatEmotion, msg):
			m.assistant.CycleEmotion()
			return m.chat.Refresh()
		case m.hitTest(components.ZoneChatSend, msg):
			return m.send()
		}
		for i := range m.assistant.QuickReplies() {
			if m.hitTest(components.QuickZone(i), msg) {
				return m.quickReply(i)
			}
		}
	}

	for _, mod := range model.Modules() {
		if m.hitTest(components.CardZone(mod), msg) {
			m.shell.Toggle(mod)
			m.syncSelection()
			return nil
		}
	}
	return nil
}

// syncSelection copies the shell selection into the card deck.
func (m *Model) syncSelection() {
	m.cards.Selected = m.shell.Selected()
}

// =============================================================================
// ANIMATION
// =============================================================================

// startFrames starts the frame loop unless it is already running.
func (m *Model) startFrames() tea.Cmd {
	if m.framing {
		return nil
	}
	m.framing = true
	return frameCmd(styles.FrameInterval)
}

// handleFrame advances tilt and overlay opacity. The loop keeps running while
// animation is enabled or something is still moving.
func (m *Model) handleFrame(msg FrameMsg) tea.Cmd {
	m.elapsed = msg.Time.Sub(m.start)

	moving := m.shell.Step()

	target := m.navigator.Visuals().OverlayOpacity
	m.overlayOpacity, m.overlayVel = m.overlaySpring.Update(m.overlayOpacity, m.overlayVel, target)
	if math.Abs(m.overlayOpacity-target) > opacityEpsilon || math.Abs(m.overlayVel) > opacityEpsilon {
		moving = true
	}

	m.chat.Elapsed = m.elapsed
	if m.cfg.UI.Animate || moving || m.navigator.Held() {
		return frameCmd(styles.FrameInterval)
	}
	m.shell.Snap()
	m.framing = false
	return nil
}

// =============================================================================
// CONTENT RELOAD
// =============================================================================

func (m *Model) handleContent(msg ContentMsg) tea.Cmd {
	cmds := []tea.Cmd{waitForContent(m.watcherUpdates())}
	now := time.Now()
	if msg.Update.Err != nil {
		m.log.Warn().Err(msg.Update.Err).Msg("content reload rejected")
		cmds = append(cmds, m.toasts.Push(components.NewWarningToast("Content rejected: "+msg.Update.Err.Error(), now)))
		return tea.Batch(cmds...)
	}

	cmds = append(cmds, m.applyContent(msg.Update.Content))
	cmds = append(cmds, m.toasts.Push(components.NewStatusToast("Content reloaded", now)))
	return tea.Batch(cmds...)
}

// applyContent swaps the portfolio content in every component.
func (m *Model) applyContent(c *content.Content) tea.Cmd {
	if c == nil {
		return nil
	}
	m.content = c
	m.assistant.SetContent(c.Assistant.Greeting, c.Assistant.Replies, c.Assistant.QuickReplies)
	m.header.SetContent(c.Header)
	m.cards.SetContent(c)
	m.footer.SetContent(c.Footer)
	m.log.Info().Msg("content applied")
	return m.chat.SetContent(c)
}
