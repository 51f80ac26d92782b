// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/nexus-tui/internal/assistant"
	"github.com/jeranaias/nexus-tui/internal/content"
	"github.com/jeranaias/nexus-tui/internal/warp"
)

// =============================================================================
// MESSAGES
// =============================================================================

// ReplyMsg delivers a deferred assistant reply.
type ReplyMsg struct {
	Pending assistant.Pending
}

// HoldCheckMsg asks whether the warp key went quiet (repeat hold mode).
type HoldCheckMsg struct {
	Check warp.HoldCheck
}

// SampleMsg feeds the latest drag position to the navigator. Gen names the
// drag that scheduled it.
type SampleMsg struct {
	Gen uint64
}

// FrameMsg advances the animations.
type FrameMsg struct {
	Time time.Time
}

// ContentMsg carries a reload of the content override file.
type ContentMsg struct {
	Update content.Update
}

// =============================================================================
// COMMAND CREATORS
// =============================================================================

// replyCmd resolves p after the reply delay.
func replyCmd(p assistant.Pending) tea.Cmd {
	return tea.Tick(assistant.ReplyDelay, func(time.Time) tea.Msg {
		return ReplyMsg{Pending: p}
	})
}

// holdCheckCmd fires c after timeout.
func holdCheckCmd(c warp.HoldCheck, timeout time.Duration) tea.Cmd {
	return tea.Tick(timeout, func(time.Time) tea.Msg {
		return HoldCheckMsg{Check: c}
	})
}

func sampleCmd(gen uint64) tea.Cmd {
	return tea.Tick(warp.SampleInterval, func(time.Time) tea.Msg {
		return SampleMsg{Gen: gen}
	})
}

func frameCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg{Time: t}
	})
}

// waitForContent blocks on the watcher until the next reload.
func waitForContent(updates <-chan content.Update) tea.Cmd {
	if updates == nil {
		return nil
	}
	return func() tea.Msg {
		u, ok := <-updates
		if !ok {
			return nil
		}
		return ContentMsg{Update: u}
	}
}
