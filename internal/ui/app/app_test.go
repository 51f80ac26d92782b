// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/nexus-tui/internal/config"
	"github.com/jeranaias/nexus-tui/internal/content"
	"github.com/jeranaias/nexus-tui/internal/model"
	"github.com/jeranaias/nexus-tui/internal/ui/components"
	"github.com/jeranaias/nexus-tui/internal/warp"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

type zeroRand struct{}

func (zeroRand) Intn(int) int { return 0 }

// hits is a fake zone table: the zone under the pointer is whatever was set
// last.
type hits struct {
	id string
}

func (h *hits) test(id string, _ tea.MouseMsg) bool { return id == h.id }

func newTestModel(t *testing.T, mutate func(*config.Config)) (*Model, *hits) {
	t.Helper()
	cfg := config.Default()
	cfg.UI.Animate = false
	cfg.Assistant.Seed = 42
	if mutate != nil {
		mutate(cfg)
	}
	h := &hits{}
	m := New(Options{Config: cfg, Rand: zeroRand{}, HitTest: h.test})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return m, h
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	space = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	ctrlA = tea.KeyMsg{Type: tea.KeyCtrlA}
	ctrlE = tea.KeyMsg{Type: tea.KeyCtrlE}
	tab   = tea.KeyMsg{Type: tea.KeyTab}
)

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone}
}

// targetCentre returns the cell at the centre of a module's warp target.
func targetCentre(mod model.Module, w, h int) (int, int) {
	for _, t := range warp.Targets() {
		if t.Module == mod {
			r := t.Rect(w, h)
			return r.X + r.W/2, r.Y + r.H/2
		}
	}
	panic("unknown module")
}

// drag arms the overlay and drags from (x0,y) to (x1,y) with one sample.
func drag(m *Model, x0, x1, y int) {
	m.Update(press(x0, y))
	m.Update(motion(x1, y))
	m.Update(SampleMsg{Gen: m.sampleGen})
	m.Update(release(x1, y))
}

// =============================================================================
// WARP GESTURE
// =============================================================================

func TestWarpToggleArmsAndReleases(t *testing.T) {
	m, _ := newTestModel(t, nil)

	_, cmd := m.Update(space)
	require.NotNil(t, cmd)
	require.True(t, m.Navigator().Held())
	require.True(t, m.Subscription().Active())
	require.Equal(t, warp.StateArmed, m.Navigator().State())

	m.Update(space)
	require.False(t, m.Navigator().Held())
	require.False(t, m.Subscription().Active())
	require.True(t, m.Subscription().Balanced())
}

func TestWarpEscReleases(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m.Update(space)
	m.Update(esc)
	require.False(t, m.Navigator().Held())
	require.True(t, m.Subscription().Balanced())

	// Esc while idle changes nothing.
	m.Update(esc)
	require.True(t, m.Subscription().Balanced())
}

func TestWarpDragThenActivate(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m.Update(space)

	// 30 cells at 12.8 virtual px per cell is 384px: intensity 38.4.
	drag(m, 5, 35, 2)
	require.InDelta(t, 38.4, m.Navigator().Intensity(), 0.001)
	require.False(t, m.Navigator().Dragging())
	require.True(t, m.Navigator().Ready())

	x, y := targetCentre(model.ModuleProjects, 100, 40)
	m.Update(press(x, y))
	require.Equal(t, model.ModuleProjects, m.Shell().Selected())
	require.Equal(t, 0.0, m.Navigator().Intensity())
	require.True(t, m.Navigator().Held(), "activation keeps the overlay armed")
}

func TestWarpActivateBelowThreshold(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m.Update(space)

	// 10 cells is 128px: intensity 12.8.
	drag(m, 5, 15, 2)
	require.InDelta(t, 12.8, m.Navigator().Intensity(), 0.001)

	x, y := targetCentre(model.ModuleAbout, 100, 40)
	m.Update(press(x, y))
	require.Equal(t, model.ModuleNone, m.Shell().Selected())
	require.True(t, m.Navigator().Dragging(), "a refused click starts a new drag")
}

func TestWarpKeyboardActivation(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m.Update(space)

	m.Update(keyRunes("3"))
	require.Equal(t, model.ModuleNone, m.Shell().Selected(), "no distortion yet")

	drag(m, 0, 40, 1)
	m.Update(keyRunes("3"))
	require.Equal(t, model.ModuleSkills, m.Shell().Selected())
}

func TestWarpHoverTracksTargets(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m.Update(space)

	x, y := targetCentre(model.ModuleSkills, 100, 40)
	m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone})
	require.Equal(t, model.ModuleSkills, m.Navigator().Hover())

	m.Update(tea.MouseMsg{X: 0, Y: 39, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone})
	require.Equal(t, model.ModuleNone, m.Navigator().Hover())
}

func TestWarpReleaseResetsIntensity(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m.Update(space)
	drag(m, 0, 40, 1)
	require.True(t, m.Navigator().Ready())

	m.Update(space)
	require.Equal(t, 0.0, m.Navigator().Intensity())
	require.Equal(t, warp.StateIdle, m.Navigator().State())
}

func TestWarpSampleWithoutDragStops(t *testing.T) {
	m, _ := newTestModel(t, nil)
	_, cmd := m.Update(SampleMsg{})
	require.Nil(t, cmd)
}

func TestWarpSampleFromEarlierDragDropped(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m.Update(space)

	m.Update(press(5, 2))
	first := m.sampleGen
	m.Update(release(5, 2))
	m.Update(press(5, 2))
	m.Update(motion(35, 2))

	// The first drag's tick is still in flight when the second drag starts.
	_, cmd := m.Update(SampleMsg{Gen: first})
	require.Nil(t, cmd)
	require.Equal(t, 0.0, m.Navigator().Intensity())

	_, cmd = m.Update(SampleMsg{Gen: m.sampleGen})
	require.NotNil(t, cmd)
	require.True(t, m.Navigator().Ready(), "intensity %.1f", m.Navigator().Intensity())

	m.Update(release(35, 2))
	_, cmd = m.Update(SampleMsg{Gen: m.sampleGen - 1})
	require.Nil(t, cmd)
}

func TestWarpRepeatMode(t *testing.T) {
	m, _ := newTestModel(t, func(c *config.Config) {
		c.Warp.HoldMode = "repeat"
	})

	m.Update(space) // gen 1
	require.True(t, m.Navigator().Held())
	m.Update(space) // auto-repeat, gen 2
	require.True(t, m.Navigator().Held())

	// The first check is stale.
	m.Update(HoldCheckMsg{Check: warp.HoldCheck{Gen: 1}})
	require.True(t, m.Navigator().Held())

	m.Update(HoldCheckMsg{Check: warp.HoldCheck{Gen: 2}})
	require.False(t, m.Navigator().Held())
	require.True(t, m.Subscription().Balanced())
}

func TestWarpFocusLossReleases(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m.Update(space)
	m.Update(tea.BlurMsg{})
	require.False(t, m.Navigator().Held())
	require.True(t, m.Subscription().Balanced())
}

// =============================================================================
// PAGE SHELL
// =============================================================================

func TestNumberKeysToggleCards(t *testing.T) {
	m, _ := newTestModel(t, nil)

	m.Update(keyRunes("1"))
	require.Equal(t, model.ModuleAbout, m.Shell().Selected())
	m.Update(keyRunes("2"))
	require.Equal(t, model.ModuleProjects, m.Shell().Selected())
	m.Update(keyRunes("2"))
	require.Equal(t, model.ModuleNone, m.Shell().Selected())
}

func TestCardClickToggles(t *testing.T) {
	m, h := newTestModel(t, nil)

	h.id = components.CardZone(model.ModuleSkills)
	m.Update(press(1, 1))
	require.Equal(t, model.ModuleSkills, m.Shell().Selected())
	m.Update(press(1, 1))
	require.Equal(t, model.ModuleNone, m.Shell().Selected())
}

func TestMouseTilt(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m.Update(tea.MouseMsg{X: 100, Y: 0, Action: tea.MouseActionMotion})

	rotX, rotY := m.Shell().Target()
	require.InDelta(t, -10, rotX, 0.001)
	require.InDelta(t, 10, rotY, 0.001)
}

func TestFramesStopWhenSettled(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m.Update(tea.MouseMsg{X: 80, Y: 30, Action: tea.MouseActionMotion})
	require.True(t, m.framing)

	now := time.Now()
	for i := 0; i < 600 && m.framing; i++ {
		m.Update(FrameMsg{Time: now.Add(time.Duration(i) * 33 * time.Millisecond)})
	}
	require.False(t, m.framing)
	require.True(t, m.Shell().Settled())
}

// =============================================================================
// ASSISTANT
// =============================================================================

func TestAssistantTypingAndSend(t *testing.T) {
	m, _ := newTestModel(t, nil)

	m.Update(ctrlA)
	require.True(t, m.Assistant().IsOpen())

	m.Update(keyRunes("hello"))
	require.Equal(t, "hello", m.Assistant().Input())

	_, cmd := m.Update(enter)
	require.NotNil(t, cmd)
	require.Equal(t, "", m.Assistant().Input())
	require.Equal(t, 1, m.Assistant().PendingCount())
	require.Equal(t, model.EmotionThinking, m.Assistant().Emotion())

	last := m.Assistant().Conversation().GetLastMessage()
	require.Equal(t, "hello", last.Text)
	require.True(t, last.IsUser())
}

func TestAssistantBlankSendIsNoop(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m.Update(ctrlA)
	m.Update(keyRunes("   "))

	_, cmd := m.Update(enter)
	require.Nil(t, cmd)
	require.Equal(t, 1, m.Assistant().Conversation().MessageCount())
}

func TestAssistantReplyArrives(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m.Update(ctrlA)

	m.Assistant().SetInput("status?")
	p, ok := m.Assistant().Send()
	require.True(t, ok)

	m.Update(ReplyMsg{Pending: p})
	last := m.Assistant().Conversation().GetLastMessage()
	require.Equal(t, m.Content().Assistant.Replies[0], last.Text)
	require.Equal(t, model.EmotionHappy, m.Assistant().Emotion())
}

func TestAssistantReplySuppressedAfterClose(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m.Update(ctrlA)

	m.Assistant().SetInput("status?")
	p, _ := m.Assistant().Send()
	count := m.Assistant().Conversation().MessageCount()

	m.Update(ctrlA) // close
	m.Update(ReplyMsg{Pending: p})
	require.Equal(t, count, m.Assistant().Conversation().MessageCount())
}

func TestAssistantShortcuts(t *testing.T) {
	m, _ := newTestModel(t, nil)

	// Quick replies need the panel open.
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("1"), Alt: true})
	require.Equal(t, "", m.Assistant().Input())

	m.Update(ctrlA)
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("2"), Alt: true})
	require.Equal(t, m.Content().Assistant.QuickReplies[1], m.Assistant().Input())

	require.Equal(t, model.EmotionNeutral, m.Assistant().Emotion())
	m.Update(ctrlE)
	require.Equal(t, model.EmotionHappy, m.Assistant().Emotion())
}

func TestChatFocusSwallowsShortcuts(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m.Update(tab)
	require.True(t, m.Assistant().IsOpen())

	// Space, digits and q are text while the input is focused.
	m.Update(keyRunes("q"))
	m.Update(space)
	m.Update(keyRunes("1"))
	require.False(t, m.Navigator().Held())
	require.Equal(t, model.ModuleNone, m.Shell().Selected())
	require.Equal(t, "q 1", m.Assistant().Input())

	m.Update(esc)
	m.Update(keyRunes("1"))
	require.Equal(t, model.ModuleAbout, m.Shell().Selected())
}

func TestChatClicks(t *testing.T) {
	m, h := newTestModel(t, nil)

	h.id = components.ZoneChatLauncher
	m.Update(press(90, 38))
	require.True(t, m.Assistant().IsOpen())

	h.id = components.ZoneChatEmotion
	m.Update(press(90, 2))
	require.Equal(t, model.EmotionHappy, m.Assistant().Emotion())

	h.id = components.QuickZone(0)
	m.Update(press(90, 30))
	require.Equal(t, m.Content().Assistant.QuickReplies[0], m.Assistant().Input())

	h.id = components.ZoneChatSend
	_, cmd := m.Update(press(90, 35))
	require.NotNil(t, cmd)
	require.Equal(t, 1, m.Assistant().PendingCount())

	h.id = components.ZoneChatClose
	m.Update(press(90, 1))
	require.False(t, m.Assistant().IsOpen())
	require.Equal(t, 0, m.Assistant().PendingCount())
}

// =============================================================================
// LIFECYCLE
// =============================================================================

func TestQuitUnmounts(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m.Update(ctrlA)
	m.Assistant().SetInput("bye")
	p, _ := m.Assistant().Send()
	m.Update(esc)   // leave the input
	m.Update(space) // arm

	_, cmd := m.Update(keyRunes("q"))
	require.NotNil(t, cmd)
	require.True(t, m.quitting)
	require.False(t, p.Live())
	require.True(t, m.Subscription().Balanced())
	require.Equal(t, "", m.View())
}

func TestContentReload(t *testing.T) {
	m, _ := newTestModel(t, nil)

	c := content.Default()
	c.Header.Title = "ORBITAL"
	c.Assistant.Replies = []string{"Docked."}
	m.Update(ContentMsg{Update: content.Update{Content: c}})

	require.Equal(t, "ORBITAL", m.Content().Header.Title)
	require.Equal(t, []string{"Docked."}, m.Assistant().Replies())
	require.Len(t, m.Toasts(), 1)
	require.Equal(t, components.ToastKindStatus, m.Toasts()[0].Kind)
}

func TestContentReloadRejected(t *testing.T) {
	m, _ := newTestModel(t, nil)
	before := m.Content()

	m.Update(ContentMsg{Update: content.Update{Err: errors.New("replies must not be empty")}})
	require.Same(t, before, m.Content())
	require.Len(t, m.Toasts(), 1)
	require.Equal(t, components.ToastKindWarning, m.Toasts()[0].Kind)
}

func TestViewLayouts(t *testing.T) {
	m, _ := newTestModel(t, nil)
	require.Contains(t, m.View(), "NEXUS")

	m.Update(space)
	require.Contains(t, m.View(), warp.HintDrag)

	m.Update(space)
	m.Update(ctrlA)
	require.Contains(t, m.View(), "send")

	m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	require.NotEmpty(t, m.View())
}

func TestViewBeforeSize(t *testing.T) {
	m := New(Options{Rand: zeroRand{}})
	require.Equal(t, "Initializing station...", m.View())
}
