// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package assistant

import (
	"math/rand"
	"testing"

	"github.com/jeranaias/nexus-tui/internal/model"
	"github.com/stretchr/testify/require"
)

// fixedRand always returns the same index.
type fixedRand int

func (f fixedRand) Intn(n int) int { return int(f) % n }

func newTestAssistant() *Assistant {
	return New(Options{Rand: fixedRand(0), StartOpen: true})
}

func TestNew_StartsWithGreeting(t *testing.T) {
	a := newTestAssistant()

	require.Equal(t, 1, a.Conversation().MessageCount())
	first := a.Conversation().Messages[0]
	require.Equal(t, model.SenderAssistant, first.Sender)
	require.Equal(t, DefaultGreeting, first.Text)
	require.True(t, a.IsOpen())
	require.Equal(t, model.EmotionNeutral, a.Emotion())
}

func TestSend_AppendsUserThenReply(t *testing.T) {
	a := newTestAssistant()
	a.SetInput("What is this station?")

	p, ok := a.Send()
	require.True(t, ok)
	require.Equal(t, 2, a.Conversation().MessageCount())
	require.Equal(t, "What is this station?", a.Conversation().GetLastMessage().Text)
	require.Equal(t, model.SenderUser, a.Conversation().GetLastMessage().Sender)
	require.Empty(t, a.Input())
	require.Equal(t, model.EmotionThinking, a.Emotion())
	require.Equal(t, 1, a.PendingCount())

	require.True(t, a.Resolve(p))
	require.Equal(t, 3, a.Conversation().MessageCount())
	last := a.Conversation().GetLastMessage()
	require.Equal(t, model.SenderAssistant, last.Sender)
	require.Contains(t, DefaultReplies, last.Text)
	require.Equal(t, model.EmotionHappy, a.Emotion())
	require.Zero(t, a.PendingCount())
}

func TestSend_KeepsRawText(t *testing.T) {
	a := newTestAssistant()
	a.SetInput("  padded  ")
	_, ok := a.Send()
	require.True(t, ok)
	require.Equal(t, "  padded  ", a.Conversation().GetLastMessage().Text)
}

func TestSend_BlankIsNoop(t *testing.T) {
	tests := []string{"", " ", "\t\n", "    "}
	for _, in := range tests {
		a := newTestAssistant()
		a.SetInput(in)
		_, ok := a.Send()
		require.False(t, ok, "input %q", in)
		require.Equal(t, 1, a.Conversation().MessageCount())
		require.Zero(t, a.PendingCount())
		require.Equal(t, model.EmotionNeutral, a.Emotion())
	}
}

func TestResolve_Twice(t *testing.T) {
	a := newTestAssistant()
	a.SetInput("hi")
	p, _ := a.Send()

	require.True(t, a.Resolve(p))
	require.False(t, a.Resolve(p), "a ticket resolves once")
	require.Equal(t, 3, a.Conversation().MessageCount())
}

func TestClose_SuppressesPendingReply(t *testing.T) {
	a := newTestAssistant()
	a.SetInput("hi")
	p, _ := a.Send()

	a.Close()
	require.False(t, p.Live())
	require.False(t, a.Resolve(p))
	require.Equal(t, 2, a.Conversation().MessageCount())
	require.Equal(t, model.EmotionNeutral, a.Emotion())

	// Reopening does not revive the old ticket.
	a.Open()
	require.False(t, a.Resolve(p))
}

func TestUnmount_SuppressesPendingReply(t *testing.T) {
	a := newTestAssistant()
	a.SetInput("one")
	p1, _ := a.Send()
	a.SetInput("two")
	p2, _ := a.Send()

	a.Unmount()
	require.Error(t, p1.Context().Err())
	require.False(t, a.Resolve(p1))
	require.False(t, a.Resolve(p2))
	require.Zero(t, a.PendingCount())
}

func TestSend_AfterCloseGetsFreshLifetime(t *testing.T) {
	a := newTestAssistant()
	a.Close()
	a.Open()
	a.SetInput("again")
	p, ok := a.Send()
	require.True(t, ok)
	require.True(t, a.Resolve(p))
}

func TestRapidSends_ResolveIndependently(t *testing.T) {
	a := newTestAssistant()
	var tickets []Pending
	for _, text := range []string{"a", "b", "c"} {
		a.SetInput(text)
		p, ok := a.Send()
		require.True(t, ok)
		tickets = append(tickets, p)
	}
	require.Equal(t, 3, a.PendingCount())

	for _, p := range tickets {
		require.True(t, a.Resolve(p))
	}
	require.Equal(t, 1+3+3, a.Conversation().MessageCount())
	require.Equal(t, 3, a.Conversation().CountBySender(model.SenderUser))
}

func TestSeededRandom_IsDeterministic(t *testing.T) {
	run := func() []string {
		a := New(Options{Rand: rand.New(rand.NewSource(42))})
		var out []string
		for i := 0; i < 8; i++ {
			a.SetInput("ping")
			p, _ := a.Send()
			a.Resolve(p)
			out = append(out, a.Conversation().GetLastMessage().Text)
		}
		return out
	}
	require.Equal(t, run(), run())
}

func TestQuickReply_FillsInputOnly(t *testing.T) {
	a := newTestAssistant()

	require.True(t, a.QuickReply(1))
	require.Equal(t, "What technologies do you use?", a.Input())
	require.Equal(t, 1, a.Conversation().MessageCount())

	require.False(t, a.QuickReply(3))
	require.False(t, a.QuickReply(-1))
	require.Equal(t, "What technologies do you use?", a.Input())
}

func TestToggleAndCycleEmotion(t *testing.T) {
	a := New(Options{Rand: fixedRand(0)})
	require.False(t, a.IsOpen())
	a.Toggle()
	require.True(t, a.IsOpen())
	a.Toggle()
	require.False(t, a.IsOpen())

	require.Equal(t, model.EmotionHappy, a.CycleEmotion())
	require.Equal(t, model.EmotionThinking, a.CycleEmotion())
	require.Equal(t, model.EmotionExcited, a.CycleEmotion())
	require.Equal(t, model.EmotionNeutral, a.CycleEmotion())
}

func TestSetInput_NormalizesNFC(t *testing.T) {
	a := newTestAssistant()
	a.SetInput("café")
	require.Equal(t, "café", a.Input())
}

func TestSetContent_UsesOverridesAndDefaults(t *testing.T) {
	a := New(Options{
		Rand:     fixedRand(1),
		Greeting: "Welcome aboard.",
		Replies:  []string{"alpha", "beta"},
	})
	require.Equal(t, "Welcome aboard.", a.Conversation().Messages[0].Text)
	require.Equal(t, DefaultQuickReplies, a.QuickReplies())

	a.SetInput("x")
	p, _ := a.Send()
	require.True(t, a.Resolve(p))
	require.Equal(t, "beta", a.Conversation().GetLastMessage().Text)

	a.SetContent("", nil, []string{"only one"})
	require.Equal(t, DefaultReplies, a.Replies())
	require.Equal(t, []string{"only one"}, a.QuickReplies())
}

func TestClear_ResetsLog(t *testing.T) {
	a := newTestAssistant()
	a.SetInput("hi")
	p, _ := a.Send()
	a.Clear()

	require.False(t, a.Resolve(p))
	require.Equal(t, 1, a.Conversation().MessageCount())
	require.Equal(t, DefaultGreeting, a.Conversation().Messages[0].Text)
}
