// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package assistant

import (
	"math/rand"
	"strings"
	"time"

	"github.com/jeranaias/nexus-tui/internal/model"
	"github.com/rs/zerolog"
	"golang.org/x/text/unicode/norm"
)

// ReplyDelay is how long the assistant "thinks" before a reply appears.
const ReplyDelay = 1500 * time.Millisecond

// DefaultGreeting is the first entry of every conversation.
const DefaultGreeting = "Hi! I'm the NEXUS station AI. How can I help?"

// DefaultReplies is the canned reply set.
var DefaultReplies = []string{
	"Great question! Let me think...",
	"According to station data, that is possible.",
	"Interesting thought! Let me elaborate...",
	"My sensors show a positive result.",
	"System is processing the request... Done!",
	"That reminds me of something that happened in orbit...",
}

// DefaultQuickReplies are the preset prompts offered under the log.
var DefaultQuickReplies = []string{
	"Tell me about your projects",
	"What technologies do you use?",
	"How can I get in touch?",
}

// Rand is the random source used to pick replies.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Options configures an Assistant. Zero values fall back to the defaults.
type Options struct {
	Greeting     string
	Replies      []string
	QuickReplies []string
	Rand         Rand
	Logger       *zerolog.Logger
	StartOpen    bool
}

// Assistant is the chat widget state.
type Assistant struct {
	open    bool
	emotion model.Emotion
	input   string
	conv    *model.Conversation

	greeting string
	replies  []string
	quick    []string

	rng     Rand
	life    *lifetime
	pending map[uint64]struct{}
	nextID  uint64
	log     zerolog.Logger
}

// New creates an assistant with a fresh conversation holding the greeting.
func New(opts Options) *Assistant {
	a := &Assistant{
		open:    opts.StartOpen,
		emotion: model.EmotionNeutral,
		rng:     opts.Rand,
		life:    newLifetime(),
		pending: make(map[uint64]struct{}),
		log:     zerolog.Nop(),
	}
	if opts.Logger != nil {
		a.log = opts.Logger.With().Str("component", "assistant").Logger()
	}
	if a.rng == nil {
		a.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	a.SetContent(opts.Greeting, opts.Replies, opts.QuickReplies)
	a.conv = a.freshConversation()
	return a
}

func (a *Assistant) freshConversation() *model.Conversation {
	conv := model.NewConversation()
	conv.AddAssistantMessage(a.greeting)
	return conv
}

// SetContent swaps the greeting, reply set and quick replies. Empty values
// keep the built-in defaults. The existing log is untouched.
func (a *Assistant) SetContent(greeting string, replies, quick []string) {
	a.greeting = greeting
	if strings.TrimSpace(a.greeting) == "" {
		a.greeting = DefaultGreeting
	}
	a.replies = cloneOr(replies, DefaultReplies)
	a.quick = cloneOr(quick, DefaultQuickReplies)
}

func cloneOr(s, fallback []string) []string {
	if len(s) == 0 {
		s = fallback
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}

// =============================================================================
// OPEN / CLOSE
// =============================================================================

// IsOpen reports whether the panel is expanded.
func (a *Assistant) IsOpen() bool { return a.open }

// Toggle flips the open flag. Closing cancels pending replies.
func (a *Assistant) Toggle() {
	if a.open {
		a.Close()
		return
	}
	a.Open()
}

// Open expands the panel.
func (a *Assistant) Open() {
	a.open = true
}

// Close collapses the panel and invalidates all pending replies.
func (a *Assistant) Close() {
	a.open = false
	a.cancelPending("closed")
}

// Unmount invalidates all pending replies. Resolutions arriving later are
// ignored.
func (a *Assistant) Unmount() {
	a.cancelPending("unmounted")
}

// Clear starts a new conversation with only the greeting.
func (a *Assistant) Clear() {
	a.cancelPending("cleared")
	a.conv = a.freshConversation()
	a.input = ""
	a.emotion = model.EmotionNeutral
}

func (a *Assistant) cancelPending(reason string) {
	if n := len(a.pending); n > 0 {
		a.log.Debug().Int("pending", n).Str("reason", reason).Msg("replies cancelled")
	}
	a.life.reset()
	a.pending = make(map[uint64]struct{})
	// A reply that will never arrive should not leave the indicator thinking.
	if a.emotion == model.EmotionThinking {
		a.emotion = model.EmotionNeutral
	}
}

// =============================================================================
// EMOTION
// =============================================================================

// Emotion returns the indicator state.
func (a *Assistant) Emotion() model.Emotion { return a.emotion }

// CycleEmotion advances the indicator to the next emotion.
func (a *Assistant) CycleEmotion() model.Emotion {
	a.emotion = a.emotion.Cycle()
	return a.emotion
}

// =============================================================================
// INPUT
// =============================================================================

// Input returns the input buffer.
func (a *Assistant) Input() string { return a.input }

// SetInput replaces the input buffer. Text is normalized to NFC.
func (a *Assistant) SetInput(s string) {
	a.input = norm.NFC.String(s)
}

// QuickReplies returns the preset prompts.
func (a *Assistant) QuickReplies() []string {
	out := make([]string, len(a.quick))
	copy(out, a.quick)
	return out
}

// QuickReply fills the input with preset i without sending.
// Out of range indexes are ignored.
func (a *Assistant) QuickReply(i int) bool {
	if i < 0 || i >= len(a.quick) {
		return false
	}
	a.input = a.quick[i]
	return true
}

// =============================================================================
// SEND / RESOLVE
// =============================================================================

// Send appends the input as a user entry, clears the input and schedules one
// reply. Blank input is a no-op and returns false.
func (a *Assistant) Send() (Pending, bool) {
	if strings.TrimSpace(a.input) == "" {
		return Pending{}, false
	}

	a.conv.AddUserMessage(a.input)
	a.input = ""
	a.emotion = model.EmotionThinking

	a.nextID++
	p := Pending{ID: a.nextID, ctx: a.life.current()}
	a.pending[p.ID] = struct{}{}

	a.log.Debug().Uint64("ticket", p.ID).Int("pending", len(a.pending)).Msg("reply scheduled")
	return p, true
}

// Resolve appends a reply for p if the ticket is still live. It returns false
// when the reply was suppressed.
func (a *Assistant) Resolve(p Pending) bool {
	if _, ok := a.pending[p.ID]; !ok || !p.Live() {
		a.log.Debug().Uint64("ticket", p.ID).Msg("reply suppressed")
		return false
	}
	delete(a.pending, p.ID)

	if len(a.replies) == 0 {
		return false
	}
	reply := a.replies[a.rng.Intn(len(a.replies))]
	a.conv.AddAssistantMessage(reply)
	a.emotion = model.EmotionHappy

	a.log.Debug().Uint64("ticket", p.ID).Msg("reply resolved")
	return true
}

// PendingCount returns the number of outstanding replies.
func (a *Assistant) PendingCount() int { return len(a.pending) }

// Replies returns the reply set.
func (a *Assistant) Replies() []string {
	out := make([]string, len(a.replies))
	copy(out, a.replies)
	return out
}

// Conversation returns the log.
func (a *Assistant) Conversation() *model.Conversation { return a.conv }
