// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/reflow/wordwrap"

	"github.com/jeranaias/nexus-tui/internal/assistant"
	"github.com/jeranaias/nexus-tui/internal/content"
	"github.com/jeranaias/nexus-tui/internal/model"
	"github.com/jeranaias/nexus-tui/internal/ui/styles"
)

// =============================================================================
// CHAT PANEL
// =============================================================================

// Default chat panel size.
const (
	ChatWidth  = 44
	ChatHeight = 20

	inputCharLimit = 500
)

// ChatPanel renders the assistant: a launcher while closed, the panel with
// the conversation log, quick replies and input while open.
type ChatPanel struct {
	theme     *styles.Theme
	zones     *zone.Manager
	assistant *assistant.Assistant
	content   *content.Content

	input    textinput.Model
	log      viewport.Model
	thinking Spinner

	Width   int
	Height  int
	Elapsed time.Duration
}

// NewChatPanel creates the panel for a. zones may be nil.
func NewChatPanel(theme *styles.Theme, zones *zone.Manager, a *assistant.Assistant, c *content.Content) *ChatPanel {
	ti := textinput.New()
	ti.Placeholder = "Ask the station..."
	ti.Prompt = "> "
	ti.CharLimit = inputCharLimit
	ti.PromptStyle = lipgloss.NewStyle().Foreground(styles.Primary)

	p := &ChatPanel{
		theme:     theme,
		zones:     zones,
		assistant: a,
		content:   c,
		input:     ti,
		log:       viewport.New(ChatWidth, ChatHeight),
		thinking:  NewThinkingSpinner(c.Emotion(model.EmotionThinking).Phrase),
	}
	p.SetSize(ChatWidth, ChatHeight)
	return p
}

// SetContent swaps emotion labels after a content reload.
func (p *ChatPanel) SetContent(c *content.Content) tea.Cmd {
	p.content = c
	p.thinking.SetMessage(c.Emotion(model.EmotionThinking).Phrase)
	return p.Refresh()
}

// SetSize sets the outer panel size.
func (p *ChatPanel) SetSize(width, height int) {
	p.Width = max(width, 24)
	p.Height = max(height, 10)
	inner := p.innerWidth()
	p.input.Width = inner - lipgloss.Width(p.input.Prompt) - lipgloss.Width(p.sendButton()) - 2
	p.log.Width = inner
	p.layoutLog()
}

func (p *ChatPanel) innerWidth() int {
	return p.Width - p.theme.ChatPanel.GetHorizontalFrameSize()
}

// logHeight is what is left after the header, quick replies and input rows.
func (p *ChatPanel) logHeight() int {
	fixed := p.theme.ChatPanel.GetVerticalFrameSize() + 2 + len(p.assistant.QuickReplies()) + 3
	return max(p.Height-fixed, 3)
}

// =============================================================================
// FOCUS
// =============================================================================

// Focus gives the text input the keyboard.
func (p *ChatPanel) Focus() tea.Cmd {
	return p.input.Focus()
}

// Blur releases the keyboard.
func (p *ChatPanel) Blur() {
	p.input.Blur()
}

// Focused reports whether the input has the keyboard.
func (p *ChatPanel) Focused() bool {
	return p.input.Focused()
}

// =============================================================================
// UPDATE
// =============================================================================

// Update feeds editing keys to the input and mirrors the text into the
// assistant, advances the thinking spinner and scrolls the log.
func (p *ChatPanel) Update(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !p.input.Focused() {
			return nil
		}
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		cmds = append(cmds, cmd)
		p.assistant.SetInput(p.input.Value())
		if p.input.Value() != p.assistant.Input() {
			p.input.SetValue(p.assistant.Input())
		}
	case tea.MouseMsg:
		var cmd tea.Cmd
		p.log, cmd = p.log.Update(msg)
		cmds = append(cmds, cmd)
	default:
		var cmd tea.Cmd
		p.thinking, cmd = p.thinking.Update(msg)
		cmds = append(cmds, cmd)
		p.input, cmd = p.input.Update(msg)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// Refresh pulls input, conversation and emotion from the assistant. It
// returns the spinner tick when a reply just became pending.
func (p *ChatPanel) Refresh() tea.Cmd {
	if p.input.Value() != p.assistant.Input() {
		p.input.SetValue(p.assistant.Input())
		p.input.CursorEnd()
	}

	var cmd tea.Cmd
	if p.assistant.PendingCount() > 0 {
		cmd = p.thinking.Start()
	} else {
		p.thinking.Stop()
	}
	p.layoutLog()
	return cmd
}

func (p *ChatPanel) layoutLog() {
	p.log.Height = p.logHeight()
	p.log.SetContent(p.renderLog())
	p.log.GotoBottom()
}

// =============================================================================
// VIEW
// =============================================================================

// View renders the launcher or the open panel.
func (p *ChatPanel) View() string {
	if !p.assistant.IsOpen() {
		return p.launcher()
	}

	inner := p.innerWidth()
	sep := lipgloss.NewStyle().Foreground(styles.Overlay).Render(strings.Repeat("─", inner))
	body := lipgloss.JoinVertical(lipgloss.Left,
		p.header(inner),
		sep,
		p.log.View(),
		p.quickReplies(inner),
		p.theme.InputBox.Width(inner).Render(p.input.View()+" "+p.sendButton()),
	)
	return p.theme.ChatPanel.Width(p.Width - p.theme.ChatPanel.GetHorizontalBorderSize()).Render(body)
}

func (p *ChatPanel) launcher() string {
	frames := styles.PulseSpinner.Frames
	i := int(p.Elapsed/styles.PulseSpinner.Duration()) % len(frames)
	label := frames[i] + " NEXUS AI"
	return mark(p.zones, ZoneChatLauncher, p.theme.ChatLauncher.Render(label))
}

func (p *ChatPanel) header(width int) string {
	e := p.assistant.Emotion()
	info := p.content.Emotion(e)
	color := lipgloss.NewStyle().Foreground(styles.EmotionColor(e))

	avatar := color.Bold(true).Render(info.Glyph)
	dot := mark(p.zones, ZoneChatEmotion, color.Render("●"))
	title := p.theme.ChatTitle.Render(model.SenderAssistant.DisplayName())
	phrase := p.theme.Timestamp.Render(info.Phrase)
	closeBtn := mark(p.zones, ZoneChatClose, p.theme.Timestamp.Render("[x]"))

	left := avatar + dot + " " + title + " " + phrase
	gap := width - lipgloss.Width(left) - lipgloss.Width(closeBtn)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + closeBtn
}

func (p *ChatPanel) quickReplies(width int) string {
	quick := p.assistant.QuickReplies()
	rows := make([]string, len(quick))
	for i, q := range quick {
		key := p.theme.HintKey.Render("alt+" + strconv.Itoa(i+1))
		line := p.theme.QuickReply.Render(truncate(q, width-lipgloss.Width(key)-3))
		rows[i] = mark(p.zones, QuickZone(i), line+" "+key)
	}
	return strings.Join(rows, "\n")
}

func (p *ChatPanel) sendButton() string {
	if strings.TrimSpace(p.assistant.Input()) == "" {
		return mark(p.zones, ZoneChatSend, p.theme.ButtonDisabled.Render("send"))
	}
	return mark(p.zones, ZoneChatSend, p.theme.Button.Render("send"))
}

// renderLog lays out the bubbles: user on the right, assistant on the left.
func (p *ChatPanel) renderLog() string {
	width := p.log.Width
	bubbleMax := width * 3 / 4
	if bubbleMax < 8 {
		bubbleMax = width
	}

	var blocks []string
	for _, msg := range p.assistant.Conversation().GetHistory() {
		style := p.theme.AssistantBubble
		align := lipgloss.Left
		if msg.IsUser() {
			style = p.theme.UserBubble
			align = lipgloss.Right
		}
		text := wordwrap.String(msg.Text, bubbleMax-style.GetHorizontalFrameSize())
		bubble := style.Render(text)
		stamp := p.theme.Timestamp.Render(msg.Timestamp.Format("15:04"))
		block := lipgloss.JoinVertical(align, bubble, stamp)
		blocks = append(blocks, lipgloss.PlaceHorizontal(width, align, block))
	}
	if p.thinking.IsActive() {
		blocks = append(blocks, p.thinking.View())
	}
	return strings.Join(blocks, "\n")
}
