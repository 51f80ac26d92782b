// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// chat.go - Line-mode conversation with the station AI.
//
// Command: chat
// Short:   Talk to the station AI without the full-screen station
//
// The REPL shares the assistant with the TUI: same canned replies, same
// reply delay, same mood cycle. Ctrl+C while the AI is thinking cancels the
// pending reply; at the prompt it leaves the chat.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/jeranaias/nexus-tui/internal/assistant"
	"github.com/jeranaias/nexus-tui/internal/config"
	"github.com/jeranaias/nexus-tui/internal/content"
	"github.com/jeranaias/nexus-tui/internal/model"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/peterh/liner"
	"github.com/rs/zerolog"
)

// =============================================================================
// INPUT
// =============================================================================

// lineReader is satisfied by *liner.State.
type lineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
	Close() error
}

// scanReader reads plain lines when stdin is not a terminal.
type scanReader struct {
	sc *bufio.Scanner
}

func newScanReader(r io.Reader) *scanReader {
	return &scanReader{sc: bufio.NewScanner(r)}
}

func (s *scanReader) Prompt(string) (string, error) {
	if !s.sc.Scan() {
		if err := s.sc.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.sc.Text(), nil
}

func (s *scanReader) AppendHistory(string) {}

func (s *scanReader) Close() error { return nil }

// =============================================================================
// SESSION STATE
// =============================================================================

// ChatOptions configures a ChatSession.
type ChatOptions struct {
	Config  *config.Config
	Content *content.Content
	Out     io.Writer
	Rand    assistant.Rand
	Logger  *zerolog.Logger

	// Delay overrides assistant.ReplyDelay when positive.
	Delay time.Duration

	// Width is the wrap width; zero uses the terminal width.
	Width int
}

// ChatSession holds the state for an interactive chat session.
type ChatSession struct {
	assistant *assistant.Assistant
	content   *content.Content
	out       io.Writer
	delay     time.Duration
	width     int
	log       zerolog.Logger

	// replies carries fired timers back to the session goroutine.
	replies chan assistant.Pending

	// interrupt cancels a reply that is still thinking.
	interrupt <-chan os.Signal

	start time.Time
}

// NewChatSession creates a new chat session with the panel already open.
func NewChatSession(opts ChatOptions) *ChatSession {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	c := opts.Content
	if c == nil {
		c = content.Default()
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	width := opts.Width
	if width <= 0 {
		width = GetTerminalWidth() - 4
		if width > 80 {
			width = 80
		}
	}
	delay := opts.Delay
	if delay <= 0 {
		delay = assistant.ReplyDelay
	}

	rng := opts.Rand
	if rng == nil && cfg.Assistant.Seed != 0 {
		rng = rand.New(rand.NewSource(cfg.Assistant.Seed))
	}

	a := assistant.New(assistant.Options{
		Greeting:     c.Assistant.Greeting,
		Replies:      c.Assistant.Replies,
		QuickReplies: c.Assistant.QuickReplies,
		Rand:         rng,
		Logger:       &logger,
		StartOpen:    true,
	})

	return &ChatSession{
		assistant: a,
		content:   c,
		out:       out,
		delay:     delay,
		width:     width,
		log:       logger.With().Str("component", "chat").Logger(),
		replies:   make(chan assistant.Pending, 8),
		start:     time.Now(),
	}
}

// Assistant returns the session's assistant.
func (s *ChatSession) Assistant() *assistant.Assistant { return s.assistant }

// =============================================================================
// CHAT HANDLER
// =============================================================================

// HandleChat runs the "chat" command on the real terminal.
func HandleChat(cfg *config.Config, c *content.Content, logger *zerolog.Logger) error {
	session := NewChatSession(ChatOptions{
		Config:  cfg,
		Content: c,
		Out:     os.Stdout,
		Logger:  logger,
	})

	var r lineReader
	if IsTTY() {
		line := liner.NewLiner()
		line.SetCtrlCAborts(true)
		r = line
	} else {
		r = newScanReader(os.Stdin)
	}
	defer r.Close()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)
	defer signal.Stop(sigChan)
	session.interrupt = sigChan

	return session.Run(r)
}

// Run is the REPL loop. It returns nil on /quit, Ctrl+C at the prompt or
// end of input.
func (s *ChatSession) Run(r lineReader) error {
	s.printWelcome()

	for {
		input, err := r.Prompt(PromptStyle.Render("nexus> "))
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				fmt.Fprintln(s.out)
				s.printExitSummary()
				return nil
			}
			return err
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		r.AppendHistory(input)

		if !s.Handle(input) {
			s.printExitSummary()
			return nil
		}
	}
}

// Handle processes one line of input. It returns false when the session
// should end.
func (s *ChatSession) Handle(input string) bool {
	input = strings.TrimSpace(input)
	if input == "" {
		return true
	}

	if strings.HasPrefix(input, "/") {
		cont, err := s.handleSlashCommand(input)
		if err != nil {
			fmt.Fprintf(s.out, "%s %v\n", ErrorStyle.Render("[Error]"), err)
		}
		return cont
	}

	if strings.EqualFold(input, "exit") || strings.EqualFold(input, "quit") {
		return false
	}

	s.assistant.SetInput(input)
	s.send()
	return true
}

// =============================================================================
// MESSAGE PROCESSING
// =============================================================================

// send submits the input buffer and blocks until the reply lands or is
// cancelled.
func (s *ChatSession) send() {
	p, ok := s.assistant.Send()
	if !ok {
		return
	}

	time.AfterFunc(s.delay, func() {
		select {
		case s.replies <- p:
		default:
			// session gone; the ticket is dead anyway
		}
	})

	fmt.Fprintln(s.out, s.emotionLine())
	s.await(p)
}

func (s *ChatSession) await(p assistant.Pending) {
	for {
		select {
		case r := <-s.replies:
			if s.assistant.Resolve(r) {
				s.printMessage(s.assistant.Conversation().GetLastMessage())
			}
			if r.ID == p.ID {
				return
			}
		case <-s.interrupt:
			s.assistant.Unmount()
			fmt.Fprintln(s.out, WarningStyle.Render("[Cancelled]"))
			return
		}
	}
}

// =============================================================================
// SLASH COMMANDS
// =============================================================================

// handleSlashCommand processes slash commands.
// Returns (shouldContinue, error) where shouldContinue=false means exit.
func (s *ChatSession) handleSlashCommand(cmd string) (bool, error) {
	parts := strings.Fields(cmd)
	if len(parts) == 0 {
		return true, nil
	}

	command := strings.ToLower(parts[0])
	args := parts[1:]

	switch command {
	case "/help", "/h", "/?", "/":
		s.printHelp()
		return true, nil

	case "/mood", "/m":
		s.assistant.CycleEmotion()
		fmt.Fprintln(s.out, s.emotionLine())
		return true, nil

	case "/quick":
		return true, s.handleQuickCommand(args)

	case "/clear", "/c":
		s.assistant.Clear()
		fmt.Fprintln(s.out, DimStyle.Render("[Conversation cleared]"))
		s.printMessage(s.assistant.Conversation().GetLastMessage())
		return true, nil

	case "/history":
		s.printHistory()
		return true, nil

	case "/quit", "/q", "/exit":
		return false, nil

	default:
		return true, fmt.Errorf("unknown command: %s (type /help for commands)", command)
	}
}

// handleQuickCommand lists the quick replies, or sends the 1-based one given.
func (s *ChatSession) handleQuickCommand(args []string) error {
	quick := s.assistant.QuickReplies()
	if len(args) == 0 {
		for i, q := range quick {
			fmt.Fprintf(s.out, "  %s  %s\n", CommandStyle.Render(strconv.Itoa(i+1)), q)
		}
		return nil
	}

	n, err := strconv.Atoi(args[0])
	if err != nil || !s.assistant.QuickReply(n-1) {
		return fmt.Errorf("no quick reply %q (1-%d)", args[0], len(quick))
	}
	fmt.Fprintf(s.out, "%s %s\n", UserStyle.Render("You:"), s.assistant.Input())
	s.send()
	return nil
}

// =============================================================================
// DISPLAY FUNCTIONS
// =============================================================================

func (s *ChatSession) emotionLine() string {
	e := s.assistant.Emotion()
	info := s.content.Emotion(e)
	return emotionStyle(e).Render(info.Glyph) + " " + info.Phrase
}

func (s *ChatSession) printMessage(m *model.Message) {
	if m == nil {
		return
	}
	name := UserStyle.Render(m.Sender.DisplayName())
	if !m.IsUser() {
		name = emotionStyle(s.assistant.Emotion()).Render(m.Sender.DisplayName())
	}
	fmt.Fprintf(s.out, "%s %s\n", name, DimStyle.Render(m.Timestamp.Format("15:04")))
	fmt.Fprintln(s.out, indent.String(wordwrap.String(m.Text, s.width-2), 2))
}

func (s *ChatSession) printWelcome() {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, TitleStyle.Render(s.content.Header.Title+" station AI"))
	fmt.Fprintln(s.out, RenderSeparator(30))
	fmt.Fprintln(s.out, DimStyle.Render("Type a message and press Enter. Commands: /help, /quit"))
	fmt.Fprintln(s.out)
	s.printMessage(s.assistant.Conversation().GetLastMessage())
}

func (s *ChatSession) printHelp() {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, TitleStyle.Render("Available Commands"))
	fmt.Fprintln(s.out, RenderSeparator(20))

	commands := []struct {
		cmd  string
		desc string
	}{
		{"/help, /h", "Show this help"},
		{"/mood, /m", "Cycle the AI's mood"},
		{"/quick [N]", "List quick replies or send quick reply N"},
		{"/clear, /c", "Start a new conversation"},
		{"/history", "Show the conversation"},
		{"/quit, /q", "Exit chat"},
	}
	for _, c := range commands {
		fmt.Fprintf(s.out, "  %s  %s\n",
			CommandStyle.Render(fmt.Sprintf("%-12s", c.cmd)),
			DimStyle.Render(c.desc))
	}

	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, DimStyle.Render("Tip: Ctrl+C cancels a reply that is still thinking, Ctrl+D exits"))
	fmt.Fprintln(s.out)
}

func (s *ChatSession) printHistory() {
	for _, m := range s.assistant.Conversation().GetHistory() {
		s.printMessage(m)
	}
}

func (s *ChatSession) printExitSummary() {
	conv := s.assistant.Conversation()
	elapsed := time.Since(s.start).Round(time.Second)
	fmt.Fprintf(s.out, "%s %d sent, %d received in %s\n",
		DimStyle.Render("Session:"),
		conv.CountBySender(model.SenderUser),
		conv.CountBySender(model.SenderAssistant),
		elapsed)
	s.log.Debug().Int("messages", conv.MessageCount()).Dur("elapsed", elapsed).Msg("chat ended")
}
