// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	zone "github.com/lrstanley/bubblezone"
	"github.com/rs/zerolog"

	"github.com/jeranaias/nexus-tui/internal/assistant"
	"github.com/jeranaias/nexus-tui/internal/config"
	"github.com/jeranaias/nexus-tui/internal/content"
	"github.com/jeranaias/nexus-tui/internal/model"
	"github.com/jeranaias/nexus-tui/internal/station"
	"github.com/jeranaias/nexus-tui/internal/ui/components"
	"github.com/jeranaias/nexus-tui/internal/ui/styles"
	"github.com/jeranaias/nexus-tui/internal/warp"
)

// =============================================================================
// APPLICATION MODEL
// =============================================================================

// HitTestFunc reports whether a mouse event falls inside the zone id.
type HitTestFunc func(id string, msg tea.MouseMsg) bool

// Options configures a Model.
type Options struct {
	Config  *config.Config
	Content *content.Content
	// Watcher, when set, feeds content reloads into the model.
	Watcher *content.Watcher
	Zones   *zone.Manager
	Rand    assistant.Rand
	Logger  *zerolog.Logger
	// HitTest overrides zone lookups, for tests.
	HitTest HitTestFunc
}

// Model is the root Bubble Tea model of the station screen.
type Model struct {
	cfg     *config.Config
	theme   *styles.Theme
	keys    KeyMap
	zones   *zone.Manager
	content *content.Content
	watcher *content.Watcher
	hitTest HitTestFunc
	log     zerolog.Logger

	// Interaction state
	assistant *assistant.Assistant
	navigator *warp.Navigator
	hold      *warp.HoldTracker
	sub       *warp.Subscription
	sampler   *warp.Sampler
	shell     *station.Shell

	// Components
	header   *components.Header
	cards    *components.CardDeck
	chat     *components.ChatPanel
	backdrop *components.StationView
	overlay  *components.WarpOverlay
	hint     *components.HintBadge
	footer   *components.Footer
	toasts   *components.ToastStack

	// Animation
	start          time.Time
	elapsed        time.Duration
	framing        bool
	sampleGen      uint64
	overlayOpacity float64
	overlayVel     float64
	overlaySpring  harmonica.Spring

	width    int
	height   int
	quitting bool
}

// New creates the station model.
func New(opts Options) *Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	c := opts.Content
	if c == nil {
		c = content.Default()
	}
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	seed := cfg.Assistant.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(seed))
	}

	mode, err := warp.ParseHoldMode(cfg.Warp.HoldMode)
	if err != nil {
		logger.Warn().Err(err).Msg("falling back to toggle hold mode")
		mode = warp.HoldToggle
	}

	theme := styles.NewTheme(cfg.UI.Theme)
	m := &Model{
		cfg:     cfg,
		theme:   theme,
		keys:    DefaultKeyMap(),
		zones:   opts.Zones,
		content: c,
		watcher: opts.Watcher,
		log:     logger.With().Str("component", "app").Logger(),

		assistant: assistant.New(assistant.Options{
			Greeting:     c.Assistant.Greeting,
			Replies:      c.Assistant.Replies,
			QuickReplies: c.Assistant.QuickReplies,
			Rand:         rng,
			Logger:       &logger,
			StartOpen:    cfg.Assistant.StartOpen,
		}),
		hold:    warp.NewHoldTracker(mode, cfg.ReleaseTimeout()),
		sub:     &warp.Subscription{},
		sampler: &warp.Sampler{},
		shell:   station.NewShell(&logger),

		overlay:       components.NewWarpOverlay(theme),
		hint:          components.NewHintBadge(theme, mode),
		toasts:        components.NewToastStack(3),
		overlaySpring: harmonica.NewSpring(harmonica.FPS(30), 6.0, 1.0),
		start:         time.Now(),
	}
	m.navigator = warp.NewNavigator(m.onWarpSelect, &logger)

	m.header = components.NewHeader(theme, c.Header)
	m.cards = components.NewCardDeck(theme, m.zones, c)
	m.chat = components.NewChatPanel(theme, m.zones, m.assistant, c)
	m.backdrop = components.NewStationView(theme, station.Stars(cfg.UI.Stars, seed))
	m.footer = components.NewFooter(theme, c.Footer)

	m.hitTest = opts.HitTest
	if m.hitTest == nil {
		m.hitTest = m.zoneHit
	}
	return m
}

// zoneHit resolves a zone ID against the last scanned frame.
func (m *Model) zoneHit(id string, msg tea.MouseMsg) bool {
	if m.zones == nil {
		return false
	}
	z := m.zones.Get(id)
	return z != nil && z.InBounds(msg)
}

// onWarpSelect is the navigator's selection callback.
func (m *Model) onWarpSelect(mod model.Module) {
	m.shell.Toggle(mod)
}

// Init starts the animation and content watcher loops.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{waitForContent(m.watcherUpdates())}
	if m.cfg.UI.Animate {
		cmds = append(cmds, m.startFrames())
	}
	if m.assistant.IsOpen() {
		cmds = append(cmds, m.chat.Focus())
	}
	return tea.Batch(cmds...)
}

func (m *Model) watcherUpdates() <-chan content.Update {
	if m.watcher == nil {
		return nil
	}
	return m.watcher.Updates()
}

// Close unmounts the station: pending replies are cancelled and the pointer
// subscription is released.
func (m *Model) Close() {
	m.assistant.Unmount()
	m.hold.Cancel()
	m.navigator.KeyUp()
	m.sub.Release()
	m.sampleGen++
}

// =============================================================================
// ACCESSORS
// =============================================================================

// Assistant returns the chat widget state.
func (m *Model) Assistant() *assistant.Assistant { return m.assistant }

// Navigator returns the warp gesture state.
func (m *Model) Navigator() *warp.Navigator { return m.navigator }

// Shell returns the page shell state.
func (m *Model) Shell() *station.Shell { return m.shell }

// Subscription returns the pointer subscription.
func (m *Model) Subscription() *warp.Subscription { return m.sub }

// Content returns the content in use.
func (m *Model) Content() *content.Content { return m.content }

// Toasts returns the visible notices.
func (m *Model) Toasts() []components.Toast { return m.toasts.Toasts() }
