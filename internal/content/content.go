// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jeranaias/nexus-tui/internal/model"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// Validation errors.
var (
	ErrEmptyReplies  = errors.New("assistant needs at least one reply")
	ErrMissingModule = errors.New("missing module card")
	ErrUnknownModule = errors.New("unknown module card")
)

// Project statuses with dedicated colours.
const (
	StatusActive = "Active"
	StatusBeta   = "Beta"
	StatusLive   = "Live"
)

// Content is the full portfolio text.
type Content struct {
	Header    Header    `yaml:"header"`
	Cards     []Card    `yaml:"cards"`
	Footer    Footer    `yaml:"footer"`
	Assistant Assistant `yaml:"assistant"`
}

// Header is the title block.
type Header struct {
	Badge    string `yaml:"badge"`
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
}

// Card is one module card. Only the section matching the module is used.
type Card struct {
	Module   model.Module `yaml:"module"`
	Code     string       `yaml:"code"`
	Icon     string       `yaml:"icon"`
	Lines    []string     `yaml:"lines,omitempty"`
	Tags     []string     `yaml:"tags,omitempty"`
	Projects []Project    `yaml:"projects,omitempty"`
	Skills   []SkillGroup `yaml:"skills,omitempty"`
}

// Project is an entry on the projects card.
type Project struct {
	Title  string   `yaml:"title"`
	Tech   []string `yaml:"tech"`
	Status string   `yaml:"status"`
}

// SkillGroup is a category on the skills card.
type SkillGroup struct {
	Category string   `yaml:"category"`
	Items    []string `yaml:"items"`
}

// Footer is the bottom bar.
type Footer struct {
	Links  []Link `yaml:"links"`
	Status string `yaml:"status"`
}

// Link is a footer link.
type Link struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

// Assistant holds the canned chat lines.
type Assistant struct {
	Greeting     string                        `yaml:"greeting"`
	Replies      []string                      `yaml:"replies"`
	QuickReplies []string                      `yaml:"quick_replies"`
	Emotions     map[model.Emotion]EmotionInfo `yaml:"emotions"`
}

// EmotionInfo is the presentation of one emotion.
type EmotionInfo struct {
	Glyph  string `yaml:"glyph"`
	Phrase string `yaml:"phrase"`
}

// =============================================================================
// LOADING
// =============================================================================

// Default returns a fresh copy of the embedded content.
func Default() *Content {
	c := &Content{}
	if err := yaml.Unmarshal(defaultYAML, c); err != nil {
		panic(fmt.Sprintf("content: embedded default.yaml is invalid: %v", err))
	}
	return c
}

// DefaultYAML returns the embedded default file.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultYAML))
	copy(out, defaultYAML)
	return out
}

// Parse decodes an override document on top of the defaults and validates
// the result. Sections absent from data keep their default values.
func Parse(data []byte) (*Content, error) {
	c := Default()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("failed to parse content: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Load reads an override file. An empty path returns the defaults.
func Load(path string) (*Content, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Validate checks that every module has a card and that the assistant can
// reply.
func (c *Content) Validate() error {
	seen := make(map[model.Module]bool, len(c.Cards))
	for _, card := range c.Cards {
		if !card.Module.Valid() {
			return fmt.Errorf("%w: %q", ErrUnknownModule, string(card.Module))
		}
		seen[card.Module] = true
	}
	for _, m := range model.Modules() {
		if !seen[m] {
			return fmt.Errorf("%w: %s", ErrMissingModule, m)
		}
	}

	replies := 0
	for _, r := range c.Assistant.Replies {
		if strings.TrimSpace(r) != "" {
			replies++
		}
	}
	if replies == 0 {
		return ErrEmptyReplies
	}

	for e := range c.Assistant.Emotions {
		if !e.Valid() {
			return fmt.Errorf("assistant emotions: unknown emotion %q", string(e))
		}
	}
	return nil
}

// =============================================================================
// ACCESSORS
// =============================================================================

// Card returns the card for m.
func (c *Content) Card(m model.Module) (Card, bool) {
	for _, card := range c.Cards {
		if card.Module == m {
			return card, true
		}
	}
	return Card{}, false
}

// Emotion returns the presentation of e, falling back to the emotion name.
func (c *Content) Emotion(e model.Emotion) EmotionInfo {
	if info, ok := c.Assistant.Emotions[e]; ok {
		return info
	}
	return EmotionInfo{Glyph: "[" + e.String() + "]", Phrase: e.String()}
}

// AboutMarkdown renders the about card body as markdown.
func (card Card) AboutMarkdown() string {
	var sb strings.Builder
	for _, line := range card.Lines {
		sb.WriteString(line)
		sb.WriteString("\n\n")
	}
	if len(card.Tags) > 0 {
		tags := make([]string, len(card.Tags))
		for i, t := range card.Tags {
			tags[i] = "`" + t + "`"
		}
		sb.WriteString(strings.Join(tags, " "))
		sb.WriteString("\n")
	}
	return sb.String()
}
