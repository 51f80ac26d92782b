// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/jeranaias/nexus-tui/internal/content"
	"github.com/jeranaias/nexus-tui/internal/model"
	"github.com/jeranaias/nexus-tui/internal/ui/styles"
)

// =============================================================================
// CARD DECK - the three module cards
// =============================================================================

// CardDeck renders the about, projects and skills cards. Only the selected
// card shows its body; the others show a one-line summary.
type CardDeck struct {
	theme   *styles.Theme
	zones   *zone.Manager
	content *content.Content

	Width    int
	Selected model.Module
	Hover    model.Module

	// glamour renderers are costly to build, so keep one per wrap width.
	renderers map[int]*glamour.TermRenderer
}

// NewCardDeck creates a card deck. zones may be nil.
func NewCardDeck(theme *styles.Theme, zones *zone.Manager, c *content.Content) *CardDeck {
	return &CardDeck{
		theme:     theme,
		zones:     zones,
		content:   c,
		Width:     80,
		renderers: make(map[int]*glamour.TermRenderer),
	}
}

// SetContent swaps the card content.
func (d *CardDeck) SetContent(c *content.Content) {
	d.content = c
}

// SetWidth updates the available width.
func (d *CardDeck) SetWidth(width int) {
	d.Width = width
}

// View renders the deck side by side when wide enough, stacked otherwise.
func (d *CardDeck) View() string {
	mods := model.Modules()
	if d.Width >= 100 {
		w := d.Width/len(mods) - 1
		cols := make([]string, len(mods))
		for i, m := range mods {
			cols[i] = d.card(m, w)
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, interleave(cols, " ")...)
	}

	rows := make([]string, len(mods))
	for i, m := range mods {
		rows[i] = d.card(m, d.Width)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func interleave(items []string, sep string) []string {
	out := make([]string, 0, len(items)*2)
	for i, it := range items {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, it)
	}
	return out
}

// card renders one module card at the given outer width.
func (d *CardDeck) card(m model.Module, width int) string {
	card, ok := d.content.Card(m)
	if !ok {
		return ""
	}
	selected := d.Selected == m
	style := d.theme.CardBorder(m, selected || d.Hover == m)
	inner := width - style.GetHorizontalFrameSize()
	if inner < 10 {
		inner = 10
	}

	accent := lipgloss.NewStyle().Foreground(styles.ModuleColor(m)).Bold(true)
	title := accent.Render(card.Icon+" "+m.Title()) + "  " + d.theme.CardCode.Render(card.Code)

	var body string
	if selected {
		body = d.body(m, card, inner)
	} else {
		body = d.theme.CardCode.Render(truncate(summary(card), inner))
	}

	rendered := style.Width(width - style.GetHorizontalBorderSize()).Render(lipgloss.JoinVertical(lipgloss.Left, title, body))
	return mark(d.zones, CardZone(m), rendered)
}

func (d *CardDeck) body(m model.Module, card content.Card, width int) string {
	switch m {
	case model.ModuleAbout:
		return d.markdown(card.AboutMarkdown(), width)
	case model.ModuleProjects:
		return d.projects(card, width)
	case model.ModuleSkills:
		return d.skills(card, width)
	}
	return ""
}

// markdown renders md with glamour, falling back to the raw text.
func (d *CardDeck) markdown(md string, width int) string {
	r, ok := d.renderers[width]
	if !ok {
		style := "light"
		if d.theme.IsDark {
			style = "dark"
		}
		var err error
		r, err = glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return d.theme.CardBody.Render(md)
		}
		d.renderers[width] = r
	}
	out, err := r.Render(md)
	if err != nil {
		return d.theme.CardBody.Render(md)
	}
	return strings.Trim(out, "\n")
}

func (d *CardDeck) projects(card content.Card, width int) string {
	lines := make([]string, 0, len(card.Projects)*2)
	for _, p := range card.Projects {
		status := lipgloss.NewStyle().Foreground(styles.StatusColor(p.Status)).Render("● " + p.Status)
		lines = append(lines,
			d.theme.CardTitle.Render(p.Title)+"  "+status,
			d.theme.CardCode.Render(truncate(strings.Join(p.Tech, " · "), width)),
		)
	}
	return d.theme.CardBody.Render(strings.Join(lines, "\n"))
}

func (d *CardDeck) skills(card content.Card, width int) string {
	lines := make([]string, 0, len(card.Skills))
	for _, g := range card.Skills {
		label := d.theme.CardTitle.Render(g.Category + ":")
		items := truncate(strings.Join(g.Items, ", "), width-len(g.Category)-2)
		lines = append(lines, label+" "+d.theme.Tag.UnsetPadding().Render(items))
	}
	return d.theme.CardBody.Render(strings.Join(lines, "\n"))
}

// summary is the collapsed one-liner of a card.
func summary(card content.Card) string {
	switch {
	case len(card.Lines) > 0:
		return card.Lines[0]
	case len(card.Projects) > 0:
		names := make([]string, len(card.Projects))
		for i, p := range card.Projects {
			names[i] = p.Title
		}
		return strings.Join(names, " · ")
	case len(card.Skills) > 0:
		names := make([]string, len(card.Skills))
		for i, g := range card.Skills {
			names[i] = g.Category
		}
		return strings.Join(names, " · ")
	}
	return ""
}
