// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// =============================================================================
// CELL CANVAS
// =============================================================================
// Lip Gloss lays out blocks; the starfield and the warp grid need free
// placement of single cells, so they draw on a Canvas and render it once.

// Cell is one terminal cell. A zero Ch marks the trailing half of a wide rune.
type Cell struct {
	Ch    rune
	FG    string
	Bold  bool
	Faint bool
}

// Canvas is a fixed-size grid of cells.
type Canvas struct {
	W, H  int
	cells []Cell
}

// NewCanvas creates a blank canvas.
func NewCanvas(w, h int) *Canvas {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	c := &Canvas{W: w, H: h, cells: make([]Cell, w*h)}
	for i := range c.cells {
		c.cells[i].Ch = ' '
	}
	return c
}

func (c *Canvas) in(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.W && y < c.H
}

// At returns the cell at (x, y). Out of range returns a blank cell.
func (c *Canvas) At(x, y int) Cell {
	if !c.in(x, y) {
		return Cell{Ch: ' '}
	}
	return c.cells[y*c.W+x]
}

// Set writes a cell. Out of range writes are dropped.
func (c *Canvas) Set(x, y int, cell Cell) {
	if !c.in(x, y) {
		return
	}
	c.cells[y*c.W+x] = cell
}

// Text writes s starting at (x, y) and returns the number of columns used.
func (c *Canvas) Text(x, y int, s string, style Cell) int {
	col := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col+w > c.W {
			break
		}
		cell := style
		cell.Ch = r
		c.Set(col, y, cell)
		if w == 2 {
			c.Set(col+1, y, Cell{})
		}
		col += w
	}
	return col - x
}

// CenterText writes s centred on row y.
func (c *Canvas) CenterText(y int, s string, style Cell) {
	x := (c.W - runewidth.StringWidth(s)) / 2
	if x < 0 {
		x = 0
	}
	c.Text(x, y, s, style)
}

// Frame draws a box outline.
func (c *Canvas) Frame(x, y, w, h int, border lipgloss.Border, style Cell) {
	if w < 2 || h < 2 {
		return
	}
	put := func(px, py int, s string) {
		cell := style
		cell.Ch = []rune(s)[0]
		c.Set(px, py, cell)
	}
	put(x, y, border.TopLeft)
	put(x+w-1, y, border.TopRight)
	put(x, y+h-1, border.BottomLeft)
	put(x+w-1, y+h-1, border.BottomRight)
	for i := x + 1; i < x+w-1; i++ {
		put(i, y, border.Top)
		put(i, y+h-1, border.Bottom)
	}
	for j := y + 1; j < y+h-1; j++ {
		put(x, j, border.Left)
		put(x+w-1, j, border.Right)
	}
}

// Fill clears a rectangle to blank cells.
func (c *Canvas) Fill(x, y, w, h int) {
	for j := y; j < y+h; j++ {
		for i := x; i < x+w; i++ {
			c.Set(i, j, Cell{Ch: ' '})
		}
	}
}

// Render converts the canvas into styled lines, grouping runs of equal style.
func (c *Canvas) Render() string {
	var sb strings.Builder
	sb.Grow(c.W * c.H * 2)

	for y := 0; y < c.H; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		var run strings.Builder
		var runStyle Cell
		flush := func() {
			if run.Len() == 0 {
				return
			}
			sb.WriteString(styleFor(runStyle).Render(run.String()))
			run.Reset()
		}
		for x := 0; x < c.W; x++ {
			cell := c.cells[y*c.W+x]
			if cell.Ch == 0 {
				continue
			}
			key := Cell{FG: cell.FG, Bold: cell.Bold, Faint: cell.Faint}
			if key != runStyle {
				flush()
				runStyle = key
			}
			run.WriteRune(cell.Ch)
		}
		flush()
	}
	return sb.String()
}

func styleFor(c Cell) lipgloss.Style {
	s := lipgloss.NewStyle()
	if c.FG != "" {
		s = s.Foreground(lipgloss.Color(c.FG))
	}
	if c.Bold {
		s = s.Bold(true)
	}
	if c.Faint {
		s = s.Faint(true)
	}
	return s
}

// PlainText returns the canvas without styling, for tests and logs.
func (c *Canvas) PlainText() string {
	var sb strings.Builder
	for y := 0; y < c.H; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < c.W; x++ {
			if ch := c.cells[y*c.W+x].Ch; ch != 0 {
				sb.WriteRune(ch)
			}
		}
	}
	return sb.String()
}
