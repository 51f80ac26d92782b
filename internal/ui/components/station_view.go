// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"math"
	"time"

	"github.com/jeranaias/nexus-tui/internal/station"
	"github.com/jeranaias/nexus-tui/internal/ui/styles"
)

// =============================================================================
// STATION VIEW - starfield band with the tilting station rings
// =============================================================================

// Ring rotation periods.
const (
	outerRingPeriod = 20 * time.Second
	innerRingPeriod = 15 * time.Second
)

// StationView draws the decorative backdrop.
type StationView struct {
	theme *styles.Theme
	stars []station.Star
}

// NewStationView creates the backdrop with the given stars.
func NewStationView(theme *styles.Theme, stars []station.Star) *StationView {
	return &StationView{theme: theme, stars: stars}
}

// SetStars replaces the starfield.
func (v *StationView) SetStars(stars []station.Star) {
	v.stars = stars
}

// View renders a width x height band. elapsed drives twinkle and ring spin;
// rotX and rotY (degrees) tilt the rings.
func (v *StationView) View(width, height int, elapsed time.Duration, rotX, rotY float64) string {
	c := NewCanvas(width, height)
	if width == 0 || height == 0 {
		return ""
	}

	space := v.theme.Color(styles.Space)
	star := v.theme.Color(styles.Star)
	for _, s := range v.stars {
		x := int(s.X * float64(width))
		y := int(s.Y * float64(height))
		b := s.Brightness(elapsed)
		glyph := []rune(styles.StarGlyph(b))[0]
		c.Set(x, y, Cell{Ch: glyph, FG: styles.Fade(star, space, b)})
	}

	cx := float64(width)/2 + rotY/station.MaxTilt*float64(width)/10
	cy := float64(height) / 2
	rx := float64(width) / 5
	ry := float64(height)/2 - 0.5

	// Tilting around X flattens the rings; the 3D spin is drawn as a gap that
	// travels round each ring.
	squash := math.Cos(rotX * math.Pi / 180 * 4)
	outer := v.theme.Color(styles.Primary)
	inner := v.theme.Color(styles.Secondary)
	drawRing(c, cx, cy, rx, ry*squash, spin(elapsed, outerRingPeriod), Cell{FG: styles.Fade(outer, space, 0.5)})
	drawRing(c, cx, cy, rx*0.7, ry*0.7*squash, -spin(elapsed, innerRingPeriod), Cell{FG: styles.Fade(inner, space, 0.5)})

	core := v.theme.Color(styles.Primary)
	c.Set(int(cx), int(cy), Cell{Ch: '◉', FG: core, Bold: true})
	return c.Render()
}

func spin(elapsed, period time.Duration) float64 {
	return 2 * math.Pi * math.Mod(elapsed.Seconds(), period.Seconds()) / period.Seconds()
}

func drawRing(c *Canvas, cx, cy, rx, ry, phase float64, style Cell) {
	if rx < 1 {
		return
	}
	steps := int(rx * 4)
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		// Gap of one eighth of the ring.
		gap := math.Mod(a-phase+4*math.Pi, 2*math.Pi)
		if gap < math.Pi/4 {
			continue
		}
		x := int(math.Round(cx + rx*math.Cos(a)))
		y := int(math.Round(cy + ry*math.Sin(a)))
		cell := style
		cell.Ch = '·'
		if math.Abs(math.Sin(a)) < 0.3 {
			cell.Ch = '─'
		}
		c.Set(x, y, cell)
	}
}
