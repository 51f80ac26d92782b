// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/nexus-tui/internal/model"
	"github.com/jeranaias/nexus-tui/internal/ui/styles"
	"github.com/jeranaias/nexus-tui/internal/warp"
)

// =============================================================================
// WARP OVERLAY - grid, targets and intensity meter while the warp key is held
// =============================================================================

// meterWidth is the width of the intensity bar.
const meterWidth = 24

// WarpOverlay draws the armed gesture overlay over the whole screen.
type WarpOverlay struct {
	theme *styles.Theme
	ease  styles.EasingFunc
}

// NewWarpOverlay creates the overlay renderer.
func NewWarpOverlay(theme *styles.Theme) *WarpOverlay {
	return &WarpOverlay{theme: theme, ease: styles.EaseOutCubic}
}

// WarpFrame is everything one overlay frame depends on.
type WarpFrame struct {
	Width, Height int
	Visuals       warp.Visuals
	Hover         model.Module
	Elapsed       time.Duration
	// Opacity is the spring-smoothed overlay opacity; it trails
	// Visuals.OverlayOpacity.
	Opacity float64
}

// View renders one frame.
func (o *WarpOverlay) View(f WarpFrame) string {
	c := NewCanvas(f.Width, f.Height)
	if f.Width == 0 || f.Height == 0 {
		return ""
	}

	o.grid(c, f)
	for _, t := range warp.Targets() {
		o.target(c, t, f)
	}

	hint := warp.HintText(f.Visuals.Intensity)
	hintColor := o.theme.Color(styles.Accent)
	c.CenterText(0, hint, Cell{FG: hintColor, Bold: true})

	o.meter(c, f)
	return c.Render()
}

// grid draws the 8x8 lattice. Cell opacity fades the lines in, hue rotation
// tints them, and overlay opacity drives a ripple that bends the lines.
func (o *WarpOverlay) grid(c *Canvas, f WarpFrame) {
	v := f.Visuals
	space := o.theme.Color(styles.Space)
	base := styles.HueRotate(o.theme.Color(styles.Secondary), v.HueRotate)
	color := styles.Fade(base, space, math.Min(1, v.CellOpacity))

	cellW := float64(f.Width) / warp.GridSize
	cellH := float64(f.Height) / warp.GridSize
	amp := (v.CellScale - 1) * cellW * o.ease(math.Min(1, f.Opacity))
	phase := f.Elapsed.Seconds() * 2

	line := Cell{Ch: '·', FG: color}
	cross := Cell{Ch: '+', FG: color, Bold: v.Intensity > warp.ActivationThreshold}

	for i := 1; i < warp.GridSize; i++ {
		gy := int(math.Round(float64(i) * cellH))
		for x := 0; x < f.Width; x++ {
			dy := int(math.Round(amp / 4 * math.Sin(float64(x)/cellW*math.Pi+phase)))
			c.Set(x, gy+dy, line)
		}
	}
	for i := 1; i < warp.GridSize; i++ {
		gx := float64(i) * cellW
		for y := 0; y < f.Height; y++ {
			dx := int(math.Round(amp / 2 * math.Sin(float64(y)/cellH*math.Pi+phase)))
			x := int(math.Round(gx)) + dx
			cell := line
			if c.At(x, y).Ch == '·' {
				cell = cross
			}
			c.Set(x, y, cell)
		}
	}
}

// target draws one module box. The hovered target is emphasized in place of
// the scale-up effect; hue rotation tints its border.
func (o *WarpOverlay) target(c *Canvas, t warp.Target, f WarpFrame) {
	r := t.Rect(f.Width, f.Height)
	v := f.Visuals
	hovered := f.Hover == t.Module

	color := styles.HueRotate(o.theme.Color(styles.ModuleColor(t.Module)), v.HueRotate)
	border := lipgloss.RoundedBorder()
	if hovered {
		border = lipgloss.ThickBorder()
	}

	c.Fill(r.X, r.Y, r.W, r.H)
	c.Frame(r.X, r.Y, r.W, r.H, border, Cell{FG: color, Bold: hovered})

	inner := r.W - 2
	title := truncate(t.Module.Title(), inner)
	caption := truncate(warp.TargetCaption(v.Intensity), inner)
	tilt := truncate(fmt.Sprintf("%.0f° %.0f°", v.RotateX, v.RotateY), inner)

	row := func(dy int, s string, style Cell) {
		if dy >= r.H-1 {
			return
		}
		x := r.X + 1 + (inner-lipgloss.Width(s))/2
		c.Text(x, r.Y+dy, s, style)
	}
	row(1, title, Cell{FG: color, Bold: true})
	// Blur is not drawable; captions stay faint until the warp is ready.
	row(2, caption, Cell{FG: o.theme.Color(styles.TextSecondary), Faint: !v.Ready()})
	row(3, tilt, Cell{FG: o.theme.Color(styles.TextMuted), Faint: true})
}

// meter draws the intensity bar on the last row.
func (o *WarpOverlay) meter(c *Canvas, f WarpFrame) {
	v := f.Visuals
	pct := v.Intensity / warp.MaxIntensity * 100
	bar := styles.RenderProgressBar(meterWidth, pct)
	label := fmt.Sprintf("WARP [%s] %4.1f/%.0f", bar, v.Intensity, warp.MaxIntensity)

	color := o.theme.Color(styles.TextMuted)
	if v.Ready() {
		color = o.theme.Color(styles.Green)
	}
	c.CenterText(f.Height-1, label, Cell{FG: color, Bold: v.Ready()})
}
