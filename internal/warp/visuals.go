// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package warp

import (
	"math"

	"github.com/jeranaias/nexus-tui/internal/model"
)

// =============================================================================
// DERIVED VISUALS
// =============================================================================

const (
	HintDrag  = "Drag the cursor to distort space..."
	HintClick = "Click a module to activate!"

	CaptionInsufficient = "Insufficient distortion"
	CaptionReady        = "Ready for activation"

	// GridSize is the number of overlay cells per side.
	GridSize = 8
)

// Visuals are the display parameters derived from an intensity w.
// Angles are degrees, Blur is pixels.
type Visuals struct {
	Intensity      float64
	OverlayOpacity float64
	CellScale      float64
	CellOpacity    float64
	RotateX        float64
	RotateY        float64
	Scale          float64
	HueRotate      float64
	Blur           float64
}

// VisualsFor computes the visual parameters for intensity w.
func VisualsFor(w float64) Visuals {
	return Visuals{
		Intensity:      w,
		OverlayOpacity: w / 50,
		CellScale:      1 + w/100,
		CellOpacity:    0.3 + w/100,
		RotateX:        2 * w,
		RotateY:        3 * w,
		Scale:          1 + w/50,
		HueRotate:      2 * w,
		Blur:           8 + w/5,
	}
}

// Ready reports whether the intensity is past the activation threshold.
func (v Visuals) Ready() bool { return v.Intensity > ActivationThreshold }

// HintText is the instruction shown while the overlay is armed.
func HintText(w float64) string {
	if w < ActivationThreshold {
		return HintDrag
	}
	return HintClick
}

// TargetCaption is the status line under each target.
func TargetCaption(w float64) string {
	if w < ActivationThreshold {
		return CaptionInsufficient
	}
	return CaptionReady
}

// =============================================================================
// TARGETS
// =============================================================================

// Target is a module anchor on the overlay at a normalized screen position.
type Target struct {
	Module model.Module
	X, Y   float64
}

var targets = []Target{
	{Module: model.ModuleAbout, X: 0.20, Y: 0.40},
	{Module: model.ModuleProjects, X: 0.50, Y: 0.30},
	{Module: model.ModuleSkills, X: 0.80, Y: 0.45},
}

// Targets returns the three module targets.
func Targets() []Target {
	out := make([]Target, len(targets))
	copy(out, targets)
	return out
}

// Target box size in cells.
const (
	TargetWidth  = 25
	TargetHeight = 5
)

// Rect is a cell rectangle.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Rect returns the cell rectangle of t on a width x height screen, centred on
// its normalized anchor and kept on screen.
func (t Target) Rect(width, height int) Rect {
	w := min(TargetWidth, width)
	h := min(TargetHeight, height)
	x := int(math.Round(t.X*float64(width))) - w/2
	y := int(math.Round(t.Y*float64(height))) - h/2
	x = max(0, min(x, width-w))
	y = max(0, min(y, height-h))
	return Rect{X: x, Y: y, W: w, H: h}
}

// TargetAt returns the module whose target contains cell (x, y).
func TargetAt(x, y, width, height int) (model.Module, bool) {
	for _, t := range targets {
		if t.Rect(width, height).Contains(x, y) {
			return t.Module, true
		}
	}
	return model.ModuleNone, false
}
