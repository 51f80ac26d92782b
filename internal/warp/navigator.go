// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package warp

import (
	"math"

	"github.com/jeranaias/nexus-tui/internal/model"
	"github.com/rs/zerolog"
)

const (
	// MaxIntensity clamps the warp intensity.
	MaxIntensity = 50.0

	// ActivationThreshold must be strictly exceeded before a target activates.
	ActivationThreshold = 20.0

	// DistanceDivisor converts pointer travel (pixels) into intensity.
	DistanceDivisor = 10.0
)

// State is the overlay mode.
type State int

const (
	StateIdle State = iota
	StateArmed
	StateDragging
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateArmed:
		return "armed"
	case StateDragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// Point is a pointer position in virtual pixels.
type Point struct {
	X, Y float64
}

// Dist returns the euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Navigator holds the gesture state of the overlay.
type Navigator struct {
	held      bool
	dragging  bool
	last      Point
	intensity float64
	hover     model.Module

	onSelect func(model.Module)
	log      zerolog.Logger
}

// NewNavigator creates an idle navigator. onSelect is called when a target
// activates; it may be nil.
func NewNavigator(onSelect func(model.Module), logger *zerolog.Logger) *Navigator {
	n := &Navigator{onSelect: onSelect, log: zerolog.Nop()}
	if logger != nil {
		n.log = logger.With().Str("component", "warp").Logger()
	}
	return n
}

// KeyDown arms the overlay. It reports whether the pointer subscription must
// be acquired, which is only the case on the Idle to Armed transition.
func (n *Navigator) KeyDown() bool {
	if n.held {
		return false
	}
	n.held = true
	n.log.Debug().Msg("armed")
	return true
}

// KeyUp disarms the overlay and resets the gesture. It reports whether the
// pointer subscription must be released.
func (n *Navigator) KeyUp() bool {
	wasHeld := n.held
	n.held = false
	n.dragging = false
	n.intensity = 0
	n.last = Point{}
	n.hover = model.ModuleNone
	if wasHeld {
		n.log.Debug().Msg("released")
	}
	return wasHeld
}

// PointerDown starts a drag at p. Ignored while idle.
func (n *Navigator) PointerDown(p Point) {
	if !n.held {
		return
	}
	n.dragging = true
	n.last = p
}

// PointerMove feeds a pointer sample. While dragging, the distance from the
// previous sample sets the intensity.
func (n *Navigator) PointerMove(p Point) {
	if !n.held || !n.dragging {
		return
	}
	n.intensity = math.Min(p.Dist(n.last)/DistanceDivisor, MaxIntensity)
	n.last = p
}

// PointerUp ends the drag. The intensity is kept so a following click can
// still activate a target.
func (n *Navigator) PointerUp() {
	n.dragging = false
}

// Activate selects m if the overlay is armed and the intensity is past the
// threshold. On success the intensity resets and the drag ends.
func (n *Navigator) Activate(m model.Module) bool {
	if !n.held || !n.Ready() {
		return false
	}
	n.log.Debug().Str("module", m.String()).Float64("intensity", n.intensity).Msg("activated")
	n.intensity = 0
	n.dragging = false
	if n.onSelect != nil {
		n.onSelect(m)
	}
	return true
}

// SetHover records the target under the pointer.
func (n *Navigator) SetHover(m model.Module) {
	n.hover = m
}

// Hover returns the target under the pointer.
func (n *Navigator) Hover() model.Module { return n.hover }

// State returns the current mode.
func (n *Navigator) State() State {
	switch {
	case !n.held:
		return StateIdle
	case n.dragging:
		return StateDragging
	default:
		return StateArmed
	}
}

// Held reports whether the warp key is active.
func (n *Navigator) Held() bool { return n.held }

// Dragging reports whether a drag is in progress.
func (n *Navigator) Dragging() bool { return n.dragging }

// Position returns the last drag reference point.
func (n *Navigator) Position() Point { return n.last }

// Intensity returns the warp intensity in [0, MaxIntensity].
func (n *Navigator) Intensity() float64 { return n.intensity }

// Ready reports whether a click would activate a target.
func (n *Navigator) Ready() bool { return n.intensity > ActivationThreshold }

// Visuals returns the display parameters for the current intensity.
func (n *Navigator) Visuals() Visuals { return VisualsFor(n.intensity) }
