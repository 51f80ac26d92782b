// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package station

import (
	"github.com/charmbracelet/harmonica"
	"github.com/jeranaias/nexus-tui/internal/model"
	"github.com/rs/zerolog"
)

// MaxTilt is the rotation, in degrees, at the edge of the viewport.
const MaxTilt = 10.0

// Spring parameters for the displayed tilt. Critically damped, settling in
// roughly the 300ms the rings took to ease.
const (
	springFPS       = 60
	springFrequency = 6.0
	springDamping   = 1.0

	settleEpsilon = 0.01
)

// Tilt computes the ring rotation for a pointer at (x, y) in a width x height
// viewport. A zero-size viewport yields no tilt.
func Tilt(x, y, width, height float64) (rotX, rotY float64) {
	if width <= 0 || height <= 0 {
		return 0, 0
	}
	rotY = (x/width - 0.5) * 2 * MaxTilt
	rotX = (y/height - 0.5) * 2 * MaxTilt
	return rotX, rotY
}

// Shell is the page shell state.
type Shell struct {
	selected model.Module

	targetX, targetY float64
	rotX, rotY       float64
	velX, velY       float64
	spring           harmonica.Spring

	log zerolog.Logger
}

// NewShell creates a shell with nothing selected.
func NewShell(logger *zerolog.Logger) *Shell {
	s := &Shell{
		spring: harmonica.NewSpring(harmonica.FPS(springFPS), springFrequency, springDamping),
		log:    zerolog.Nop(),
	}
	if logger != nil {
		s.log = logger.With().Str("component", "station").Logger()
	}
	return s
}

// Toggle selects m, or clears the selection when m is already selected.
func (s *Shell) Toggle(m model.Module) model.Module {
	if m == s.selected {
		s.selected = model.ModuleNone
	} else {
		s.selected = m
	}
	s.log.Debug().Str("selected", s.selected.String()).Msg("module toggled")
	return s.selected
}

// Selected returns the expanded module.
func (s *Shell) Selected() model.Module { return s.selected }

// PointAt sets the tilt target from a pointer position.
func (s *Shell) PointAt(x, y, width, height float64) {
	s.targetX, s.targetY = Tilt(x, y, width, height)
}

// Target returns the undamped tilt.
func (s *Shell) Target() (rotX, rotY float64) { return s.targetX, s.targetY }

// Rotation returns the displayed (smoothed) tilt.
func (s *Shell) Rotation() (rotX, rotY float64) { return s.rotX, s.rotY }

// Step advances the displayed tilt one frame towards the target. It reports
// whether the rings are still moving.
func (s *Shell) Step() bool {
	s.rotX, s.velX = s.spring.Update(s.rotX, s.velX, s.targetX)
	s.rotY, s.velY = s.spring.Update(s.rotY, s.velY, s.targetY)
	return !s.Settled()
}

// Snap jumps the displayed tilt to the target.
func (s *Shell) Snap() {
	s.rotX, s.rotY = s.targetX, s.targetY
	s.velX, s.velY = 0, 0
}

// Settled reports whether the displayed tilt has reached the target.
func (s *Shell) Settled() bool {
	return near(s.rotX, s.targetX) && near(s.rotY, s.targetY) &&
		near(s.velX, 0) && near(s.velY, 0)
}

func near(a, b float64) bool {
	d := a - b
	return d < settleEpsilon && d > -settleEpsilon
}
