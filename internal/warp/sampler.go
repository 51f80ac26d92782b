// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package warp

import "time"

const (
	// SampleInterval is how often drag motion is fed to the navigator.
	SampleInterval = 100 * time.Millisecond

	// Virtual pixel space that cell coordinates are scaled into.
	VirtualWidth  = 1280.0
	VirtualHeight = 800.0
)

// Sampler converts terminal cell positions into virtual pixels and hands out
// at most one sample per interval, so that the distance between samples
// tracks pointer speed.
type Sampler struct {
	width, height int
	latest        Point
	dirty         bool
}

// SetSize records the terminal size in cells.
func (s *Sampler) SetSize(width, height int) {
	s.width, s.height = width, height
}

// Scale converts the centre of cell (x, y) into virtual pixels.
func (s *Sampler) Scale(x, y int) Point {
	if s.width <= 0 || s.height <= 0 {
		return Point{}
	}
	return Point{
		X: (float64(x) + 0.5) * VirtualWidth / float64(s.width),
		Y: (float64(y) + 0.5) * VirtualHeight / float64(s.height),
	}
}

// Reset starts sampling from cell (x, y) and returns its virtual position.
func (s *Sampler) Reset(x, y int) Point {
	s.latest = s.Scale(x, y)
	s.dirty = false
	return s.latest
}

// Observe records a motion event at cell (x, y).
func (s *Sampler) Observe(x, y int) {
	p := s.Scale(x, y)
	if p != s.latest {
		s.latest = p
		s.dirty = true
	}
}

// Sample returns the newest position if the pointer moved since the last
// sample.
func (s *Sampler) Sample() (Point, bool) {
	if !s.dirty {
		return Point{}, false
	}
	s.dirty = false
	return s.latest, true
}
