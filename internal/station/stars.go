// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package station

import (
	"math"
	"math/rand"
	"time"
)

// DefaultStarCount is the size of the background starfield.
const DefaultStarCount = 100

// TwinklePeriod is the length of one star brightness cycle.
const TwinklePeriod = 3 * time.Second

// Star is one decorative star. X and Y are normalized to [0,1).
type Star struct {
	X, Y    float64
	Opacity float64 // [0.2, 0.7)
	Phase   float64 // seconds, [0, 3)
}

// Stars generates n stars. The same seed always yields the same field.
func Stars(n int, seed int64) []Star {
	if n <= 0 {
		return nil
	}
	rng := rand.New(rand.NewSource(seed))
	stars := make([]Star, n)
	for i := range stars {
		stars[i] = Star{
			X:       rng.Float64(),
			Y:       rng.Float64(),
			Opacity: 0.2 + rng.Float64()*0.5,
			Phase:   rng.Float64() * 3,
		}
	}
	return stars
}

// Brightness returns the star's opacity at elapsed time t, pulsing between
// its base opacity and full brightness.
func (s Star) Brightness(t time.Duration) float64 {
	period := TwinklePeriod.Seconds()
	x := math.Mod(t.Seconds()+s.Phase, period) / period
	pulse := 0.5 - 0.5*math.Cos(2*math.Pi*x)
	return s.Opacity + (1-s.Opacity)*pulse
}
