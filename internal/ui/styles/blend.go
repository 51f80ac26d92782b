// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"math"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// =============================================================================
// COLOR MATH
// =============================================================================
// Terminals have no opacity, blur or hue filters, so those effects are baked
// into concrete colors here.

// Resolve picks the light or dark variant of c.
func Resolve(c lipgloss.AdaptiveColor, dark bool) string {
	if dark {
		return c.Dark
	}
	return c.Light
}

func parseHex(hex string) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}
	}
	return c
}

// Blend mixes a towards b by t in [0,1], in Lab space.
func Blend(a, b string, t float64) string {
	t = math.Max(0, math.Min(1, t))
	return parseHex(a).BlendLab(parseHex(b), t).Clamped().Hex()
}

// Fade simulates fg drawn at the given opacity over bg.
func Fade(fg, bg string, opacity float64) string {
	return Blend(bg, fg, opacity)
}

// HueRotate shifts the hue of hex by degrees.
func HueRotate(hex string, degrees float64) string {
	h, c, l := parseHex(hex).Hcl()
	h = math.Mod(h+degrees, 360)
	if h < 0 {
		h += 360
	}
	return colorful.Hcl(h, c, l).Clamped().Hex()
}

// Gradient returns n colors evenly spaced from a to b.
func Gradient(a, b string, n int) []string {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []string{Blend(a, b, 0)}
	}
	out := make([]string, n)
	for i := range out {
		out[i] = Blend(a, b, float64(i)/float64(n-1))
	}
	return out
}
