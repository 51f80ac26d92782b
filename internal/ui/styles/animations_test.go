// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"math"
	"testing"
	"time"
)

func TestSpinnerConfig_Duration(t *testing.T) {
	if got := ThinkingSpinner.Duration(); got != time.Second/6 {
		t.Errorf("ThinkingSpinner.Duration() = %v", got)
	}
	if got := (SpinnerConfig{}).Duration(); got != time.Second {
		t.Errorf("zero FPS should fall back to one second, got %v", got)
	}
}

func TestStarGlyph(t *testing.T) {
	tests := []struct {
		brightness float64
		want       string
	}{
		{-1, "."},
		{0, "."},
		{0.2, "."},
		{0.3, "·"},
		{0.6, "+"},
		{0.9, "*"},
		{1, "*"},
	}
	for _, tc := range tests {
		if got := StarGlyph(tc.brightness); got != tc.want {
			t.Errorf("StarGlyph(%v) = %q, want %q", tc.brightness, got, tc.want)
		}
	}
}

func TestRenderProgressBar(t *testing.T) {
	tests := []struct {
		width   int
		percent float64
		want    string
	}{
		{10, 0, "----------"},
		{10, 100, "##########"},
		{10, 50, "#####-----"},
		{10, 150, "##########"},
		{10, -5, "----------"},
		{4, 62.5, "##:-"},
		{0, 50, ""},
	}
	for _, tc := range tests {
		if got := RenderProgressBar(tc.width, tc.percent); got != tc.want {
			t.Errorf("RenderProgressBar(%d, %v) = %q, want %q", tc.width, tc.percent, got, tc.want)
		}
	}
}

func TestEasing(t *testing.T) {
	for name, fn := range map[string]EasingFunc{
		"linear":   EaseLinear,
		"outQuad":  EaseOutQuad,
		"outCubic": EaseOutCubic,
	} {
		if math.Abs(fn(0)) > 1e-9 || math.Abs(fn(1)-1) > 1e-9 {
			t.Errorf("%s should map 0->0 and 1->1", name)
		}
	}
	if EaseOutQuad(0.5) <= 0.5 {
		t.Error("ease-out should be ahead of linear at the midpoint")
	}
}
