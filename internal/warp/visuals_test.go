// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package warp

import (
	"testing"

	"github.com/jeranaias/nexus-tui/internal/model"
	"github.com/stretchr/testify/require"
)

func TestVisualsFor(t *testing.T) {
	v := VisualsFor(25)
	require.InDelta(t, 0.5, v.OverlayOpacity, 1e-9)
	require.InDelta(t, 1.25, v.CellScale, 1e-9)
	require.InDelta(t, 0.55, v.CellOpacity, 1e-9)
	require.InDelta(t, 50, v.RotateX, 1e-9)
	require.InDelta(t, 75, v.RotateY, 1e-9)
	require.InDelta(t, 1.5, v.Scale, 1e-9)
	require.InDelta(t, 50, v.HueRotate, 1e-9)
	require.InDelta(t, 13, v.Blur, 1e-9)
	require.True(t, v.Ready())

	zero := VisualsFor(0)
	require.Zero(t, zero.OverlayOpacity)
	require.InDelta(t, 0.3, zero.CellOpacity, 1e-9)
	require.InDelta(t, 8, zero.Blur, 1e-9)
	require.False(t, zero.Ready())
}

func TestHintAndCaption(t *testing.T) {
	require.Equal(t, HintDrag, HintText(0))
	require.Equal(t, HintDrag, HintText(19.9))
	require.Equal(t, HintClick, HintText(20))
	require.Equal(t, HintClick, HintText(50))

	require.Equal(t, CaptionInsufficient, TargetCaption(19.9))
	require.Equal(t, CaptionReady, TargetCaption(20))
	require.Equal(t, CaptionReady, TargetCaption(20.1))
}

func TestTargetRects(t *testing.T) {
	const w, h = 120, 40
	for _, tgt := range Targets() {
		r := tgt.Rect(w, h)
		cx := int(tgt.X * w)
		cy := int(tgt.Y * h)
		require.True(t, r.Contains(cx, cy), "%s anchor inside its rect", tgt.Module)

		m, ok := TargetAt(cx, cy, w, h)
		require.True(t, ok)
		require.Equal(t, tgt.Module, m)
	}

	_, ok := TargetAt(0, 0, w, h)
	require.False(t, ok)
}

func TestTargetRect_StaysOnScreen(t *testing.T) {
	r := Target{Module: model.ModuleSkills, X: 0.99, Y: 0.99}.Rect(20, 4)
	require.GreaterOrEqual(t, r.X, 0)
	require.LessOrEqual(t, r.X+r.W, 20)
	require.LessOrEqual(t, r.Y+r.H, 4)
}
