// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides the visual pieces of the NEXUS station screen.

Components hold no interaction state of their own beyond what Bubble Tea
widgets need (text input, viewport, spinner). They read state from the
assistant, warp and station packages and render it.

# Components

## Page

Header (header.go) - Status badge, gradient title and subtitle.
CardDeck (cards.go) - About, projects and skills cards. About is rendered with glamour.
StationView (station_view.go) - Twinkling starfield and the tilting rings.
Footer (footer.go) - Links, system status and key shortcuts.

## Assistant

ChatPanel (chat.go) - Launcher, conversation log, quick replies and input.
Spinner (spinner.go) - Thinking dots while a reply is pending.

## Warp

WarpOverlay (overlay.go) - 8x8 grid, module targets and the intensity meter.
HintBadge (hint.go) - Idle reminder of the warp key.

## Feedback

ToastStack (toast.go) - Auto-dismissing notices for content reloads.

# Drawing

Free-form pictures (stars, rings, the warp grid) are drawn on a Canvas
(canvas.go) and rendered in one pass. Everything else is composed with
Lip Gloss.

# Mouse

Clickable regions are wrapped in bubblezone marks; the zone IDs are in
helpers.go. Warp targets are hit-tested by geometry instead, because the
overlay is drawn on a canvas:

	m, ok := warp.TargetAt(msg.X, msg.Y, width, height)
*/
package components
