// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the NEXUS station TUI.

# Color System (colors.go)

All colors use Lip Gloss AdaptiveColor for light/dark terminals.

  - Primary (cyan) - about module, active projects, station glow
  - Secondary (purple) - projects module, beta projects, warp hints
  - Accent (pink) - skills module, excited assistant
  - Green, Blue, Gray - live projects and the assistant moods

ModuleColor, EmotionColor and StatusColor map domain values to colors.

# Color Math (blend.go)

Terminals cannot draw opacity, blur or CSS filters. Blend, Fade and
HueRotate bake those effects into concrete hex colors with go-colorful.

	cell := styles.Fade(theme.Color(styles.Secondary), theme.Color(styles.Space), 0.4)
	tint := styles.HueRotate(cell, 2*intensity)

# Theme System (theme.go)

	theme := styles.NewTheme("auto")
	card := theme.CardBorder(model.ModuleAbout, selected)

# Animation System (animations.go)

ThinkingSpinner for pending replies, StarGlyph for the twinkling starfield,
RenderProgressBar for the warp intensity meter, and easing helpers.
*/
package styles
