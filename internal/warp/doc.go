// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package warp implements the held-key "space warp" navigation overlay.
//
// While the warp key is held the overlay is armed. Dragging the pointer
// accumulates a warp intensity from the distance between consecutive pointer
// samples; clicking a module target activates it once the intensity is past
// ActivationThreshold. Releasing the key resets everything.
//
// Terminals do not report key releases, so HoldTracker turns key presses into
// KeyDown/KeyUp transitions, and Sampler turns cell-granular mouse motion into
// fixed-interval samples in a virtual pixel space.
package warp
