// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package app is the root Bubble Tea model of the NEXUS station. It routes
// keys and mouse events to the assistant, the warp navigator and the page
// shell, schedules the deferred replies and animation ticks, and composes
// the components into one screen.
package app
