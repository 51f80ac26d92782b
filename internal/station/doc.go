// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package station holds the page shell state: the selected module, the
// pointer-driven tilt of the station rings and the decorative starfield.
package station
