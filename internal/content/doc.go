// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package content holds the portfolio text shown on the station: header,
// module cards, footer and the assistant's canned lines.
//
// The defaults are embedded from default.yaml. An override file can replace
// any top-level section; it is validated before use and, when watched, is
// reloaded on change.
package content
