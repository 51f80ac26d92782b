// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util holds small helpers shared by nexus packages.
//
// AtomicWriteFile is used for everything nexus writes to disk (the config
// file written by `nexus config init` and `nexus config set`):
//
//	err := util.AtomicWriteFile(path, data, 0644)
package util
