// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package assistant implements the station's canned chat assistant.
//
// The assistant holds an open/closed flag, the conversation log, the input
// buffer and an emotion indicator. Sending a message appends the user entry
// immediately and returns a Pending ticket; the host resolves the ticket after
// ReplyDelay, at which point one reply from the configured reply set is
// appended. Closing or unmounting the assistant invalidates every outstanding
// ticket.
//
// # Usage
//
//	a := assistant.New(assistant.Options{Rand: rand.New(rand.NewSource(1))})
//	a.SetInput("hello")
//	if p, ok := a.Send(); ok {
//		time.AfterFunc(assistant.ReplyDelay, func() { done <- p })
//	}
//	// later, on the owning goroutine:
//	a.Resolve(<-done)
package assistant
