// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package warp

// Subscription tracks whether full pointer-motion reporting is enabled for the
// overlay. Acquire and Release are idempotent; each reports whether the state
// changed so the host only toggles terminal modes once.
type Subscription struct {
	active   bool
	acquired int
	released int
}

// Acquire enables the subscription.
func (s *Subscription) Acquire() bool {
	if s.active {
		return false
	}
	s.active = true
	s.acquired++
	return true
}

// Release disables the subscription.
func (s *Subscription) Release() bool {
	if !s.active {
		return false
	}
	s.active = false
	s.released++
	return true
}

// Active reports whether the subscription is held.
func (s *Subscription) Active() bool { return s.active }

// Balanced reports whether every acquire has been matched by a release.
func (s *Subscription) Balanced() bool { return s.acquired == s.released }
