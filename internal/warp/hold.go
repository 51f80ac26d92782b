// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package warp

import (
	"fmt"
	"strings"
	"time"
)

// HoldMode selects how key presses map to a held key.
type HoldMode string

const (
	// HoldToggle arms on one press and releases on the next (or Esc).
	HoldToggle HoldMode = "toggle"

	// HoldRepeat treats terminal auto-repeat as "still held" and releases
	// once presses stop arriving for the release timeout.
	HoldRepeat HoldMode = "repeat"
)

// DefaultReleaseTimeout is the repeat-mode silence that counts as a release.
const DefaultReleaseTimeout = 650 * time.Millisecond

// ParseHoldMode converts a name into a HoldMode.
func ParseHoldMode(s string) (HoldMode, error) {
	switch HoldMode(strings.ToLower(strings.TrimSpace(s))) {
	case HoldToggle, "":
		return HoldToggle, nil
	case HoldRepeat:
		return HoldRepeat, nil
	}
	return "", fmt.Errorf("unknown hold mode %q (want toggle or repeat)", s)
}

// HoldEvent is the key transition produced by a press.
type HoldEvent int

const (
	HoldNone HoldEvent = iota
	HoldDown
	HoldUp
)

// HoldCheck asks the tracker, after the release timeout, whether the key went
// quiet. Checks carry the generation they were issued for; stale ones are
// ignored.
type HoldCheck struct {
	Gen uint64
}

// HoldTracker synthesizes key down/up transitions from key presses.
type HoldTracker struct {
	mode    HoldMode
	timeout time.Duration
	active  bool
	gen     uint64
}

// NewHoldTracker creates a tracker. A non-positive timeout uses the default.
func NewHoldTracker(mode HoldMode, timeout time.Duration) *HoldTracker {
	if mode == "" {
		mode = HoldToggle
	}
	if timeout <= 0 {
		timeout = DefaultReleaseTimeout
	}
	return &HoldTracker{mode: mode, timeout: timeout}
}

// Mode returns the hold mode.
func (h *HoldTracker) Mode() HoldMode { return h.mode }

// Timeout returns the repeat-mode release timeout.
func (h *HoldTracker) Timeout() time.Duration { return h.timeout }

// Active reports whether the key is considered held.
func (h *HoldTracker) Active() bool { return h.active }

// Press records a press of the warp key. In repeat mode the returned check
// must be delivered back to Expired after Timeout; schedule is false in
// toggle mode.
func (h *HoldTracker) Press() (ev HoldEvent, check HoldCheck, schedule bool) {
	switch h.mode {
	case HoldRepeat:
		h.gen++
		check = HoldCheck{Gen: h.gen}
		if h.active {
			return HoldNone, check, true
		}
		h.active = true
		return HoldDown, check, true
	default:
		if h.active {
			h.active = false
			return HoldUp, HoldCheck{}, false
		}
		h.active = true
		return HoldDown, HoldCheck{}, false
	}
}

// Cancel releases the key explicitly (Esc, focus loss, quit).
func (h *HoldTracker) Cancel() HoldEvent {
	if !h.active {
		return HoldNone
	}
	h.active = false
	h.gen++
	return HoldUp
}

// Expired handles a repeat-mode check. It returns HoldUp when no press has
// arrived since the check was issued.
func (h *HoldTracker) Expired(c HoldCheck) HoldEvent {
	if h.mode != HoldRepeat || !h.active || c.Gen != h.gen {
		return HoldNone
	}
	h.active = false
	return HoldUp
}
