// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package assistant

import (
	"context"
	"sync"
)

// =============================================================================
// PENDING REPLIES
// =============================================================================

// Pending is a scheduled assistant reply. The host waits ReplyDelay and hands
// the ticket back to Resolve.
type Pending struct {
	ID  uint64
	ctx context.Context
}

// Context returns the lifetime context the ticket was issued under.
// It is done once the assistant is closed or unmounted.
func (p Pending) Context() context.Context {
	if p.ctx == nil {
		return context.Background()
	}
	return p.ctx
}

// Live reports whether the ticket's lifetime is still current.
func (p Pending) Live() bool {
	return p.ctx != nil && p.ctx.Err() == nil
}

// lifetime owns the context every pending ticket derives from.
// IMPORTANT: must be used as a pointer so Bubble Tea model copies share it.
type lifetime struct {
	mu     sync.Mutex
	ctx    context.Context
	cancel context.CancelFunc
}

func newLifetime() *lifetime {
	lt := &lifetime{}
	lt.ctx, lt.cancel = context.WithCancel(context.Background())
	return lt
}

// current returns the live context.
func (lt *lifetime) current() context.Context {
	lt.mu.Lock()
	defer lt.mu.Unlock()
	return lt.ctx
}

// reset cancels the current context and starts a fresh one.
// Safe to call multiple times.
func (lt *lifetime) reset() {
	lt.mu.Lock()
	defer lt.mu.Unlock()
	if lt.cancel != nil {
		lt.cancel()
	}
	lt.ctx, lt.cancel = context.WithCancel(context.Background())
}
