// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package output

import (
	"github.com/matt-FFFFFF/mantel/internal/progress"
)

// Register creates a new progress indicator with the given label. A total
// of 0 makes it indeterminate: a spinner with a raw position counter
// instead of a percentage. Panics if the coordinator is closed.
func (c *Coordinator) Register(label string, total uint64) *progress.Handle {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		panic("mantel: register on closed coordinator")
	}

	h := c.registry.Register(label, total, timeNow())
	c.renderLocked(false)

	return h
}

// Advance moves the indicator forward by delta, clamped to its total, and
// presents a rate-limited render opportunity. Advancing a finished handle
// is a documented no-op. Panics if h belongs to a different coordinator.
func (c *Coordinator) Advance(h *progress.Handle, delta uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.mustOwnLocked(h)

	if c.closed {
		return
	}

	if c.registry.Advance(h, delta) {
		c.renderLocked(false)
	}
}

// SetLabel replaces the indicator's label text.
func (c *Coordinator) SetLabel(h *progress.Handle, label string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.mustOwnLocked(h)

	if c.closed {
		return
	}

	if c.registry.SetLabel(h, label) {
		c.renderLocked(false)
	}
}

// Finish marks the indicator complete. The first call always renders,
// bypassing the rate limiter, so the final state is visible on the stream;
// repeat calls are no-ops.
func (c *Coordinator) Finish(h *progress.Handle) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.mustOwnLocked(h)

	if c.closed {
		return
	}

	if c.registry.Finish(h) {
		c.renderLocked(true)
	}
}

// TickRender presents a render opportunity without changing any state. The
// animation ticker calls this to keep spinners moving; applications with
// their own event loop may call it too. The rendered frame always reflects
// the registry's current combined state.
func (c *Coordinator) TickRender() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || c.registry.Active() == 0 {
		return
	}

	c.renderLocked(false)
}

// mustOwnLocked fails loudly when a handle is used with a coordinator that
// did not create it. This is a lifetime bug in the caller, not a runtime
// condition.
func (c *Coordinator) mustOwnLocked(h *progress.Handle) {
	if !c.registry.Owns(h) {
		panic("mantel: progress handle does not belong to this coordinator")
	}
}
