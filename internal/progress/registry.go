// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package progress

import (
	"time"
)

// Handle identifies one active progress indicator. Handles are created by
// Registry.Register and mutated only through registry operations; the zero
// value is not usable. A handle is owned by a single writer goroutine by
// convention, and all mutation happens under the coordinator's exclusive
// section.
type Handle struct {
	registry    *Registry
	id          uint64
	label       string
	position    uint64
	total       uint64 // 0 means indeterminate: spinner, no percentage
	finished    bool
	interrupted bool
	started     time.Time
}

// ID returns the handle's unique identifier. Identifiers increase in
// creation order and are never reused within a registry.
func (h *Handle) ID() uint64 {
	return h.id
}

// Label returns the current label text.
func (h *Handle) Label() string {
	return h.label
}

// Position returns the current position. Positions are monotonically
// non-decreasing; there is no reset operation.
func (h *Handle) Position() uint64 {
	return h.position
}

// Total returns the target value, or 0 for an indeterminate indicator.
func (h *Handle) Total() uint64 {
	return h.total
}

// Finished reports whether the handle has been finished.
func (h *Handle) Finished() bool {
	return h.finished
}

// Registry tracks the set of active progress indicators in creation order,
// the spinner tick, and the rate-limiting clock. It has no locking of its
// own: every method is called while holding the coordinator's exclusive
// section.
type Registry struct {
	nextID     uint64
	handles    []*Handle
	tick       uint64
	lastRender time.Time
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register creates a new indicator with position zero. A total of 0 means
// indeterminate. The started time seeds ETA computation.
func (r *Registry) Register(label string, total uint64, started time.Time) *Handle {
	r.nextID++

	h := &Handle{
		registry: r,
		id:       r.nextID,
		label:    label,
		total:    total,
		started:  started,
	}
	r.handles = append(r.handles, h)

	return h
}

// Owns reports whether h was created by this registry. Operations on a
// handle from a different registry are a programmer error.
func (r *Registry) Owns(h *Handle) bool {
	return h != nil && h.registry == r
}

// Advance moves the handle's position forward by delta, clamped to the
// total when one is set. Advancing a finished handle is a no-op, not an
// error. It reports whether the position changed.
func (r *Registry) Advance(h *Handle, delta uint64) bool {
	if h.finished || delta == 0 {
		return false
	}

	if h.total > 0 {
		remaining := h.total - h.position
		if delta >= remaining {
			delta = remaining
		}

		if delta == 0 {
			return false
		}
	}

	h.position += delta

	return true
}

// SetLabel replaces the handle's label. It is a no-op on a finished handle.
// It reports whether the label changed.
func (r *Registry) SetLabel(h *Handle, label string) bool {
	if h.finished || h.label == label {
		return false
	}

	h.label = label

	return true
}

// Finish marks the handle complete. Finishing is idempotent: the first call
// returns true and schedules the handle's removal on the next render pass,
// repeat calls return false and change nothing.
func (r *Registry) Finish(h *Handle) bool {
	if h.finished {
		return false
	}

	h.finished = true

	return true
}

// InterruptRemaining finishes every active handle, marking each as
// interrupted rather than done. Used on shutdown so the final render shows
// what was still in flight. It reports whether any handle changed.
func (r *Registry) InterruptRemaining() bool {
	changed := false

	for _, h := range r.handles {
		if h.finished {
			continue
		}

		h.finished = true
		h.interrupted = true
		changed = true
	}

	return changed
}

// CollectFinished removes finished handles from the registry and returns
// them in creation order. The caller renders their permanent final lines
// before drawing the remaining live frame.
func (r *Registry) CollectFinished() []*Handle {
	var done []*Handle

	live := r.handles[:0]

	for _, h := range r.handles {
		if h.finished {
			done = append(done, h)
			continue
		}

		live = append(live, h)
	}

	r.handles = live

	return done
}

// Active returns the number of handles that are not yet collected.
func (r *Registry) Active() int {
	return len(r.handles)
}

// Tick returns the monotonic render counter driving spinner animation.
func (r *Registry) Tick() uint64 {
	return r.tick
}

// ShouldRenderNow reports whether enough time has passed since the last
// render. The first render is always due. now must come from a monotonic
// clock reading.
func (r *Registry) ShouldRenderNow(now time.Time, minInterval time.Duration) bool {
	if r.lastRender.IsZero() {
		return true
	}

	return now.Sub(r.lastRender) >= minInterval
}

// MarkRendered records a completed render pass and advances the spinner
// tick.
func (r *Registry) MarkRendered(now time.Time) {
	r.lastRender = now
	r.tick++
}
