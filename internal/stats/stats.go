// Copyright (c) 2026 concurrent-go authors
//
// Use of this software is governed by the MIT license included
// in the LICENSE file.

// Package stats provides the unsynchronized operation counters backing
// Stack.LenHint and the elimination-rate instrumentation described by
// SPEC_FULL.md's domain-stack supplement. Counters are plain typed
// atomics, in the style of the teacher's own per-run counters
// (go/ct/driver/coordination.go's atomic.Int64/atomic.Bool fields), not
// a synchronized snapshot: spec.md §6 is explicit that LenHint is "not
// linearizable".
package stats

import "sync/atomic"

// Counters tracks pushes, pops, and pops satisfied via elimination.
type Counters struct {
	pushes       atomic.Int64
	pops         atomic.Int64
	eliminations atomic.Int64
}

// Pushed records a completed push, via either the head or a slot.
func (c *Counters) Pushed() {
	c.pushes.Add(1)
}

// Popped records a completed pop. eliminated is true if it was
// satisfied by a rendezvous rather than the head.
func (c *Counters) Popped(eliminated bool) {
	c.pops.Add(1)
	if eliminated {
		c.eliminations.Add(1)
	}
}

// LenHint approximates the current element count as pushes minus pops.
// It is not linearizable: the two counters are read independently.
func (c *Counters) LenHint() int {
	n := c.pushes.Load() - c.pops.Load()
	if n < 0 {
		return 0
	}
	return int(n)
}

// Snapshot returns the raw counters for elimination-rate instrumentation.
func (c *Counters) Snapshot() (pushes, pops, eliminations int64) {
	return c.pushes.Load(), c.pops.Load(), c.eliminations.Load()
}
