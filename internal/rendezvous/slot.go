// Copyright (c) 2026 concurrent-go authors
//
// Use of this software is governed by the MIT license included
// in the LICENSE file.

// Package rendezvous implements the elimination array described by the
// core specification (spec.md §4.2): a fixed-size array of exchange
// slots, each brokering a single push/pop rendezvous so a push and a pop
// can hand a value off without ever touching the stack head.
package rendezvous

import (
	"sync/atomic"
)

// state encodes a slot's three logical states (spec.md §4.2's table).
// Encoded as a plain atomic.Uint32 rather than a pointer-tagging scheme:
// spec.md §9 lists "a discriminated record held in a pointer-sized
// atomic" as an acceptable realization, and Go's sync/atomic already
// gives every atomic access sequentially-consistent ordering across
// goroutines, so there is no acquire/release knob left to turn by
// packing bits into a pointer - the state CAS itself is the
// synchronizing operation the spec's memory-ordering notes call for.
type state uint32

const (
	stateEmpty state = iota
	stateOffering
	stateBusy
)

// Slot is one cell of the elimination array (spec.md §4.2). Its
// lifetime equals the array's; it is reused indefinitely and always
// returns to stateEmpty after a completed or aborted rendezvous.
type Slot[T any] struct {
	st    atomic.Uint32
	value atomic.Pointer[T]
}

// OfferPush runs the push side of the slot protocol: publish v and wait
// up to budget spin iterations for a popper to claim it. On success
// (rendezvous completed) it returns true. On failure - the slot was not
// free, the CAS was lost, or the wait budget expired with no popper -
// it returns false and v is logically still owned by the caller.
//
// spin is called once per wait iteration; it is the injected spin-hint
// collaborator (spec.md §6), so tests can make waits deterministic.
func (s *Slot[T]) OfferPush(v T, budget int, spin func(iteration int)) bool {
	if state(s.st.Load()) != stateEmpty {
		return false
	}
	// Publish the value before the state transition: the CAS below is
	// the release point a popper's successful CAS to busy synchronizes
	// with (spec.md §4.2's memory-ordering paragraph).
	s.value.Store(&v)
	if !s.st.CompareAndSwap(uint32(stateEmpty), uint32(stateOffering)) {
		return false
	}

	for i := 0; i < budget; i++ {
		switch state(s.st.Load()) {
		case stateBusy:
			// A popper claimed the offer; it captured the value before
			// transitioning to busy. Finalize by releasing the slot.
			s.st.Store(uint32(stateEmpty))
			s.value.Store(nil)
			return true
		case stateEmpty:
			// Should not happen while still offering under this
			// protocol (only the offering pusher or a claiming popper
			// transitions out of offering), but guard against it.
			return false
		}
		spin(i)
	}

	// Budget expired while still offering: try to reclaim the slot
	// ourselves.
	if s.st.CompareAndSwap(uint32(stateOffering), uint32(stateEmpty)) {
		s.value.Store(nil)
		return false
	}
	// Lost the race: a popper claimed it between our last load and this
	// CAS. Finish the handoff exactly as the busy branch above does.
	// The popper's CAS to busy has already happened (our CAS above
	// observed the slot was no longer offering), so this only spans the
	// brief window before that write becomes visible to us; it is not
	// a new wait phase, so it ignores the caller's budget (spec.md
	// §4.2 step 5).
	for i := 0; state(s.st.Load()) != stateBusy; i++ {
		spin(i)
	}
	s.st.Store(uint32(stateEmpty))
	s.value.Store(nil)
	return true
}

// SeekPop runs the pop side of the slot protocol: look for a pending
// offer and claim it, waiting up to budget spin iterations. On success
// it returns the exchanged value and true. The pusher is responsible
// for clearing the slot back to empty once it observes busy.
func (s *Slot[T]) SeekPop(budget int, spin func(iteration int)) (T, bool) {
	var zero T
	for i := 0; i < budget; i++ {
		if state(s.st.Load()) == stateOffering {
			if s.st.CompareAndSwap(uint32(stateOffering), uint32(stateBusy)) {
				p := s.value.Load()
				if p == nil {
					return zero, false
				}
				return *p, true
			}
			// Lost the race to another popper; the slot is now either
			// busy (someone else claimed it) or will clear to empty
			// (the pusher aborted it first) - either way this seek
			// aborts rather than spinning on someone else's rendezvous.
			return zero, false
		}
		spin(i)
	}
	return zero, false
}
