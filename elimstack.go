// Copyright (c) 2026 concurrent-go authors
//
// Use of this software is governed by the MIT license included
// in the LICENSE file.

// Package elimstack implements a concurrent, unbounded LIFO container that
// is both linearizable and parallel: a lock-free Treiber stack backed by a
// fixed-size elimination array, so that an independent push and pop can
// cancel each other out by exchanging a value directly, without either one
// ever touching the shared head pointer.
//
// Construction takes the elimination array size and an optional Config;
// everything else - the back-off policy, the random index source, the
// spin hint, and the hazard-pointer reclamation domain - is wired to a
// sensible default and can be overridden a piece at a time.
package elimstack

import (
	"sync/atomic"

	"github.com/concurrent-go/elimstack/internal/backoff"
	"github.com/concurrent-go/elimstack/internal/hazard"
	"github.com/concurrent-go/elimstack/internal/node"
	"github.com/concurrent-go/elimstack/internal/rendezvous"
	"github.com/concurrent-go/elimstack/internal/spin"
	"github.com/concurrent-go/elimstack/internal/stats"
	"github.com/concurrent-go/elimstack/internal/xrand"
)

// Stack is an elimination back-off stack of elements of type T. The zero
// value is not usable; construct one with New.
type Stack[T any] struct {
	head   node.Head[T]
	pool   *node.Pool[T]
	array  *rendezvous.Array[T]
	domain *hazard.Domain[node.Node[T]]
	policy backoff.Policy

	rnd  RandomSource
	hint SpinHint

	counters stats.Counters
}

// New constructs a Stack with the given elimination array size. A
// non-positive arraySize selects defaultArraySize, a small power of two
// derived from runtime.GOMAXPROCS, per SPEC_FULL.md's resolution of the
// default-array-size open question. At most one Config may be supplied;
// additional values are ignored.
func New[T any](arraySize int, config ...Config) *Stack[T] {
	var cfg Config
	if len(config) > 0 {
		cfg = config[0]
	}
	if arraySize <= 0 {
		arraySize = defaultArraySize()
	}

	pool := node.NewPool[T]()
	s := &Stack[T]{
		pool:  pool,
		array: rendezvous.NewArray[T](arraySize),
		rnd:   cfg.RandomSource,
		hint:  cfg.SpinHint,
	}
	s.domain = hazard.NewDomain[node.Node[T]](cfg.hazardSlots(arraySize), pool.Recycle)

	factory := GetPolicyFactory(cfg.policyName())
	if factory == nil {
		factory = GetPolicyFactory(PolicyExponential)
	}
	s.policy = factory()

	if s.rnd == nil {
		s.rnd = xrand.New()
	}
	if s.hint == nil {
		s.hint = spinHintFunc(spin.Hint)
	}
	return s
}

// spinFunc adapts the stack's configured SpinHint to the plain func shape
// internal/rendezvous and internal/backoff expect.
func (s *Stack[T]) spinFunc() func(int) {
	return s.hint.Hint
}

// Push inserts v, returning once it has been installed at the head or
// handed off to a concurrent pop through the elimination array.
func (s *Stack[T]) Push(v T) {
	n := s.pool.Get(v)
	st := s.policy.Init(s.array.Len())
	spinFn := s.spinFunc()

	for {
		if s.head.TryPush(n) {
			s.counters.Pushed()
			return
		}

		idx := s.policy.NextSlot(s.rnd.Intn, &st)
		if s.array.OfferPush(idx, v, st.WaitBudget, spinFn) {
			// The value was handed off directly to a popper; the node
			// reserved for the head path was never installed.
			s.pool.Recycle(n)
			s.counters.Pushed()
			return
		}
		s.policy.OnAborted(&st, s.array.Len())
	}
}

// protect adapts the stack's hazard domain into the (pointer, release)
// shape node.Head.TryPop requires.
func (s *Stack[T]) protect(ptr *atomic.Pointer[node.Node[T]]) (*node.Node[T], func()) {
	g := s.domain.Protect(ptr)
	return g.Ptr(), g.Release
}

// Pop removes and returns the top value, or reports false if the stack was
// observed empty. Per spec.md §4.3, an empty-stack observation at the
// head is reported immediately rather than retried against the head or
// the elimination array: a push that completes after that observation
// is left for a later Pop call.
func (s *Stack[T]) Pop() (value T, ok bool) {
	st := s.policy.Init(s.array.Len())
	spinFn := s.spinFunc()

	for {
		v, status, detached := s.head.TryPop(s.protect)
		switch status {
		case node.PopOK:
			s.domain.Retire(detached)
			s.counters.Popped(false)
			return v, true
		case node.PopEmpty:
			var zero T
			return zero, false
		}

		idx := s.policy.NextSlot(s.rnd.Intn, &st)
		if v, eliminated := s.array.SeekPop(idx, st.WaitBudget, spinFn); eliminated {
			s.counters.Popped(true)
			return v, true
		}
		s.policy.OnAborted(&st, s.array.Len())
	}
}

// PopOrErr is Pop for callers who prefer to plumb emptiness through an
// existing errors.Is-based error-handling path rather than a boolean:
// it returns ErrEmpty instead of ok=false.
func (s *Stack[T]) PopOrErr() (T, error) {
	v, ok := s.Pop()
	if !ok {
		return v, ErrEmpty
	}
	return v, nil
}

// LenHint returns an unsynchronized approximation of the current element
// count. Not linearizable: it is derived from two independently read
// counters (spec.md §6).
func (s *Stack[T]) LenHint() int {
	return s.counters.LenHint()
}

// Stats returns the raw push, pop, and elimination counters, supplementing
// the core contract with the elimination-rate instrumentation SPEC_FULL.md
// adds for exercising Testable Property 5 (elimination liveness).
func (s *Stack[T]) Stats() (pushes, pops, eliminations int64) {
	return s.counters.Snapshot()
}
