// Copyright (c) 2026 concurrent-go authors
//
// Use of this software is governed by the MIT license included
// in the LICENSE file.

// Package backoff implements the back-off policy component described by
// the core specification (spec.md §4.3): on each failed head operation,
// decide whether to retry the head immediately or attempt elimination
// on a slot, and how to widen the attempt under sustained contention.
//
// Two variants are provided, exactly as spec.md §4.3 documents: an
// Alternating policy (fixed slot range, fixed wait budget) and an
// Exponential policy (doubling slot range and wait budget, each capped).
// Both are registered with a name-keyed registry modeled on the
// teacher's interpreter registry (go/tosca/interpreter_registry.go),
// which the root package re-exports so callers can select a policy by
// name via Config, exactly as the teacher selects an interpreter
// implementation by name via NewInterpreter.
//
// This package has no dependency on the root package: Policy
// implementations receive a plain randIntn func rather than an
// interface type, so the registry can live here, alongside Policy,
// without creating an import cycle back to the root package that
// consumes it.
package backoff

// AttemptState is the per-operation transient back-off state described
// by spec.md §3 ("Per-operation transient state"): attempt count,
// current slot-range width, current wait budget. It is strictly local
// to one in-flight push or pop and has no shared visibility.
type AttemptState struct {
	Attempts   int
	RangeWidth int
	WaitBudget int
}

// Policy decides, on each head contention, which slot to try eliminating
// on and how long to wait, and how to react to an aborted elimination
// attempt (spec.md §4.3).
type Policy interface {
	// Init returns the initial attempt state for a new operation,
	// given the elimination array's size.
	Init(arraySize int) AttemptState

	// NextSlot picks the slot index to try next, using randIntn(n) to
	// draw a uniform index in [0, n). It also increments st.Attempts.
	NextSlot(randIntn func(n int) int, st *AttemptState) int

	// OnAborted is called after an elimination attempt aborts (timed
	// out or lost a CAS) to adjust st before the caller retries the
	// head. Alternating leaves st unchanged; Exponential doubles
	// RangeWidth and WaitBudget up to arraySize and a cap, respectively.
	OnAborted(st *AttemptState, arraySize int)
}

// Factory creates a new Policy instance. Policies are typically
// stateless and can return a shared value, but Factory exists (rather
// than registering bare Policy values) so a policy could carry
// per-stack configuration in the future without changing the registry
// shape, matching the teacher's own InterpreterFactory indirection.
type Factory func() Policy
