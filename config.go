// Copyright (c) 2026 concurrent-go authors
//
// Use of this software is governed by the MIT license included
// in the LICENSE file.

package elimstack

import "runtime"

// Config is the optional, trailing construction parameter of New,
// mirroring the teacher's own NewInterpreter(name string, config
// ...any) shape (go/tosca/interpreter_registry.go): a single positional
// argument the core specification mandates (the elimination array
// size), plus an optional configuration value.
type Config struct {
	// Policy names a registered back-off policy (PolicyAlternating or
	// PolicyExponential, or a name registered via
	// RegisterPolicyFactory). Empty selects PolicyExponential, per
	// SPEC_FULL.md's Open Question resolution.
	Policy string

	// RandomSource overrides the default pgregory.net/rand-backed
	// index source. Nil selects the default.
	RandomSource RandomSource

	// SpinHint overrides the default busy-wait hint. Nil selects the
	// default.
	SpinHint SpinHint

	// HazardSlots sizes the hazard-pointer domain backing node
	// reclamation. Zero or negative selects a small multiple of the
	// elimination array size.
	HazardSlots int
}

func (c Config) policyName() string {
	if c.Policy == "" {
		return PolicyExponential
	}
	return c.Policy
}

func (c Config) hazardSlots(arraySize int) int {
	if c.HazardSlots > 0 {
		return c.HazardSlots
	}
	return 2 * arraySize
}

// defaultArraySize resolves spec.md §9's "reasonable default... expected
// peak contender count rounded up to a small power of two" to
// GOMAXPROCS, used when New is called with arraySize <= 0.
func defaultArraySize() int {
	n := runtime.GOMAXPROCS(0)
	size := 1
	for size < n {
		size <<= 1
	}
	return size
}
