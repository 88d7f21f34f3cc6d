// Copyright (c) 2026 concurrent-go authors
//
// Use of this software is governed by the MIT license included
// in the LICENSE file.

package elimstack

//go:generate mockgen -source collaborators.go -destination collaborators_mock.go -package elimstack

// RandomSource is the random index source collaborator of spec.md §6: a
// fast, per-call source of uniformly distributed integers in [0, n).
// It need not be cryptographic; seeding is the implementation's
// responsibility. The default, used when Config.RandomSource is nil, is
// internal/xrand's pgregory.net/rand-backed pool.
type RandomSource interface {
	Intn(n int) int
}

// SpinHint is the spin/back-off wait collaborator of spec.md §6: a hint
// that the calling goroutine should relax during a busy-wait iteration.
// The default, used when Config.SpinHint is nil, is internal/spin.Hint.
type SpinHint interface {
	Hint(iteration int)
}

// spinHintFunc adapts a plain func to SpinHint.
type spinHintFunc func(iteration int)

func (f spinHintFunc) Hint(iteration int) { f(iteration) }

// randomSourceFunc adapts a plain func to RandomSource.
type randomSourceFunc func(n int) int

func (f randomSourceFunc) Intn(n int) int { return f(n) }
