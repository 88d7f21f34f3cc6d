// Copyright (c) 2026 concurrent-go authors
//
// Use of this software is governed by the MIT license included
// in the LICENSE file.

// Package xrand provides the random index source collaborator described
// by the core specification (spec.md §6, §9): a per-call source of
// uniformly distributed integers, fast and not required to be
// cryptographic, that seeds itself so callers never need a global seed.
//
// This mirrors the teacher's own use of pgregory.net/rand for exactly
// this purpose (go/ct/driver/coordination.go: "rand := rand.New(seed)",
// re-seeded per unit of work). Rather than one long-lived generator per
// goroutine - Go has no cheap notion of "current goroutine identity" to
// key a map by - a small pool of generators is used, each seeded from an
// atomic nonce counter when the pool creates it. A generator is not
// reseeded when it is checked out again; it continues its own stream.
// Concurrent callers never share a generator, and no per-goroutine
// bookkeeping is needed.
package xrand

import (
	"sync"
	"sync/atomic"
	"time"

	"pgregory.net/rand"
)

var nonce atomic.Uint64

func init() {
	nonce.Store(uint64(time.Now().UnixNano()))
}

// Source is the RandomSource default implementation.
type Source struct {
	pool sync.Pool
}

// New creates a pooled random index source.
func New() *Source {
	s := &Source{}
	s.pool.New = func() any {
		return rand.New(nonce.Add(1))
	}
	return s
}

// Intn returns a uniformly distributed integer in [0, n). Matches the
// elimstack.RandomSource contract.
func (s *Source) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	r := s.pool.Get().(*rand.Rand)
	defer s.pool.Put(r)
	return r.Intn(n)
}
