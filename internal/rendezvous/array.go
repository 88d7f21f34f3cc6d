// Copyright (c) 2026 concurrent-go authors
//
// Use of this software is governed by the MIT license included
// in the LICENSE file.

package rendezvous

// Array is the fixed-size elimination array of spec.md §4.2: a
// contiguous collection of independent rendezvous slots. There are no
// inter-slot invariants.
type Array[T any] struct {
	slots []Slot[T]
}

// NewArray builds an elimination array of the given size. size is
// clamped to at least 1, per spec.md §8's Testable Property 5 ("correct
// ... when the elimination array size is 1").
func NewArray[T any](size int) *Array[T] {
	if size < 1 {
		size = 1
	}
	return &Array[T]{slots: make([]Slot[T], size)}
}

// Len returns the number of slots in the array.
func (a *Array[T]) Len() int {
	return len(a.slots)
}

// OfferPush attempts a push-side rendezvous on the slot at idx.
func (a *Array[T]) OfferPush(idx int, v T, budget int, spin func(int)) bool {
	return a.slots[idx%len(a.slots)].OfferPush(v, budget, spin)
}

// SeekPop attempts a pop-side rendezvous on the slot at idx.
func (a *Array[T]) SeekPop(idx int, budget int, spin func(int)) (T, bool) {
	return a.slots[idx%len(a.slots)].SeekPop(budget, spin)
}
