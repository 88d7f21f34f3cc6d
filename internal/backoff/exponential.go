// Copyright (c) 2026 concurrent-go authors
//
// Use of this software is governed by the MIT license included
// in the LICENSE file.

package backoff

// Initial and maximum wait budget (in spin iterations) for the
// Exponential policy, per spec.md §4.3: "wait budget B (starts small)".
const (
	exponentialInitialBudget = 8
	exponentialMaxBudget     = 1024
)

// exponential implements spec.md §4.3's "Exponential" variant: maintains
// a slot-range width W and wait budget B, both starting small and
// doubling (capped) on every aborted elimination attempt before the
// caller returns to the head.
type exponential struct{}

func init() {
	MustRegister("exponential", func() Policy { return exponential{} })
}

func (exponential) Init(arraySize int) AttemptState {
	// RangeWidth starts at 1 regardless of arraySize: the elimination
	// array is never smaller than 1 (internal/rendezvous.NewArray
	// clamps it), so a width of 1 is always in range.
	return AttemptState{RangeWidth: 1, WaitBudget: exponentialInitialBudget}
}

func (exponential) NextSlot(randIntn func(int) int, st *AttemptState) int {
	st.Attempts++
	if st.RangeWidth <= 0 {
		st.RangeWidth = 1
	}
	return randIntn(st.RangeWidth)
}

func (exponential) OnAborted(st *AttemptState, arraySize int) {
	if st.RangeWidth < arraySize {
		st.RangeWidth *= 2
		if st.RangeWidth > arraySize {
			st.RangeWidth = arraySize
		}
	}
	if st.WaitBudget < exponentialMaxBudget {
		st.WaitBudget *= 2
		if st.WaitBudget > exponentialMaxBudget {
			st.WaitBudget = exponentialMaxBudget
		}
	}
}
