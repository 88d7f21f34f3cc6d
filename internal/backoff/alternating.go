// Copyright (c) 2026 concurrent-go authors
//
// Use of this software is governed by the MIT license included
// in the LICENSE file.

package backoff

// alternatingWaitBudget is the small fixed wait budget (in spin
// iterations) spec.md §4.3 describes for the Alternating policy.
const alternatingWaitBudget = 32

// alternating implements spec.md §4.3's "Alternating" variant: on each
// head contention, try elimination once on a uniformly random slot with
// a small fixed wait budget; on abort, return to the head unchanged.
type alternating struct{}

func init() {
	MustRegister("alternating", func() Policy { return alternating{} })
}

func (alternating) Init(arraySize int) AttemptState {
	return AttemptState{RangeWidth: arraySize, WaitBudget: alternatingWaitBudget}
}

func (alternating) NextSlot(randIntn func(int) int, st *AttemptState) int {
	st.Attempts++
	if st.RangeWidth <= 0 {
		st.RangeWidth = 1
	}
	return randIntn(st.RangeWidth)
}

func (alternating) OnAborted(st *AttemptState, arraySize int) {
	// Fixed range and budget: nothing to widen.
}
