// Copyright (c) 2026 concurrent-go authors
//
// Use of this software is governed by the MIT license included
// in the LICENSE file.

package backoff

import "testing"

func TestAlternatingInit(t *testing.T) {
	p := alternating{}
	st := p.Init(16)
	if st.RangeWidth != 16 {
		t.Fatalf("RangeWidth = %d, want 16", st.RangeWidth)
	}
	if st.WaitBudget != alternatingWaitBudget {
		t.Fatalf("WaitBudget = %d, want %d", st.WaitBudget, alternatingWaitBudget)
	}
	if st.Attempts != 0 {
		t.Fatalf("Attempts = %d, want 0", st.Attempts)
	}
}

func TestAlternatingNextSlotIncrementsAttempts(t *testing.T) {
	p := alternating{}
	st := p.Init(8)
	randIntn := func(n int) int { return n - 1 }

	idx := p.NextSlot(randIntn, &st)
	if idx != 7 {
		t.Fatalf("NextSlot() = %d, want 7", idx)
	}
	if st.Attempts != 1 {
		t.Fatalf("Attempts = %d, want 1", st.Attempts)
	}
}

func TestAlternatingOnAbortedLeavesStateUnchanged(t *testing.T) {
	p := alternating{}
	st := p.Init(8)
	before := st
	p.OnAborted(&st, 8)
	if st != before {
		t.Fatalf("OnAborted changed state: got %+v, want %+v", st, before)
	}
}

func TestAlternatingRegistered(t *testing.T) {
	factory := Get("alternating")
	if factory == nil {
		t.Fatal("\"alternating\" not found in registry")
	}
	if _, ok := factory().(alternating); !ok {
		t.Fatal("registered factory for \"alternating\" did not produce an alternating policy")
	}
}
