// Copyright (c) 2026 concurrent-go authors
//
// Use of this software is governed by the MIT license included
// in the LICENSE file.

package node

import (
	"sync"
	"sync/atomic"
	"testing"
)

// protectDirect is a trivial protect func for tests that don't exercise
// internal/hazard: it loads the pointer once and hands back a no-op
// release. Sufficient for single-goroutine Head tests.
func protectDirect[T any](ptr *atomic.Pointer[Node[T]]) (*Node[T], func()) {
	return ptr.Load(), func() {}
}

func TestTryPushThenTryPop(t *testing.T) {
	var h Head[int]

	n1 := &Node[int]{Value: 1}
	n2 := &Node[int]{Value: 2}

	if !h.TryPush(n1) {
		t.Fatal("TryPush(n1) = false, want true")
	}
	if !h.TryPush(n2) {
		t.Fatal("TryPush(n2) = false, want true")
	}

	v, status, detached := h.TryPop(protectDirect[int])
	if status != PopOK || v != 2 || detached != n2 {
		t.Fatalf("TryPop() = (%d, %v, %p), want (2, PopOK, %p)", v, status, detached, n2)
	}

	v, status, detached = h.TryPop(protectDirect[int])
	if status != PopOK || v != 1 || detached != n1 {
		t.Fatalf("TryPop() = (%d, %v, %p), want (1, PopOK, %p)", v, status, detached, n1)
	}

	_, status, _ = h.TryPop(protectDirect[int])
	if status != PopEmpty {
		t.Fatalf("TryPop() on empty head = %v, want PopEmpty", status)
	}
}

// TestTryPushConcurrentRetryLosesNoNodes drives many goroutines, each
// retrying TryPush against its own node until it succeeds, and checks the
// resulting list contains every pushed value exactly once: a failed
// TryPush call must never install a node it reports as contended.
func TestTryPushConcurrentRetryLosesNoNodes(t *testing.T) {
	const n = 64
	var h Head[int]

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		v := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			nd := &Node[int]{Value: v}
			for !h.TryPush(nd) {
			}
		}()
	}
	wg.Wait()

	seen := make(map[int]bool, n)
	for cur := h.Top().Load(); cur != nil; cur = cur.Next() {
		if seen[cur.Value] {
			t.Fatalf("value %d linked into the list twice", cur.Value)
		}
		seen[cur.Value] = true
	}
	if len(seen) != n {
		t.Fatalf("list contains %d distinct values, want %d", len(seen), n)
	}
}

func TestNodeResetClearsNext(t *testing.T) {
	n := &Node[int]{}
	other := &Node[int]{}
	n.next.Store(other)

	n.Reset(5)

	if n.Value != 5 {
		t.Fatalf("Value = %d, want 5", n.Value)
	}
	if n.Next() != nil {
		t.Fatal("Reset should clear next")
	}
}
