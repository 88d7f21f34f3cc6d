// Copyright (c) 2026 concurrent-go authors
//
// Use of this software is governed by the MIT license included
// in the LICENSE file.

package elimstack

import "testing"

// TestSequentialLIFO exercises Testable Property 1 and scenario S1:
// reduced to a single goroutine, the stack behaves as a plain LIFO.
func TestSequentialLIFO(t *testing.T) {
	s := New[int](4)

	s.Push(1)
	s.Push(2)
	s.Push(3)

	for _, want := range []int{3, 2, 1} {
		got, ok := s.Pop()
		if !ok {
			t.Fatalf("Pop() returned empty, want %d", want)
		}
		if got != want {
			t.Fatalf("Pop() = %d, want %d", got, want)
		}
	}

	if _, ok := s.Pop(); ok {
		t.Fatal("Pop() on drained stack should report empty")
	}
}

// TestSequentialInterleaved pushes and pops in an interleaved pattern on a
// single goroutine, checking LIFO order holds across partial drains too.
func TestSequentialInterleaved(t *testing.T) {
	s := New[string](2)

	s.Push("a")
	s.Push("b")
	if v, ok := s.Pop(); !ok || v != "b" {
		t.Fatalf("Pop() = (%q, %v), want (\"b\", true)", v, ok)
	}
	s.Push("c")
	if v, ok := s.Pop(); !ok || v != "c" {
		t.Fatalf("Pop() = (%q, %v), want (\"c\", true)", v, ok)
	}
	if v, ok := s.Pop(); !ok || v != "a" {
		t.Fatalf("Pop() = (%q, %v), want (\"a\", true)", v, ok)
	}
	if _, ok := s.Pop(); ok {
		t.Fatal("Pop() on drained stack should report empty")
	}
}

// TestLenHintSequential checks the non-linearizable length approximation
// tracks pushes and pops when there is no concurrency to race against.
func TestLenHintSequential(t *testing.T) {
	s := New[int](4)
	if got := s.LenHint(); got != 0 {
		t.Fatalf("LenHint() = %d, want 0", got)
	}
	s.Push(1)
	s.Push(2)
	if got := s.LenHint(); got != 2 {
		t.Fatalf("LenHint() = %d, want 2", got)
	}
	s.Pop()
	if got := s.LenHint(); got != 1 {
		t.Fatalf("LenHint() = %d, want 1", got)
	}
}

// TestArraySizeOne covers scenario S5's claim that correctness is
// unaffected when the elimination array degenerates to a single slot.
func TestArraySizeOne(t *testing.T) {
	s := New[int](1)
	for i := 0; i < 100; i++ {
		s.Push(i)
	}
	seen := make(map[int]bool, 100)
	for i := 0; i < 100; i++ {
		v, ok := s.Pop()
		if !ok {
			t.Fatalf("Pop() returned empty early at iteration %d", i)
		}
		if seen[v] {
			t.Fatalf("value %d popped twice", v)
		}
		seen[v] = true
	}
	if _, ok := s.Pop(); ok {
		t.Fatal("Pop() on drained stack should report empty")
	}
}

// TestNewDefaultsArraySize checks a non-positive arraySize does not panic
// and yields a stack that still behaves correctly.
func TestNewDefaultsArraySize(t *testing.T) {
	s := New[int](0)
	s.Push(7)
	if v, ok := s.Pop(); !ok || v != 7 {
		t.Fatalf("Pop() = (%d, %v), want (7, true)", v, ok)
	}
}
