// Copyright (c) 2026 concurrent-go authors
//
// Use of this software is governed by the MIT license included
// in the LICENSE file.

package node

import "testing"

func TestPoolGetRecycle(t *testing.T) {
	p := NewPool[string]()

	n := p.Get("first")
	if n.Value != "first" {
		t.Fatalf("Value = %q, want %q", n.Value, "first")
	}
	n.next.Store(&Node[string]{})

	p.Recycle(n)

	n2 := p.Get("second")
	if n2.Value != "second" {
		t.Fatalf("Value = %q, want %q", n2.Value, "second")
	}
	if n2.Next() != nil {
		t.Fatal("Get should hand back a node reset with a nil next")
	}
}
