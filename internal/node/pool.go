// Copyright (c) 2026 concurrent-go authors
//
// Use of this software is governed by the MIT license included
// in the LICENSE file.

package node

import "sync"

// Pool is a free-list of Node[T] values, grounded on the teacher's own
// stack-instance pool (go/interpreter/lfvm/stack.go's stackPool,
// NewStack, ReturnStack) - "to mitigate [allocation] overhead". Here it
// pools individual list nodes instead of whole stacks.
//
// A node must never be returned to Pool until the reclamation
// collaborator (internal/hazard) confirms no goroutine still holds a
// hazard-protected pointer to it; Recycle is the func to hand to
// hazard.NewDomain for exactly that purpose.
type Pool[T any] struct {
	pool sync.Pool
}

// NewPool creates an empty node pool.
func NewPool[T any]() *Pool[T] {
	p := &Pool[T]{}
	p.pool.New = func() any { return new(Node[T]) }
	return p
}

// Get returns a node carrying value, either freshly allocated or reused
// from the pool.
func (p *Pool[T]) Get(value T) *Node[T] {
	n := p.pool.Get().(*Node[T])
	n.Reset(value)
	return n
}

// Recycle returns n to the pool. Intended as the recycle callback passed
// to hazard.NewDomain.
func (p *Pool[T]) Recycle(n *Node[T]) {
	p.pool.Put(n)
}
