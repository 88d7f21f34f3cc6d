// Copyright (c) 2026 concurrent-go authors
//
// Use of this software is governed by the MIT license included
// in the LICENSE file.

// Package node provides the linked-list node and lock-free Treiber head
// shared by the elimination back-off stack. It is the "Treiber head"
// component described by the core specification: a lock-free LIFO over a
// singly linked list, linearized by a single compare-and-swap on head.
package node

import "sync/atomic"

// Node is one stored value plus the link to the node below it in the
// stack. A Node is constructed before it is published to any shared
// state, is installed into the stack exactly once, and becomes eligible
// for reuse only once the reclamation collaborator confirms no goroutine
// still holds a protected pointer to it (see internal/hazard).
type Node[T any] struct {
	Value T
	next  atomic.Pointer[Node[T]]
}

// Next loads the successor link. Exposed so the reclamation collaborator
// can protect it before dereferencing it from a pop.
func (n *Node[T]) Next() *Node[T] {
	return n.next.Load()
}

// Reset clears a node for reuse from a pool. Must only be called once
// the reclamation collaborator has confirmed the node is unreachable.
func (n *Node[T]) Reset(value T) {
	n.next.Store(nil)
	n.Value = value
}

// Head is the single atomically mutable pointer to the top node, or nil
// for an empty stack. It is the only location that linearizes stack
// operations that do not eliminate (spec.md §4.1).
type Head[T any] struct {
	top atomic.Pointer[Node[T]]
}

// Top returns the current head pointer, the entry point a pop must
// protect before dereferencing its successor.
func (h *Head[T]) Top() *atomic.Pointer[Node[T]] {
	return &h.top
}

// PopStatus is the outcome of a single TryPop attempt.
type PopStatus int

const (
	// PopOK means the CAS succeeded and a value was detached.
	PopOK PopStatus = iota
	// PopEmpty means head was observed nil: the stack was logically
	// empty at that instant.
	PopEmpty
	// PopContended means head was non-nil but the CAS lost a race with
	// another goroutine; the caller should retry or attempt elimination.
	PopContended
)

// TryPush attempts a single CAS installing n as the new head, with n.next
// set to the currently observed head. Never blocks, never allocates.
// Returns true on success, false on CAS failure (contended).
func (h *Head[T]) TryPush(n *Node[T]) bool {
	old := h.top.Load()
	n.next.Store(old)
	return h.top.CompareAndSwap(old, n)
}

// TryPop reads head; if nil, returns PopEmpty. Otherwise it reads the
// successor of the protected node and attempts a single CAS installing
// the successor as the new head. protect is supplied by the caller and
// must perform the full hazard-pointer publish-then-revalidate protocol
// against the given atomic pointer before returning it (see
// internal/hazard.Domain.Protect), so the dereference of old's successor
// below only ever touches a hazard-protected node. The returned release
// func frees the hazard slot and must be called exactly once; TryPop
// calls it itself before returning.
func (h *Head[T]) TryPop(protect func(*atomic.Pointer[Node[T]]) (*Node[T], func())) (value T, status PopStatus, detached *Node[T]) {
	old, release := protect(&h.top)
	defer release()
	if old == nil {
		var zero T
		return zero, PopEmpty, nil
	}
	next := old.next.Load()
	if !h.top.CompareAndSwap(old, next) {
		var zero T
		return zero, PopContended, nil
	}
	return old.Value, PopOK, old
}
