// Copyright (c) 2026 concurrent-go authors
//
// Use of this software is governed by the MIT license included
// in the LICENSE file.

// Package hazard implements the safe-memory-reclamation collaborator
// described by the core specification (spec.md §6, §9(i)): a hazard
// pointer scheme. A goroutine about to dereference a node obtained from
// an atomic pointer first "protects" it by publishing the address into a
// shared slot; a retired node is only handed back for reuse once a scan
// confirms no slot still references it.
//
// Go's garbage collector already prevents the classic address-reuse ABA
// hazard for a bare atomic.Pointer CAS, because a pointer held in a
// parked goroutine's stack keeps the GC from recycling that address.
// The hazard resurfaces only when nodes are explicitly recycled through
// an object pool (internal/node's free-list), which is exactly the case
// this package guards. Domain is generic over the node type N, not over
// the stack's element type, so it has no dependency on internal/node and
// can be exercised directly by its own tests.
package hazard

import (
	"sync"
	"sync/atomic"
)

// Domain owns a fixed collection of hazard-pointer slots and a retire
// list for nodes of type N. One Domain is created per stack instance.
type Domain[N any] struct {
	slots []atomic.Pointer[N]

	// reserved is a distinguished non-nil marker, never a real node
	// address. It serves two purposes, both meaning "this slot is
	// occupied but is not protecting any real node": the transient
	// placeholder acquireSlot installs before a Guard's real value is
	// published, and the value Protect itself publishes when the
	// protected load observed nil (an empty head). The latter matters
	// because slots are considered free exactly when they hold nil
	// (see acquireSlot); if Protect published a literal nil for an
	// empty observation, the slot would look free to a concurrent
	// acquireSlot while the Guard was still outstanding, and the first
	// Guard's Release would then wipe out whatever the second Guard had
	// since published into that same index.
	reserved *N

	mu      sync.Mutex
	retired []*N

	// recycle receives nodes confirmed reclaimable. The stack supplies
	// this so retired nodes flow back into its own node pool rather
	// than being freed outright (spec.md §9's node-pooling supplement).
	recycle func(*N)
}

// NewDomain creates a hazard-pointer domain with capacity slots. A
// reasonable capacity is a small multiple of the expected number of
// concurrently popping goroutines; the root package sizes it together
// with the elimination array.
func NewDomain[N any](capacity int, recycle func(*N)) *Domain[N] {
	if capacity < 1 {
		capacity = 1
	}
	return &Domain[N]{
		slots:    make([]atomic.Pointer[N], capacity),
		reserved: new(N),
		recycle:  recycle,
	}
}

// Guard is a live protection of one pointer value, rented from a Domain
// slot. It must be released exactly once.
type Guard[N any] struct {
	domain *Domain[N]
	slot   int
	ptr    *N
}

// Ptr returns the protected pointer (nil means the protected load
// observed an empty head).
func (g *Guard[N]) Ptr() *N {
	if g == nil {
		return nil
	}
	return g.ptr
}

// Release frees the rented slot, making it available to the next
// Protect call. It does not itself retire or recycle anything.
func (g *Guard[N]) Release() {
	if g == nil || g.domain == nil {
		return
	}
	g.domain.slots[g.slot].Store(nil)
}

// Protect publishes the address currently loaded from ptr into a hazard
// slot, then re-validates it against a fresh load of ptr: if the value
// changed in between the publish and the revalidation (another
// goroutine retired and recycled it), the protocol retries with the
// now-current value. On return, the pointer the Guard holds is
// guaranteed to not be recycled until Release is called.
func (d *Domain[N]) Protect(ptr *atomic.Pointer[N]) *Guard[N] {
	slotIdx := d.acquireSlot()
	for {
		p := ptr.Load()
		d.slots[slotIdx].Store(d.occupant(p))
		if ptr.Load() == p {
			return &Guard[N]{domain: d, slot: slotIdx, ptr: p}
		}
		// p may already be retired and scanned; loop and re-protect
		// the now-current value before anyone dereferences it.
	}
}

// occupant returns the value to publish into a hazard slot to mark it
// occupied while protecting p: p itself when non-nil, or the domain's
// reserved marker when p is nil, so an empty observation still occupies
// its slot instead of looking free to a concurrent acquireSlot.
func (d *Domain[N]) occupant(p *N) *N {
	if p == nil {
		return d.reserved
	}
	return p
}

// acquireSlot is a linear scan with retry; under the expected
// concurrency levels (a small multiple of GOMAXPROCS slots) this is
// cheap and avoids a second indirection layer per goroutine.
func (d *Domain[N]) acquireSlot() int {
	for {
		for i := range d.slots {
			if d.slots[i].Load() == nil && d.slots[i].CompareAndSwap(nil, d.reserved) {
				return i
			}
		}
		// Every slot is momentarily claimed (more concurrent protectors
		// than capacity); spin. This only happens transiently, since
		// Release frees a slot the instant its owning operation
		// finishes its protected dereference.
	}
}

// Retire marks n as logically removed from the stack. It is appended to
// the retire list; once the list grows past a small threshold, a scan
// runs to find nodes no longer protected by any slot and hands those to
// recycle.
func (d *Domain[N]) Retire(n *N) {
	d.mu.Lock()
	d.retired = append(d.retired, n)
	shouldScan := len(d.retired) >= 2*len(d.slots)+1
	d.mu.Unlock()
	if shouldScan {
		d.Scan()
	}
}

// Scan partitions the retire list into nodes still referenced by a live
// hazard slot and nodes that are safe to recycle, and hands the latter
// to the domain's recycle callback.
func (d *Domain[N]) Scan() {
	protected := make(map[*N]struct{}, len(d.slots))
	for i := range d.slots {
		if p := d.slots[i].Load(); p != nil && p != d.reserved {
			protected[p] = struct{}{}
		}
	}

	d.mu.Lock()
	remaining := d.retired[:0]
	var free []*N
	for _, n := range d.retired {
		if _, held := protected[n]; held {
			remaining = append(remaining, n)
		} else {
			free = append(free, n)
		}
	}
	d.retired = remaining
	d.mu.Unlock()

	for _, n := range free {
		if d.recycle != nil {
			d.recycle(n)
		}
	}
}
