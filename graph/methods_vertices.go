// File: methods_vertices.go
// Role: vertex lifecycle — AddVertex, VertexValue, KillVertex, ForEachVertex,
// VertexCount.
//
// Concurrency: ForEachVertex is driver-only (see package doc); the point
// operations (AddVertex, VertexValue, KillVertex) lock internally, since
// workers resolve vertex values concurrently during an epoch pass.
package graph

// AddVertex appends a new vertex with the given value and returns its
// handle. O(1); the new vertex has no edges.
func (g *Graph[V, E]) AddVertex(value V) VertexRef {
	g.mu.Lock()
	defer g.mu.Unlock()

	idx := int32(len(g.vertices))
	slot := vertexSlot[V]{value: value, alive: true, prev: g.vTail, next: -1}
	g.vertices = append(g.vertices, slot)

	if g.vTail >= 0 {
		g.vertices[g.vTail].next = idx
	} else {
		g.vHead = idx
	}
	g.vTail = idx

	return VertexRef{idx: idx, gen: slot.gen}
}

// VertexValue resolves ref to a pointer into the live vertex's value, or
// (nil, false) if ref does not currently resolve (never existed, wrong
// generation, or killed).
//
// The returned pointer aliases graph-owned storage; callers may mutate
// through it (this is how WTA/WTM prototype updates and Evolution's clone
// read happen), but must not retain it past the current pass.
func (g *Graph[V, E]) VertexValue(ref VertexRef) (*V, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	slot, ok := g.resolveVertex(ref)
	if !ok {
		return nil, false
	}

	return &slot.value, true
}

// resolveVertex returns the slot for ref if it is alive and the generation
// matches. Callers must hold at least a read lock.
func (g *Graph[V, E]) resolveVertex(ref VertexRef) (*vertexSlot[V], bool) {
	if ref.idx < 0 || int(ref.idx) >= len(g.vertices) {
		return nil, false
	}
	slot := &g.vertices[ref.idx]
	if !slot.alive || slot.gen != ref.gen {
		return nil, false
	}

	return slot, true
}

// KillVertex marks ref's target as dead. Idempotent; killing an already-dead
// or never-resolving ref is a no-op. O(1): the slot is logically gone
// immediately (VertexValue/VertexCount/ForEachVertex stop seeing it), but
// physical excision from the vertex list happens lazily on the next
// traversal that walks past it.
func (g *Graph[V, E]) KillVertex(ref VertexRef) {
	g.mu.Lock()
	defer g.mu.Unlock()

	slot, ok := g.resolveVertex(ref)
	if !ok {
		return
	}
	slot.alive = false
	slot.gen++
}

// unlinkVertex physically removes idx from the vertex list, fixing up the
// list's prev/next pointers and head/tail sentinels. Callers must hold the
// write lock.
func (g *Graph[V, E]) unlinkVertex(idx int32) {
	slot := &g.vertices[idx]
	if slot.prev >= 0 {
		g.vertices[slot.prev].next = slot.next
	} else {
		g.vHead = slot.next
	}
	if slot.next >= 0 {
		g.vertices[slot.next].prev = slot.prev
	} else {
		g.vTail = slot.prev
	}
	slot.edges = nil // release adjacency storage of the pruned vertex
}

// ForEachVertex visits every currently-live vertex exactly once, in list
// order. fn may kill any vertex (including the one it was called with) but
// must not add or remove vertices or edges; doing so is a contract
// violation this type does not detect.
//
// Vertices found dead (by fn, or already dead before the traversal reached
// them) are excised from the list in place, so repeated calls to
// ForEachVertex never re-pay for long-dead slots.
func (g *Graph[V, E]) ForEachVertex(fn func(VertexRef)) {
	idx := g.vHead
	for idx >= 0 {
		slot := &g.vertices[idx]
		next := slot.next
		if !slot.alive {
			g.unlinkVertex(idx)
			idx = next
			continue
		}

		ref := VertexRef{idx: idx, gen: slot.gen}
		fn(ref)

		if !slot.alive {
			g.unlinkVertex(idx)
		}
		idx = next
	}
}

// VertexCount returns the number of currently-live vertices. Implemented as
// a traversal, so it also prunes stale slots it encounters along the way.
func (g *Graph[V, E]) VertexCount() int {
	count := 0
	g.ForEachVertex(func(VertexRef) { count++ })

	return count
}
