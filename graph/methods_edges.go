// File: methods_edges.go
// Role: edge lifecycle — Connect, FindEdge, EdgeValue, Endpoints, KillEdge,
// ForEachEdge, EdgeCount.
//
// An edge is "invalid" if either endpoint no longer resolves to a live
// vertex; invalid edges self-kill the moment something inspects them
// (resolveEdge, ForEachEdge), which is how a killed vertex's incident edges
// become unreachable without KillVertex ever walking the vertex's adjacency
// list itself.
package graph

// Connect appends a new edge between u and v, registering a weak back
// reference in both endpoints' adjacency lists. Returns ErrDeadEndpoint if
// either u or v does not currently resolve to a live vertex — this is a
// pre-checkable precondition (callers can gate on VertexValue first), so it
// is reported as an error rather than a panic.
//
// No uniqueness check is performed: callers that need "at most one edge per
// pair" should consult FindEdge first.
func (g *Graph[V, E]) Connect(u, v VertexRef, value E) (EdgeRef, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.resolveVertex(u); !ok {
		return NilEdgeRef, ErrDeadEndpoint
	}
	if _, ok := g.resolveVertex(v); !ok {
		return NilEdgeRef, ErrDeadEndpoint
	}

	idx := int32(len(g.edges))
	slot := edgeSlot[E]{value: value, alive: true, v1: u, v2: v, prev: g.eTail, next: -1}
	g.edges = append(g.edges, slot)

	if g.eTail >= 0 {
		g.edges[g.eTail].next = idx
	} else {
		g.eHead = idx
	}
	g.eTail = idx

	ref := EdgeRef{idx: idx, gen: slot.gen}
	g.vertices[u.idx].edges = append(g.vertices[u.idx].edges, ref)
	g.vertices[v.idx].edges = append(g.vertices[v.idx].edges, ref)

	return ref, nil
}

// resolveEdge returns the slot for ref if it is alive, its generation
// matches, and both endpoints still resolve to live vertices. An edge that
// fails the endpoint check is killed on the spot (self-kill on inspection).
// Callers must hold the write lock (resolveEdge may mutate alive/gen).
func (g *Graph[V, E]) resolveEdge(ref EdgeRef) (*edgeSlot[E], bool) {
	if ref.idx < 0 || int(ref.idx) >= len(g.edges) {
		return nil, false
	}
	slot := &g.edges[ref.idx]
	if !slot.alive || slot.gen != ref.gen {
		return nil, false
	}
	if _, ok := g.resolveVertex(slot.v1); !ok {
		slot.alive = false
		slot.gen++
		return nil, false
	}
	if _, ok := g.resolveVertex(slot.v2); !ok {
		slot.alive = false
		slot.gen++
		return nil, false
	}

	return slot, true
}

// EdgeValue resolves ref to a pointer into the live edge's value, or
// (nil, false) if ref does not currently resolve.
func (g *Graph[V, E]) EdgeValue(ref EdgeRef) (*E, bool) {
	g.mu.Lock() // resolveEdge may self-kill, which mutates state
	defer g.mu.Unlock()

	slot, ok := g.resolveEdge(ref)
	if !ok {
		return nil, false
	}

	return &slot.value, true
}

// Endpoints returns ref's two endpoint vertex references, or
// (NilVertexRef, NilVertexRef, false) if ref is invalid.
func (g *Graph[V, E]) Endpoints(ref EdgeRef) (VertexRef, VertexRef, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	slot, ok := g.resolveEdge(ref)
	if !ok {
		return NilVertexRef, NilVertexRef, false
	}

	return slot.v1, slot.v2, true
}

// FindEdge scans the smaller of u's and v's adjacency lists and returns the
// first live edge linking them, or (NilEdgeRef, false) if none exists.
// Safe for concurrent callers provided no structural mutation
// (AddVertex/Connect/Kill*) is happening concurrently.
func (g *Graph[V, E]) FindEdge(u, v VertexRef) (EdgeRef, bool) {
	g.mu.Lock() // resolveEdge may self-kill invalid edges it walks past
	defer g.mu.Unlock()

	uSlot, ok := g.resolveVertex(u)
	if !ok {
		return NilEdgeRef, false
	}
	vSlot, ok := g.resolveVertex(v)
	if !ok {
		return NilEdgeRef, false
	}

	from := u
	if len(vSlot.edges) < len(uSlot.edges) {
		from = v
	}

	for _, ref := range g.pruneIncident(from) {
		slot := &g.edges[ref.idx]
		if (slot.v1 == u && slot.v2 == v) || (slot.v1 == v && slot.v2 == u) {
			return ref, true
		}
	}

	return NilEdgeRef, false
}

// KillEdge marks ref's target as dead. Idempotent.
func (g *Graph[V, E]) KillEdge(ref EdgeRef) {
	g.mu.Lock()
	defer g.mu.Unlock()

	slot, ok := g.resolveEdgeNoEndpointCheck(ref)
	if !ok {
		return
	}
	slot.alive = false
	slot.gen++
}

// resolveEdgeNoEndpointCheck is resolveEdge without the endpoint-liveness
// self-kill, used by KillEdge: a caller may legitimately kill an edge whose
// endpoint already died (that is exactly the orphan case), and doing so
// must not be treated as "already gone, nothing to do" in a way that skips
// the intended kill of an edge that still happens to be otherwise live.
func (g *Graph[V, E]) resolveEdgeNoEndpointCheck(ref EdgeRef) (*edgeSlot[E], bool) {
	if ref.idx < 0 || int(ref.idx) >= len(g.edges) {
		return nil, false
	}
	slot := &g.edges[ref.idx]
	if !slot.alive || slot.gen != ref.gen {
		return nil, false
	}

	return slot, true
}

// unlinkEdge physically removes idx from the edge list. Callers must hold
// the write lock.
func (g *Graph[V, E]) unlinkEdge(idx int32) {
	slot := &g.edges[idx]
	if slot.prev >= 0 {
		g.edges[slot.prev].next = slot.next
	} else {
		g.eHead = slot.next
	}
	if slot.next >= 0 {
		g.edges[slot.next].prev = slot.prev
	} else {
		g.eTail = slot.prev
	}
}

// ForEachEdge visits every currently-live, valid edge exactly once, in list
// order. fn may kill any edge (including the one it was called with) but
// must not add or remove vertices or edges. Edges whose endpoints no longer
// resolve are excised as orphans without ever calling fn, so killing a
// vertex inside ForEachVertex makes its incident edges unreachable from the
// very next ForEachEdge traversal.
func (g *Graph[V, E]) ForEachEdge(fn func(EdgeRef)) {
	idx := g.eHead
	for idx >= 0 {
		slot := &g.edges[idx]
		next := slot.next

		if !slot.alive {
			g.unlinkEdge(idx)
			idx = next
			continue
		}
		if _, ok := g.resolveVertex(slot.v1); !ok {
			slot.alive = false
			slot.gen++
			g.unlinkEdge(idx)
			idx = next
			continue
		}
		if _, ok := g.resolveVertex(slot.v2); !ok {
			slot.alive = false
			slot.gen++
			g.unlinkEdge(idx)
			idx = next
			continue
		}

		ref := EdgeRef{idx: idx, gen: slot.gen}
		fn(ref)

		if !slot.alive {
			g.unlinkEdge(idx)
		}
		idx = next
	}
}

// EdgeCount returns the number of currently-live, valid edges. Implemented
// as a traversal, so it also prunes orphans it encounters.
func (g *Graph[V, E]) EdgeCount() int {
	count := 0
	g.ForEachEdge(func(EdgeRef) { count++ })

	return count
}
