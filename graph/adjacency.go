// File: adjacency.go
// Role: adjacency-list convergence. A vertex's adjacency list is a superset
// of its true incident edges (Connect appends; nothing ever proactively
// removes a stale entry); pruneIncident walks it once and converges it to
// exactly the live, valid edges touching that vertex, dropping each stale
// ref the moment it is found dead.
package graph

// pruneIncident rewrites vertexSlot.edges in place to contain only refs that
// currently resolveEdge successfully, and returns that same live set.
// Callers must hold the write lock.
func (g *Graph[V, E]) pruneIncident(v VertexRef) []EdgeRef {
	slot, ok := g.resolveVertex(v)
	if !ok {
		return nil
	}

	live := slot.edges[:0]
	for _, ref := range slot.edges {
		if _, ok := g.resolveEdge(ref); ok {
			live = append(live, ref)
		}
	}
	slot.edges = live

	return slot.edges
}

// IncidentEdges returns the currently-live edges touching v, converging v's
// adjacency list as a side effect. Used by the topology package's BFS
// expansion to walk the graph one hop at a time.
func (g *Graph[V, E]) IncidentEdges(v VertexRef) []EdgeRef {
	g.mu.Lock()
	defer g.mu.Unlock()

	live := g.pruneIncident(v)
	out := make([]EdgeRef, len(live))
	copy(out, live)

	return out
}
