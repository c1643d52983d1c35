package topology

import "github.com/vq3go/gngt/graph"

// Index is an ordered, point-in-time snapshot of a graph's live vertices.
// Consumers treat it as immutable for the duration of a pass; Build must be
// called again ("refresh topology") after any structural mutation.
type Index[V any, E any] struct {
	refs []graph.VertexRef
	pos  map[graph.VertexRef]int
}

// Build walks g and captures every currently-live vertex, in traversal
// order, assigning each a stable integer position in [0, N).
func Build[V any, E any](g *graph.Graph[V, E]) *Index[V, E] {
	idx := &Index[V, E]{}
	g.ForEachVertex(func(ref graph.VertexRef) {
		idx.refs = append(idx.refs, ref)
	})

	idx.pos = make(map[graph.VertexRef]int, len(idx.refs))
	for i, ref := range idx.refs {
		idx.pos[ref] = i
	}

	return idx
}

// Len returns the number of live vertices captured at Build time.
func (idx *Index[V, E]) Len() int { return len(idx.refs) }

// At returns the vertex reference at position i.
func (idx *Index[V, E]) At(i int) graph.VertexRef { return idx.refs[i] }

// PositionOf returns ref's stable position and whether ref was present in
// this snapshot.
func (idx *Index[V, E]) PositionOf(ref graph.VertexRef) (int, bool) {
	i, ok := idx.pos[ref]

	return i, ok
}

// Refs returns the captured vertex references in index order. The returned
// slice aliases the index's internal storage and must not be mutated.
func (idx *Index[V, E]) Refs() []graph.VertexRef { return idx.refs }
