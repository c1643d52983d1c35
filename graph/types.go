// Package graph is a mutable, generically-valued graph substrate with
// kill-based lazy deletion: killing a vertex or edge makes it logically
// absent immediately (counts, lookups, and traversals skip it), while
// physical removal happens on the next traversal that walks past it.
//
// Vertices and edges live in append-only arenas and are addressed by
// (index, generation) handles; killing a slot bumps its generation, so any
// outstanding handle silently stops resolving. Adjacency lists hold edge
// handles that may go stale the same way and are pruned lazily on
// traversal.
//
// Mutation-during-iteration contract: the ONLY structural mutation a
// ForEachVertex/ForEachEdge callback may perform is killing elements.
// Adding or removing elements inside a callback is a contract violation
// this package does not detect. Traversals themselves are driver-only:
// they must not run concurrently with each other or with any mutation.
package graph

import (
	"sync"

	"github.com/pkg/errors"
)

// Sentinel errors for graph operations.
var (
	// ErrDeadEndpoint indicates Connect was called with a vertex reference
	// that does not resolve to a live vertex in this graph.
	ErrDeadEndpoint = errors.New("graph: connect endpoint is not a live vertex")
)

// VertexRef is a stable handle to a vertex slot: an index into the graph's
// internal arena plus the generation the slot held when this ref was
// issued. A ref obtained before the vertex was killed compares unequal to
// the slot's current generation and therefore fails to resolve, the same
// way a std::weak_ptr fails to lock() after its target is freed.
type VertexRef struct {
	idx int32
	gen uint32
}

// EdgeRef is the edge-side counterpart of VertexRef.
type EdgeRef struct {
	idx int32
	gen uint32
}

// NilVertexRef is the sentinel VertexRef (index -1); it never resolves to a
// live vertex in any graph.
var NilVertexRef = VertexRef{idx: -1}

// NilEdgeRef is the sentinel EdgeRef (index -1); it never resolves to a live
// edge.
var NilEdgeRef = EdgeRef{idx: -1}

// IsNil reports whether r is the nil vertex reference.
func (r VertexRef) IsNil() bool { return r.idx < 0 }

// IsNil reports whether r is the nil edge reference.
func (r EdgeRef) IsNil() bool { return r.idx < 0 }

// vertexSlot is one arena entry for a vertex. prev/next form an intrusive
// doubly-linked list over live-at-some-point slots so traversal does not pay
// for slots that were pruned long ago; -1 is the list sentinel.
type vertexSlot[V any] struct {
	value V
	gen   uint32
	alive bool
	edges []EdgeRef
	prev  int32
	next  int32
}

// edgeSlot is one arena entry for an edge.
type edgeSlot[E any] struct {
	value  E
	gen    uint32
	alive  bool
	v1, v2 VertexRef
	prev   int32
	next   int32
}

// Graph is the in-memory graph G=(V,E) grown and pruned by the GNG-T driver.
// V is the vertex value type (prototype plus any decoration); E is the edge
// value type (may be struct{}).
//
// Zero value is not usable; construct with New.
type Graph[V any, E any] struct {
	mu sync.RWMutex // guards FindEdge against concurrent structural mutation

	vertices []vertexSlot[V]
	edges    []edgeSlot[E]

	vHead, vTail int32 // vertex list sentinels, -1 when empty
	eHead, eTail int32 // edge list sentinels, -1 when empty
}

// New returns an empty Graph.
func New[V any, E any]() *Graph[V, E] {
	return &Graph[V, E]{
		vHead: -1, vTail: -1,
		eHead: -1, eTail: -1,
	}
}
