package topology

import "github.com/vq3go/gngt/graph"

// Neighbor pairs a vertex reference with its edge-distance from the
// Oracle's source vertex.
type Neighbor struct {
	Ref  graph.VertexRef
	Dist uint32
}

// Oracle answers bounded-neighborhood queries over a graph by breadth-first
// expansion. An Oracle holds no state between calls to Neighborhood: each
// call rediscovers the neighborhood from scratch, so a query is always
// answered against the graph as it stands.
type Oracle[V any, E any] struct {
	g *graph.Graph[V, E]
}

// NewOracle returns an Oracle querying g.
func NewOracle[V any, E any](g *graph.Graph[V, E]) *Oracle[V, E] {
	return &Oracle[V, E]{g: g}
}

type frontierItem struct {
	ref  graph.VertexRef
	dist uint32
}

// Neighborhood performs a breadth-first expansion from s and returns every
// (v, d) pair with d <= maxDist, stopping early at a distance once
// weight(d) < epsilon (the WTM negligibility cutoff) since no larger
// distance can contribute with a monotonically non-increasing weight.
// killed or orphaned vertices and edges are treated as absent; visiting a
// vertex converges its adjacency list via graph.IncidentEdges.
//
// Neighbors at the same distance are produced in adjacency-list order;
// callers must not depend on that order.
func (o *Oracle[V, E]) Neighborhood(s graph.VertexRef, maxDist uint32, weight func(uint32) float64, epsilon float64) []Neighbor {
	if _, ok := o.g.VertexValue(s); !ok {
		return nil
	}

	visited := map[graph.VertexRef]bool{s: true}
	queue := []frontierItem{{ref: s, dist: 0}}
	out := make([]Neighbor, 0, 8)

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		out = append(out, Neighbor{Ref: item.ref, Dist: item.dist})

		nextDist := item.dist + 1
		if nextDist > maxDist || weight(nextDist) < epsilon {
			continue
		}

		for _, eref := range o.g.IncidentEdges(item.ref) {
			u, v, ok := o.g.Endpoints(eref)
			if !ok {
				continue
			}
			other := u
			if u == item.ref {
				other = v
			}
			if visited[other] {
				continue
			}
			if _, ok := o.g.VertexValue(other); !ok {
				continue
			}
			visited[other] = true
			queue = append(queue, frontierItem{ref: other, dist: nextDist})
		}
	}

	return out
}
