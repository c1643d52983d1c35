package epoch

import "github.com/vq3go/gngt/graph"

// AgeTag is a ready-made edge decoration for CHL-driven edge aging: every
// CHL refresh of an edge resets Age to zero (via DefaultEdgeValue), and
// PruneStaleEdges kills any edge that has gone more than maxAge consecutive
// calls without a refresh.
type AgeTag struct {
	Age int
}

// NewAgeTag returns the zero-age tag, suitable as a ModelTraits
// DefaultEdgeValue for graphs decorated with AgeTag.
func NewAgeTag() AgeTag { return AgeTag{} }

// PruneStaleEdges increments every live edge's Age by one and kills edges
// whose Age exceeds maxAge. Intended to be called once per epoch, after a
// CHL pass, so edges CHL keeps re-requesting never age out while ones the
// topology has abandoned eventually do.
func PruneStaleEdges[V any](g *graph.Graph[V, AgeTag], maxAge int) {
	g.ForEachEdge(func(ref graph.EdgeRef) {
		val, ok := g.EdgeValue(ref)
		if !ok {
			return
		}
		val.Age++
		if val.Age > maxAge {
			g.KillEdge(ref)
		}
	})
}
