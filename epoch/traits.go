package epoch

import "github.com/vq3go/gngt/vecspace"

// ModelTraits groups the closures a caller injects into every processor:
// how to pull a comparable sample out of a raw iterator element, how to
// reach a vertex's mutable prototype, how to measure distance, how to grow
// a new prototype near an existing one, how neighbors are weighted by
// edge-distance, and what a freshly created CHL edge should carry.
//
// S is the type of one raw sample-range element (often the same as T, but
// kept distinct so callers can iterate richer records and project out the
// comparable point via SampleOf). T is the shared vector space in which
// both prototypes and samples live.
type ModelTraits[V any, E any, S any, T vecspace.Space[T]] struct {
	// SampleOf projects one iterator element into the comparable space.
	SampleOf func(S) T

	// PrototypeOf reaches into a vertex value for its mutable prototype.
	PrototypeOf func(*V) *T

	// Distance must return a non-negative, finite value; NaN is a contract
	// violation and panics.
	Distance func(*V, T) float64

	// ClonePrototype produces a fresh vertex value close to, but not
	// identical to, an existing one, for Evolution's growth step.
	ClonePrototype func(V) V

	// NeighbourWeight maps edge-distance to a WTM weight in [0,1]; it must
	// satisfy NeighbourWeight(0) == 1.
	NeighbourWeight func(edgeDistance uint32) float64

	// DefaultEdgeValue constructs the value CHL gives a newly created edge,
	// and the value it overwrites an existing edge with on refresh.
	DefaultEdgeValue func() E
}
