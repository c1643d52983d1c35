package epoch

import (
	"math"

	"github.com/pkg/errors"

	"github.com/vq3go/gngt/graph"
	"github.com/vq3go/gngt/topology"
	"github.com/vq3go/gngt/vecspace"
)

// checkDistance enforces the distance contract: a NaN result is a
// programmer error, not a recoverable condition, so it panics rather than
// propagating as an error value.
func checkDistance(d float64) float64 {
	if math.IsNaN(d) {
		panic(errors.New("epoch: distance returned NaN"))
	}

	return d
}

// nearest returns the index-position of the Vertex Index entry closest to
// sample, breaking ties by lowest position. Reports ok=false only when the
// index is empty or every position's value has gone stale mid-pass.
func nearest[V any, E any, S any, T vecspace.Space[T]](
	g *graph.Graph[V, E],
	idx *topology.Index[V, E],
	traits ModelTraits[V, E, S, T],
	sample T,
) (int, bool) {
	best, bestDist := -1, math.Inf(1)
	for i := 0; i < idx.Len(); i++ {
		val, ok := g.VertexValue(idx.At(i))
		if !ok {
			continue
		}
		if d := checkDistance(traits.Distance(val, sample)); d < bestDist {
			bestDist, best = d, i
		}
	}

	return best, best >= 0
}

// nearestTwo returns the two closest index-positions to sample (p1 nearest,
// p2 second-nearest), ties broken by lowest position at each rank.
func nearestTwo[V any, E any, S any, T vecspace.Space[T]](
	g *graph.Graph[V, E],
	idx *topology.Index[V, E],
	traits ModelTraits[V, E, S, T],
	sample T,
) (p1, p2 int, ok bool) {
	d1, d2 := math.Inf(1), math.Inf(1)
	p1, p2 = -1, -1
	for i := 0; i < idx.Len(); i++ {
		val, vok := g.VertexValue(idx.At(i))
		if !vok {
			continue
		}
		d := checkDistance(traits.Distance(val, sample))
		switch {
		case d < d1:
			d2, p2 = d1, p1
			d1, p1 = d, i
		case d < d2:
			d2, p2 = d, i
		}
	}

	return p1, p2, p1 >= 0 && p2 >= 0
}
