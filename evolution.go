package gngt

import (
	"math"

	"github.com/vq3go/gngt/epoch"
	"github.com/vq3go/gngt/graph"
	"github.com/vq3go/gngt/stats"
	"github.com/vq3go/gngt/topology"
	"github.com/vq3go/gngt/vecspace"
)

// Decision is Evolution's verdict for one vertex.
type Decision int

const (
	// DecisionNone leaves the vertex untouched.
	DecisionNone Decision = iota
	// DecisionClone marks the vertex as the origin of a new, cloned vertex.
	DecisionClone
	// DecisionKill marks the vertex for killing.
	DecisionKill
)

// Evolution decides, from one epoch's BMU statistics, which vertices to
// clone and which to kill. Decide receives the graph, the Vertex Index the
// BMU pass ran against, and one Welford triple per index position, and
// returns one Decision per position.
type Evolution[V any, E any, T vecspace.Space[T]] interface {
	Decide(g *graph.Graph[V, E], idx *topology.Index[V, E], bmu []stats.Welford) []Decision
}

// DefaultEvolution is the confidence-interval clone/kill policy: a vertex
// with zero wins is killed outright; otherwise a per-vertex confidence
// radius (SigmaCoef * std) plus a global across-vertex spread term
// (SigmaCoef * std-of-means) brackets the target distortion NT = T*Density.
// A local mean confidently above NT means the region is under-covered and
// the vertex is cloned; confidently below means over-covered and the vertex
// is killed; anything in between is left alone.
//
// When a vertex value carries a longitudinally smoothed estimate (it
// implements epoch.MeanStdCarrier and its filter is valid — the BMU pass
// feeds the filter once per epoch, before Evolution runs), the smoothed
// (mean, std) replaces the single-epoch Welford figures in the comparison,
// which damps clone/kill oscillation when per-epoch distortions are noisy.
type DefaultEvolution[V any, E any, T vecspace.Space[T]] struct {
	T         float64
	Density   float64
	SigmaCoef float64
}

// NewDefaultEvolution builds a DefaultEvolution from a Config's T, Density,
// and SigmaCoef fields, the usual way to wire it into Processor.Epoch.
func NewDefaultEvolution[V any, E any, T vecspace.Space[T]](cfg Config) DefaultEvolution[V, E, T] {
	return DefaultEvolution[V, E, T]{T: cfg.T, Density: cfg.Density, SigmaCoef: cfg.SigmaCoef}
}

func (e DefaultEvolution[V, E, T]) Decide(g *graph.Graph[V, E], idx *topology.Index[V, E], bmu []stats.Welford) []Decision {
	n := len(bmu)
	decisions := make([]Decision, n)

	var sum, sumSq float64
	var nonZero int
	for _, w := range bmu {
		if w.Count == 0 {
			continue
		}
		sum += w.Mean
		sumSq += w.Mean * w.Mean
		nonZero++
	}

	var spatial float64
	if nonZero > 0 {
		mu := sum / float64(nonZero)
		variance := sumSq/float64(nonZero) - mu*mu
		if variance < 0 {
			variance = 0
		}
		spatial = math.Sqrt(variance) * e.SigmaCoef
	}

	nt := e.T * e.Density
	for i, w := range bmu {
		if w.Count == 0 {
			decisions[i] = DecisionKill
			continue
		}
		mean, std := e.vertexEstimate(g, idx.At(i), w)
		radius := e.SigmaCoef*std + spatial
		switch {
		case nt < mean-radius:
			decisions[i] = DecisionClone
		case mean+radius < nt:
			decisions[i] = DecisionKill
		default:
			decisions[i] = DecisionNone
		}
	}

	return decisions
}

// vertexEstimate returns the (mean, std) the decision for ref is based on:
// the vertex's smoothed longitudinal estimate when one is carried and
// valid, the current epoch's Welford triple otherwise.
func (e DefaultEvolution[V, E, T]) vertexEstimate(g *graph.Graph[V, E], ref graph.VertexRef, w stats.Welford) (float64, float64) {
	val, ok := g.VertexValue(ref)
	if !ok {
		return w.Mean, w.Std()
	}
	carrier, ok := any(val).(epoch.MeanStdCarrier)
	if !ok {
		return w.Mean, w.Std()
	}
	if mean, std, valid := carrier.MeanStd().Current(); valid {
		return mean, std
	}

	return w.Mean, w.Std()
}
