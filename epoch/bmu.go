package epoch

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/vq3go/gngt/graph"
	"github.com/vq3go/gngt/stats"
	"github.com/vq3go/gngt/topology"
	"github.com/vq3go/gngt/vecspace"
)

// MeanStdCarrier is implemented by a vertex value that wants its BMU
// statistic smoothed longitudinally across epochs. BMU calls Update once
// per pass for any vertex that won at least one sample; implementing this
// is optional (the core algorithm has no use for it beyond Evolution
// optionally consulting it).
type MeanStdCarrier interface {
	MeanStd() *stats.OnlineMeanStd
}

// BMU runs one Best-Matching-Unit statistics pass: for each sample, find
// its BMU and fold the distortion (the distance to that BMU) into a
// Welford accumulator at that position. Returns one Welford triple per
// Vertex Index position; positions that won no samples keep a zero-count,
// uninformative triple.
//
// meanStdAlpha is the smoothing factor passed to the OnlineMeanStd.Update of
// vertex values that implement MeanStdCarrier; it has no effect on vertices
// that don't.
func BMU[V any, E any, S any, T vecspace.Space[T]](
	ctx context.Context,
	g *graph.Graph[V, E],
	idx *topology.Index[V, E],
	traits ModelTraits[V, E, S, T],
	samples []S,
	nbThreads int,
	meanStdAlpha float64,
) ([]stats.Welford, error) {
	n := idx.Len()
	result := make([]stats.Welford, n)
	if n == 0 || len(samples) == 0 {
		return result, nil
	}
	nbThreads = clampThreads(nbThreads, len(samples))
	ranges := partitionRange(len(samples), nbThreads)
	perThread := make([][]stats.Welford, nbThreads)

	grp, gctx := errgroup.WithContext(ctx)
	for t := 0; t < nbThreads; t++ {
		t, rng := t, ranges[t]
		grp.Go(func() error {
			acc := make([]stats.Welford, n)
			for _, raw := range samples[rng[0]:rng[1]] {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				sample := traits.SampleOf(raw)
				pos, ok := nearest(g, idx, traits, sample)
				if !ok {
					continue
				}
				val, ok := g.VertexValue(idx.At(pos))
				if !ok {
					continue
				}
				acc[pos].Push(checkDistance(traits.Distance(val, sample)))
			}
			perThread[t] = acc

			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	for i := 0; i < n; i++ {
		for _, acc := range perThread {
			result[i] = stats.Merge(result[i], acc[i])
		}
		if result[i].Count == 0 {
			continue
		}
		val, ok := g.VertexValue(idx.At(i))
		if !ok {
			continue
		}
		if carrier, ok := any(val).(MeanStdCarrier); ok {
			carrier.MeanStd().Update(result[i].Mean, result[i].Std(), meanStdAlpha)
		}
	}

	return result, nil
}
