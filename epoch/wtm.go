package epoch

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/vq3go/gngt/graph"
	"github.com/vq3go/gngt/topology"
	"github.com/vq3go/gngt/vecspace"
)

// wtmAccum is vecAccum's WTM counterpart: the running sum is of
// weight-scaled samples, and the denominator is a running weight sum
// rather than a plain count.
type wtmAccum[T vecspace.Space[T]] struct {
	sum       T
	has       bool
	weightSum float64
}

func (a *wtmAccum[T]) add(v T) {
	if !a.has {
		a.sum, a.has = v, true
	} else {
		a.sum = a.sum.Add(v)
	}
}

// WTM runs one Winner-Take-Most pass: for each sample, find its BMU, then
// weight every vertex within maxDist edges of the BMU by
// traits.NeighbourWeight(d), dropping any weight below epsilon. After
// reduction each touched prototype becomes the weighted mean of its
// accumulated samples; untouched prototypes are left unchanged. With
// maxDist == 0 (or a neighbourhood collapsing to the BMU alone), WTM
// degenerates exactly to WTA.
func WTM[V any, E any, S any, T vecspace.Space[T]](
	ctx context.Context,
	g *graph.Graph[V, E],
	idx *topology.Index[V, E],
	traits ModelTraits[V, E, S, T],
	samples []S,
	maxDist uint32,
	epsilon float64,
	nbThreads int,
) error {
	n := idx.Len()
	if n == 0 || len(samples) == 0 {
		return nil
	}
	oracle := topology.NewOracle(g)
	nbThreads = clampThreads(nbThreads, len(samples))
	ranges := partitionRange(len(samples), nbThreads)
	perThread := make([][]wtmAccum[T], nbThreads)

	grp, gctx := errgroup.WithContext(ctx)
	for t := 0; t < nbThreads; t++ {
		t, rng := t, ranges[t]
		grp.Go(func() error {
			acc := make([]wtmAccum[T], n)
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
				for _, nb := range oracle.Neighborhood(idx.At(pos), maxDist, traits.NeighbourWeight, epsilon) {
					w := traits.NeighbourWeight(nb.Dist)
					if w < epsilon {
						continue
					}
					vpos, ok := idx.PositionOf(nb.Ref)
					if !ok {
						continue
					}
					acc[vpos].add(sample.Scale(w))
					acc[vpos].weightSum += w
				}
			}
			perThread[t] = acc

			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return err
	}

	reduced := make([]wtmAccum[T], n)
	for _, acc := range perThread {
		for i := range acc {
			if acc[i].weightSum == 0 {
				continue
			}
			reduced[i].add(acc[i].sum)
			reduced[i].weightSum += acc[i].weightSum
		}
	}

	for i := 0; i < n; i++ {
		if reduced[i].weightSum == 0 {
			continue
		}
		val, ok := g.VertexValue(idx.At(i))
		if !ok {
			continue
		}
		*traits.PrototypeOf(val) = reduced[i].sum.Scale(1 / reduced[i].weightSum)
	}

	return nil
}
