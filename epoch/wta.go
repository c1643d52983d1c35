package epoch

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/vq3go/gngt/graph"
	"github.com/vq3go/gngt/topology"
	"github.com/vq3go/gngt/vecspace"
)

// vecAccum accumulates a running sum in T plus a count. has distinguishes
// "never touched" from "touched by a sample equal to T's zero value",
// since T's zero value is not always a valid operand to Add (e.g. a nil
// vecspace.PointN).
type vecAccum[T vecspace.Space[T]] struct {
	sum   T
	has   bool
	count uint64
}

func (a *vecAccum[T]) add(v T) {
	if !a.has {
		a.sum, a.has = v, true
	} else {
		a.sum = a.sum.Add(v)
	}
}

// WTA runs one Winner-Take-All pass: every sample is accumulated into its
// single nearest vertex; after reduction each winning prototype becomes the
// mean of its accumulated samples, and vertices that won nothing are left
// untouched.
func WTA[V any, E any, S any, T vecspace.Space[T]](
	ctx context.Context,
	g *graph.Graph[V, E],
	idx *topology.Index[V, E],
	traits ModelTraits[V, E, S, T],
	samples []S,
	nbThreads int,
) error {
	n := idx.Len()
	if n == 0 || len(samples) == 0 {
		return nil
	}
	nbThreads = clampThreads(nbThreads, len(samples))
	ranges := partitionRange(len(samples), nbThreads)
	perThread := make([][]vecAccum[T], nbThreads)

	grp, gctx := errgroup.WithContext(ctx)
	for t := 0; t < nbThreads; t++ {
		t, rng := t, ranges[t]
		grp.Go(func() error {
			acc := make([]vecAccum[T], n)
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
				acc[pos].add(sample)
				acc[pos].count++
			}
			perThread[t] = acc

			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return err
	}

	reduced := make([]vecAccum[T], n)
	for _, acc := range perThread {
		for i := range acc {
			if acc[i].count == 0 {
				continue
			}
			reduced[i].add(acc[i].sum)
			reduced[i].count += acc[i].count
		}
	}

	for i := 0; i < n; i++ {
		if reduced[i].count == 0 {
			continue
		}
		val, ok := g.VertexValue(idx.At(i))
		if !ok {
			continue
		}
		*traits.PrototypeOf(val) = reduced[i].sum.Scale(1 / float64(reduced[i].count))
	}

	return nil
}
