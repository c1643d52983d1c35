package epoch

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/vq3go/gngt/graph"
	"github.com/vq3go/gngt/topology"
	"github.com/vq3go/gngt/vecspace"
)

// edgeRequest is an unordered pair of Vertex Index positions, normalized so
// a < b makes it usable as a map key regardless of which side won first or
// second BMU.
type edgeRequest struct{ a, b int }

func newEdgeRequest(p1, p2 int) edgeRequest {
	if p1 > p2 {
		p1, p2 = p2, p1
	}

	return edgeRequest{a: p1, b: p2}
}

// CHL runs one Competitive Hebbian Learning pass: for each sample, the two
// nearest vertices (ties broken by lowest index) generate an edge request.
// After reduction — a per-thread hash set unioned across threads, since
// edge requests are sparse relative to N² — every unique requested
// pair either gets a freshly Connected edge (traits.DefaultEdgeValue) or
// has its existing edge's value overwritten with the same default, which is
// how a caller-side age/tag decoration gets refreshed. CHL never kills an
// edge; that is left entirely to caller-side decoration via AgeTag/
// PruneStaleEdges.
func CHL[V any, E any, S any, T vecspace.Space[T]](
	ctx context.Context,
	g *graph.Graph[V, E],
	idx *topology.Index[V, E],
	traits ModelTraits[V, E, S, T],
	samples []S,
	nbThreads int,
) error {
	n := idx.Len()
	if n < 2 || len(samples) == 0 {
		return nil
	}
	nbThreads = clampThreads(nbThreads, len(samples))
	ranges := partitionRange(len(samples), nbThreads)
	perThread := make([]map[edgeRequest]struct{}, nbThreads)

	grp, gctx := errgroup.WithContext(ctx)
	for t := 0; t < nbThreads; t++ {
		t, rng := t, ranges[t]
		grp.Go(func() error {
			set := make(map[edgeRequest]struct{})
			for _, raw := range samples[rng[0]:rng[1]] {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				sample := traits.SampleOf(raw)
				p1, p2, ok := nearestTwo(g, idx, traits, sample)
				if !ok {
					continue
				}
				set[newEdgeRequest(p1, p2)] = struct{}{}
			}
			perThread[t] = set

			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return err
	}

	union := make(map[edgeRequest]struct{})
	for _, set := range perThread {
		for req := range set {
			union[req] = struct{}{}
		}
	}

	for req := range union {
		u, v := idx.At(req.a), idx.At(req.b)
		if ref, ok := g.FindEdge(u, v); ok {
			if val, ok := g.EdgeValue(ref); ok {
				*val = traits.DefaultEdgeValue()
			}
			continue
		}
		if _, err := g.Connect(u, v, traits.DefaultEdgeValue()); err != nil {
			return err
		}
	}

	return nil
}
