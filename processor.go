package gngt

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/vq3go/gngt/epoch"
	"github.com/vq3go/gngt/graph"
	"github.com/vq3go/gngt/stats"
	"github.com/vq3go/gngt/topology"
	"github.com/vq3go/gngt/vecspace"
)

// Processor is the GNG-T driver bound to one graph and one set of model
// traits. Construct with NewProcessor; call Epoch once per batch of
// samples.
type Processor[V any, E any, S any, T vecspace.Space[T]] struct {
	g      *graph.Graph[V, E]
	idx    *topology.Index[V, E]
	traits Traits[V, E, S, T]
	cfg    Config
}

// NewProcessor binds a Processor to g and traits, applying opts over
// DefaultConfig, and takes the first topology snapshot.
func NewProcessor[V any, E any, S any, T vecspace.Space[T]](
	g *graph.Graph[V, E],
	traits Traits[V, E, S, T],
	opts ...Option,
) *Processor[V, E, S, T] {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	p := &Processor[V, E, S, T]{g: g, traits: traits, cfg: cfg}
	p.refreshTopology()

	return p
}

// Graph returns the graph this Processor drives.
func (p *Processor[V, E, S, T]) Graph() *graph.Graph[V, E] { return p.g }

// Index returns the most recent Vertex Index snapshot.
func (p *Processor[V, E, S, T]) Index() *topology.Index[V, E] { return p.idx }

func (p *Processor[V, E, S, T]) refreshTopology() {
	p.idx = topology.Build(p.g)
}

func (p *Processor[V, E, S, T]) observe() {
	p.cfg.Recorder.ObserveGraph(p.g.VertexCount(), p.g.EdgeCount())
}

// Epoch runs one full GNG-T epoch over samples against evo:
//
//  1. Empty sample range: kill every vertex, refresh topology, return.
//  2. One WTM pass.
//  3. If the graph is empty after that pass: seed a single vertex from the
//     first sample, run one WTA pass, refresh topology, return.
//  4. NbWtmBefore-1 additional WTM passes.
//  5. Refresh topology; one BMU pass.
//  6. Evolution.
//  7. Refresh topology.
//  8. NbWtmchlAfter repeats of: CHL pass, refresh topology, WTM pass.
func (p *Processor[V, E, S, T]) Epoch(ctx context.Context, samples []S, evo Evolution[V, E, T]) error {
	start := time.Now()
	defer func() { p.cfg.Recorder.ObserveEpochDuration(time.Since(start)) }()

	if len(samples) == 0 {
		p.g.ForEachVertex(func(ref graph.VertexRef) { p.g.KillVertex(ref) })
		p.refreshTopology()
		p.observe()

		return nil
	}

	if err := epoch.WTM(ctx, p.g, p.idx, p.traits.ModelTraits, samples, p.cfg.MaxNeighbourDist, p.cfg.Epsilon, p.cfg.NbThreads); err != nil {
		return err
	}

	if p.g.VertexCount() == 0 {
		seedProto := p.traits.SampleOf(samples[0])
		p.g.AddVertex(p.traits.SeedVertex(seedProto))
		p.refreshTopology()
		if err := epoch.WTA(ctx, p.g, p.idx, p.traits.ModelTraits, samples, p.cfg.NbThreads); err != nil {
			return err
		}
		p.refreshTopology()
		p.observe()

		return nil
	}

	for i := 0; i < p.cfg.NbWtmBefore-1; i++ {
		if err := epoch.WTM(ctx, p.g, p.idx, p.traits.ModelTraits, samples, p.cfg.MaxNeighbourDist, p.cfg.Epsilon, p.cfg.NbThreads); err != nil {
			return err
		}
	}

	p.refreshTopology()
	bmu, err := epoch.BMU(ctx, p.g, p.idx, p.traits.ModelTraits, samples, p.cfg.NbThreads, p.cfg.MeanStdAlpha)
	if err != nil {
		return err
	}

	clones, kills := p.evolve(evo, bmu)
	p.cfg.Recorder.ObserveEvolution(clones, kills)
	p.cfg.Logger.Debug("evolution step", zap.Int("clones", clones), zap.Int("kills", kills))

	p.refreshTopology()

	for i := 0; i < p.cfg.NbWtmchlAfter; i++ {
		if err := epoch.CHL(ctx, p.g, p.idx, p.traits.ModelTraits, samples, p.cfg.NbThreads); err != nil {
			return err
		}
		p.refreshTopology()
		if err := epoch.WTM(ctx, p.g, p.idx, p.traits.ModelTraits, samples, p.cfg.MaxNeighbourDist, p.cfg.Epsilon, p.cfg.NbThreads); err != nil {
			return err
		}
	}

	p.observe()

	return nil
}

// evolve applies evo's decisions: kills happen immediately, clones are
// deferred until every decision has been read, since cloning adds vertices
// the Vertex Index being iterated does not know about.
func (p *Processor[V, E, S, T]) evolve(evo Evolution[V, E, T], bmu []stats.Welford) (clones, kills int) {
	decisions := evo.Decide(p.g, p.idx, bmu)

	var toClone []graph.VertexRef
	for i, d := range decisions {
		ref := p.idx.At(i)
		switch d {
		case DecisionClone:
			toClone = append(toClone, ref)
		case DecisionKill:
			p.g.KillVertex(ref)
			kills++
		}
	}

	for _, ref := range toClone {
		val, ok := p.g.VertexValue(ref)
		if !ok {
			continue
		}
		p.g.AddVertex(p.traits.ClonePrototype(*val))
		clones++
	}

	return clones, kills
}
