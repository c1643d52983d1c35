package gngt_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vq3go/gngt"
	"github.com/vq3go/gngt/epoch"
	"github.com/vq3go/gngt/graph"
	"github.com/vq3go/gngt/stats"
	"github.com/vq3go/gngt/vecspace"
)

type vertex struct {
	proto vecspace.Point
}

func pointTraits() gngt.Traits[vertex, struct{}, vecspace.Point, vecspace.Point] {
	return gngt.Traits[vertex, struct{}, vecspace.Point, vecspace.Point]{
		ModelTraits: epoch.ModelTraits[vertex, struct{}, vecspace.Point, vecspace.Point]{
			SampleOf:    func(s vecspace.Point) vecspace.Point { return s },
			PrototypeOf: func(v *vertex) *vecspace.Point { return &v.proto },
			Distance: func(v *vertex, s vecspace.Point) float64 {
				return vecspace.Dist2(v.proto, s)
			},
			ClonePrototype:   func(v vertex) vertex { return vertex{proto: v.proto} },
			NeighbourWeight:  gngt.FlatNeighbourWeight(0.1),
			DefaultEdgeValue: func() struct{} { return struct{}{} },
		},
		SeedVertex: func(p vecspace.Point) vertex { return vertex{proto: p} },
	}
}

// An epoch over an empty graph must seed exactly one vertex from the first
// sample and settle its prototype on the sample mean, with no edges.
func TestEpochSeedsEmptyGraph(t *testing.T) {
	g := graph.New[vertex, struct{}]()
	p := gngt.NewProcessor(g, pointTraits(), gngt.WithPasses(1, 0))
	evo := gngt.NewDefaultEvolution[vertex, struct{}, vecspace.Point](gngt.DefaultConfig())

	samples := []vecspace.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	require.NoError(t, p.Epoch(context.Background(), samples, evo))

	require.Equal(t, 1, g.VertexCount())
	require.Equal(t, 0, g.EdgeCount())

	var seen vertex
	g.ForEachVertex(func(ref graph.VertexRef) {
		val, _ := g.VertexValue(ref)
		seen = *val
	})
	assert.InDelta(t, 1.0/3.0, seen.proto.X, 1e-10)
	assert.InDelta(t, 1.0/3.0, seen.proto.Y, 1e-10)
}

// A vertex that never wins a sample is killed by Evolution, while a winner
// whose distortion sits inside its confidence band survives. The target is
// chosen in the middle of the winner's band: after the WTM pass the winner
// sits at the sample mean, so its per-sample squared distortions average to
// the sample variance, 3.325e-3 for this range.
func TestEpochKillsNeverWonVertex(t *testing.T) {
	g := graph.New[vertex, struct{}]()
	g.AddVertex(vertex{proto: vecspace.Point{X: 0, Y: 0}})
	g.AddVertex(vertex{proto: vecspace.Point{X: 100, Y: 100}})

	cfg := gngt.DefaultConfig()
	cfg.T, cfg.Density = 3.325e-3, 1
	p := gngt.NewProcessor(g, pointTraits(), gngt.WithPasses(1, 0), gngt.WithTarget(cfg.T, cfg.Density))
	evo := gngt.NewDefaultEvolution[vertex, struct{}, vecspace.Point](cfg)

	var samples []vecspace.Point
	for i := 0; i < 20; i++ {
		samples = append(samples, vecspace.Point{X: float64(i) * 0.01, Y: 0})
	}
	require.NoError(t, p.Epoch(context.Background(), samples, evo))

	assert.Equal(t, 1, g.VertexCount())
	var remaining vertex
	g.ForEachVertex(func(ref graph.VertexRef) {
		val, _ := g.VertexValue(ref)
		remaining = *val
	})
	assert.Less(t, remaining.proto.X, 50.0)
}

// With a zero target distortion the kill branch (mean+radius < target) can
// never fire, so any vertex with at least one win survives Evolution.
func TestEvolutionZeroTargetNeverKillsWinners(t *testing.T) {
	g := graph.New[vertex, struct{}]()
	g.AddVertex(vertex{proto: vecspace.Point{X: 0, Y: 0}})

	cfg := gngt.DefaultConfig()
	cfg.T, cfg.Density = 0, 1
	p := gngt.NewProcessor(g, pointTraits(), gngt.WithPasses(1, 0), gngt.WithTarget(0, 1))
	evo := gngt.NewDefaultEvolution[vertex, struct{}, vecspace.Point](cfg)

	samples := []vecspace.Point{{X: 0, Y: 0}, {X: 0.01, Y: 0}, {X: 0, Y: 0.01}}
	require.NoError(t, p.Epoch(context.Background(), samples, evo))

	assert.GreaterOrEqual(t, g.VertexCount(), 1)
}

// With an unreachably high target distortion the clone branch
// (target < mean-radius) can never fire, so the vertex count never grows.
func TestEvolutionHugeTargetNeverClones(t *testing.T) {
	g := graph.New[vertex, struct{}]()
	g.AddVertex(vertex{proto: vecspace.Point{X: 0, Y: 0}})
	g.AddVertex(vertex{proto: vecspace.Point{X: 1, Y: 1}})

	cfg := gngt.DefaultConfig()
	cfg.T, cfg.Density = 1e12, 1
	p := gngt.NewProcessor(g, pointTraits(), gngt.WithPasses(1, 0), gngt.WithTarget(cfg.T, cfg.Density))
	evo := gngt.NewDefaultEvolution[vertex, struct{}, vecspace.Point](cfg)

	samples := []vecspace.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 0.5, Y: 0.5}}
	require.NoError(t, p.Epoch(context.Background(), samples, evo))

	assert.LessOrEqual(t, g.VertexCount(), 2)
}

// An empty sample range kills every vertex.
func TestEpochEmptySamplesKillsAll(t *testing.T) {
	g := graph.New[vertex, struct{}]()
	g.AddVertex(vertex{proto: vecspace.Point{X: 0, Y: 0}})
	g.AddVertex(vertex{proto: vecspace.Point{X: 1, Y: 1}})

	p := gngt.NewProcessor(g, pointTraits())
	evo := gngt.NewDefaultEvolution[vertex, struct{}, vecspace.Point](gngt.DefaultConfig())

	require.NoError(t, p.Epoch(context.Background(), nil, evo))
	assert.Equal(t, 0, g.VertexCount())
}

// Starting from a single vertex over a dense uniform square with a target
// well below the initial distortion, the vertex count grows over the early
// epochs and then settles near the density the target implies.
func TestEpochGrowsTowardTargetDensity(t *testing.T) {
	g := graph.New[vertex, struct{}]()
	g.AddVertex(vertex{proto: vecspace.Point{X: 0.5, Y: 0.5}})

	traits := pointTraits()
	// Clones must not land exactly on their parent: an identical twin never
	// wins a sample (nearest-vertex ties go to the lower index) and is
	// killed the following epoch.
	traits.ClonePrototype = func(v vertex) vertex {
		return vertex{proto: v.proto.Add(vecspace.Point{X: 0.013, Y: 0.007})}
	}

	cfg := gngt.DefaultConfig()
	cfg.T, cfg.Density = 0.01, 1
	p := gngt.NewProcessor(g, traits,
		gngt.WithTarget(cfg.T, cfg.Density),
		gngt.WithPasses(3, 1),
		gngt.WithThreads(4),
	)
	evo := gngt.NewDefaultEvolution[vertex, struct{}, vecspace.Point](cfg)

	var samples []vecspace.Point
	for i := 0; i < 20; i++ {
		for j := 0; j < 20; j++ {
			samples = append(samples, vecspace.Point{
				X: (float64(i) + 0.5) / 20,
				Y: (float64(j) + 0.5) / 20,
			})
		}
	}

	counts := make([]int, 0, 10)
	for e := 0; e < 10; e++ {
		require.NoError(t, p.Epoch(context.Background(), samples, evo))
		counts = append(counts, g.VertexCount())
	}

	// Early growth is monotone: nothing gets killed while every region's
	// distortion is still far above target.
	assert.GreaterOrEqual(t, counts[1], counts[0])
	assert.GreaterOrEqual(t, counts[2], counts[1])
	assert.Greater(t, counts[2], 1)

	// Settled: the count ends in a plausible band for this target and no
	// longer moves by more than a few vertices per epoch.
	final := counts[len(counts)-1]
	assert.GreaterOrEqual(t, final, 4)
	assert.LessOrEqual(t, final, 100)
	delta := final - counts[len(counts)-2]
	if delta < 0 {
		delta = -delta
	}
	assert.LessOrEqual(t, delta, 4)

	// CHL attached the grown vertices topologically.
	assert.Greater(t, g.EdgeCount(), 0)
}

// A graph already at the WTM fixed point for its samples, with the CHL edge
// in place and the target sitting exactly on the per-vertex distortion
// mean, must pass through a full epoch unchanged. Every quantity in this
// construction (cluster offsets of 0.25 around exactly-representable
// centers) is exact in float64, so the assertions can demand equality.
func TestEpochFixedPointIsStable(t *testing.T) {
	g := graph.New[vertex, struct{}]()
	a := g.AddVertex(vertex{proto: vecspace.Point{X: 0, Y: 0}})
	b := g.AddVertex(vertex{proto: vecspace.Point{X: 8, Y: 8}})
	_, err := g.Connect(a, b, struct{}{})
	require.NoError(t, err)

	traits := pointTraits()
	traits.NeighbourWeight = gngt.FlatNeighbourWeight(0)

	cfg := gngt.DefaultConfig()
	cfg.T, cfg.Density = 0.125, 1
	p := gngt.NewProcessor(g, traits,
		gngt.WithTarget(cfg.T, cfg.Density),
		gngt.WithPasses(1, 1),
		gngt.WithThreads(2),
	)
	evo := gngt.NewDefaultEvolution[vertex, struct{}, vecspace.Point](cfg)

	var samples []vecspace.Point
	for _, c := range []vecspace.Point{{X: 0, Y: 0}, {X: 8, Y: 8}} {
		for _, dx := range []float64{-0.25, 0.25} {
			for _, dy := range []float64{-0.25, 0.25} {
				samples = append(samples, vecspace.Point{X: c.X + dx, Y: c.Y + dy})
			}
		}
	}

	require.NoError(t, p.Epoch(context.Background(), samples, evo))

	assert.Equal(t, 2, g.VertexCount())
	assert.Equal(t, 1, g.EdgeCount())

	valA, ok := g.VertexValue(a)
	require.True(t, ok)
	valB, ok := g.VertexValue(b)
	require.True(t, ok)
	assert.Equal(t, vecspace.Point{X: 0, Y: 0}, valA.proto)
	assert.Equal(t, vecspace.Point{X: 8, Y: 8}, valB.proto)
}

type smoothedVertex struct {
	proto vecspace.Point
	ms    stats.OnlineMeanStd
}

func (v *smoothedVertex) MeanStd() *stats.OnlineMeanStd { return &v.ms }

// A vertex carrying a valid longitudinal filter is judged on the smoothed
// estimate, not the current epoch's raw statistic: a filter remembering a
// much higher distortion keeps the clone branch firing even when the
// current epoch alone would sit exactly on target.
func TestEvolutionConsultsSmoothedEstimate(t *testing.T) {
	g := graph.New[smoothedVertex, struct{}]()
	ref := g.AddVertex(smoothedVertex{proto: vecspace.Point{X: 0, Y: 0}})

	val, ok := g.VertexValue(ref)
	require.True(t, ok)
	val.ms.Update(10, 0, 0.3) // remembered distortion far above target

	traits := gngt.Traits[smoothedVertex, struct{}, vecspace.Point, vecspace.Point]{
		ModelTraits: epoch.ModelTraits[smoothedVertex, struct{}, vecspace.Point, vecspace.Point]{
			SampleOf:    func(s vecspace.Point) vecspace.Point { return s },
			PrototypeOf: func(v *smoothedVertex) *vecspace.Point { return &v.proto },
			Distance: func(v *smoothedVertex, s vecspace.Point) float64 {
				return vecspace.Dist2(v.proto, s)
			},
			ClonePrototype: func(v smoothedVertex) smoothedVertex {
				return smoothedVertex{proto: v.proto.Add(vecspace.Point{X: 0.01})}
			},
			NeighbourWeight:  gngt.FlatNeighbourWeight(0),
			DefaultEdgeValue: func() struct{} { return struct{}{} },
		},
		SeedVertex: func(p vecspace.Point) smoothedVertex { return smoothedVertex{proto: p} },
	}

	cfg := gngt.DefaultConfig()
	cfg.T, cfg.Density = 0.125, 1
	p := gngt.NewProcessor(g, traits, gngt.WithTarget(cfg.T, cfg.Density), gngt.WithPasses(1, 0))
	evo := gngt.NewDefaultEvolution[smoothedVertex, struct{}, vecspace.Point](cfg)

	// Every sample's squared distortion is exactly 0.125 == the target, so
	// on raw statistics alone the vertex would be left untouched.
	samples := []vecspace.Point{
		{X: -0.25, Y: -0.25}, {X: 0.25, Y: -0.25}, {X: -0.25, Y: 0.25}, {X: 0.25, Y: 0.25},
	}
	require.NoError(t, p.Epoch(context.Background(), samples, evo))

	assert.Equal(t, 2, g.VertexCount(), "smoothed estimate above target must clone")
}
