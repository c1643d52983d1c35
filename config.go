package gngt

import (
	"math"

	"go.uber.org/zap"

	"github.com/vq3go/gngt/telemetry"
)

// Config holds the driver's tunables. Construct with DefaultConfig and
// adjust via functional Options; the zero Config is not meaningful
// (NbThreads and NbWtmBefore of 0 would make every pass and the epoch loop
// degenerate).
type Config struct {
	// T and Density combine as NT = Density*T, the target mean distortion
	// Evolution compares per-vertex BMU means against.
	T       float64
	Density float64

	// SigmaCoef is the confidence multiplier on standard deviations used by
	// Evolution's clone/kill decision.
	SigmaCoef float64

	// MaxNeighbourDist bounds the Topology Oracle expansion WTM queries;
	// Epsilon is the weight-negligibility cutoff below which a neighbor is
	// not accumulated into.
	MaxNeighbourDist uint32
	Epsilon          float64

	// NbWtmBefore is the number of WTM passes run before the BMU pass and
	// Evolution. Must be >= 1: the first pass is unconditional, and
	// NbWtmBefore-1 more follow it.
	NbWtmBefore int

	// NbWtmchlAfter is the number of CHL+WTM pass pairs run after
	// Evolution.
	NbWtmchlAfter int

	// NbThreads is the worker count each epoch processor partitions the
	// sample range across.
	NbThreads int

	// MeanStdAlpha is the smoothing factor passed to any vertex value's
	// MeanStd().Update during the BMU pass.
	MeanStdAlpha float64

	Logger   *zap.Logger
	Recorder *telemetry.Recorder
}

// DefaultConfig returns a Config with one WTM pass before Evolution, no
// CHL+WTM passes after, a single-worker epoch processor, a WTM
// neighbourhood bounded at edge-distance 1 (the weight per distance comes
// from the traits' NeighbourWeight), and no-op observability.
func DefaultConfig() Config {
	return Config{
		T:                1,
		Density:          1,
		SigmaCoef:        1,
		MaxNeighbourDist: 1,
		Epsilon:          1e-6,
		NbWtmBefore:      1,
		NbWtmchlAfter:    0,
		NbThreads:        1,
		MeanStdAlpha:     0.3,
		Logger:           telemetry.NopLogger(),
		Recorder:         telemetry.NopRecorder(),
	}
}

// Option configures a Config via NewProcessor.
type Option func(*Config)

// WithTarget sets T and Density, whose product is the target mean
// distortion NT Evolution aims for.
func WithTarget(t, density float64) Option {
	return func(c *Config) { c.T, c.Density = t, density }
}

// WithSigmaCoef sets the confidence multiplier Evolution uses around the
// per-vertex and across-vertex distortion estimates.
func WithSigmaCoef(coef float64) Option {
	return func(c *Config) { c.SigmaCoef = coef }
}

// WithNeighbourhood bounds the WTM Topology Oracle query by maximum
// edge-distance and weight-negligibility cutoff.
func WithNeighbourhood(maxDist uint32, epsilon float64) Option {
	return func(c *Config) { c.MaxNeighbourDist, c.Epsilon = maxDist, epsilon }
}

// WithPasses sets the WTM-before and CHL+WTM-after pass counts.
func WithPasses(nbWtmBefore, nbWtmchlAfter int) Option {
	return func(c *Config) { c.NbWtmBefore, c.NbWtmchlAfter = nbWtmBefore, nbWtmchlAfter }
}

// WithThreads sets the worker count each epoch processor partitions over.
func WithThreads(n int) Option {
	return func(c *Config) { c.NbThreads = n }
}

// WithMeanStdAlpha sets the longitudinal smoothing factor passed to
// stats.OnlineMeanStd.Update for vertex values implementing
// epoch.MeanStdCarrier.
func WithMeanStdAlpha(alpha float64) Option {
	return func(c *Config) { c.MeanStdAlpha = alpha }
}

// WithLogger installs a structured logger for driver-level events.
func WithLogger(l *zap.Logger) Option {
	return func(c *Config) {
		if l != nil {
			c.Logger = l
		}
	}
}

// WithRecorder installs a Prometheus recorder for driver-level metrics.
func WithRecorder(r *telemetry.Recorder) Option {
	return func(c *Config) {
		if r != nil {
			c.Recorder = r
		}
	}
}

// FlatNeighbourWeight returns a NeighbourWeight function that is 1 at
// distance 0 and a constant w at every distance beyond. Note this flattens
// the SOM neighborhood rather than decaying it with distance; use
// GaussianNeighbourWeight for the decaying alternative.
func FlatNeighbourWeight(w float64) func(uint32) float64 {
	return func(d uint32) float64 {
		if d == 0 {
			return 1
		}

		return w
	}
}

// GaussianNeighbourWeight returns a NeighbourWeight function decaying as
// exp(-d^2/(2*sigma^2)), satisfying NeighbourWeight(0) == 1.
func GaussianNeighbourWeight(sigma float64) func(uint32) float64 {
	denom := 2 * sigma * sigma

	return func(d uint32) float64 {
		if d == 0 {
			return 1
		}
		dd := float64(d)

		return math.Exp(-dd * dd / denom)
	}
}
