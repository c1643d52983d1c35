package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder tracks the driver's vertex/edge lifecycle and per-epoch timing.
// The zero value is not usable; construct with NewRecorder.
type Recorder struct {
	registry *prometheus.Registry

	vertexCount   prometheus.Gauge
	edgeCount     prometheus.Gauge
	clonesTotal   prometheus.Counter
	killsTotal    prometheus.Counter
	epochDuration prometheus.Histogram
}

// NewRecorder builds a Recorder against its own private registry (rather
// than prometheus's global DefaultRegisterer) so multiple gngt.Processor
// instances — e.g. one per test case — never collide on registration.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	r := &Recorder{
		registry: reg,
		vertexCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "gngt_vertices",
			Help: "Current live vertex count.",
		}),
		edgeCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "gngt_edges",
			Help: "Current live edge count.",
		}),
		clonesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gngt_evolution_clones_total",
			Help: "Vertices added by Evolution.",
		}),
		killsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gngt_evolution_kills_total",
			Help: "Vertices killed by Evolution.",
		}),
		epochDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "gngt_epoch_duration_seconds",
			Help:    "Wall-clock duration of one driver Epoch call.",
			Buckets: prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(r.vertexCount, r.edgeCount, r.clonesTotal, r.killsTotal, r.epochDuration)

	return r
}

// Registry exposes the private registry so a host can mount it behind its
// own /metrics handler.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// ObserveGraph records the current vertex and edge counts.
func (r *Recorder) ObserveGraph(vertices, edges int) {
	r.vertexCount.Set(float64(vertices))
	r.edgeCount.Set(float64(edges))
}

// ObserveEvolution records one Evolution step's clone/kill totals.
func (r *Recorder) ObserveEvolution(clones, kills int) {
	r.clonesTotal.Add(float64(clones))
	r.killsTotal.Add(float64(kills))
}

// ObserveEpochDuration records one Epoch call's wall-clock duration.
func (r *Recorder) ObserveEpochDuration(d time.Duration) {
	r.epochDuration.Observe(d.Seconds())
}

// NopRecorder returns a Recorder that is valid but mounted on its own
// throwaway registry, for callers that want the Processor call sites to
// stay unconditional without paying attention to metrics at all.
func NopRecorder() *Recorder { return NewRecorder() }
