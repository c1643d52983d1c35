// Package gngt is an online, topology-learning vector quantization engine
// in the Growing Neural Gas with Targets (GNG-T) family: given a stream or
// batch of samples, it grows, prunes, and relaxes a weighted graph of
// prototypes whose vertices track sample density and whose edges track the
// neighborhood topology induced by the samples.
//
// This package is the driver: it composes the graph substrate, the Vertex
// Index / Topology Oracle, the epoch processors, and Evolution into the
// full epoch schedule — a configurable number of WTM passes, one BMU pass,
// an Evolution step, and zero or more CHL+WTM passes, recomputing topology
// whenever the vertex or edge set changes. Configuration is functional
// options: DefaultConfig returns sane defaults and each With* function
// sets the field or fields it names, collected by NewProcessor.
//
// The primitives the driver composes live in focused subpackages, leaves
// first:
//
//	graph/     — generational-index graph substrate with kill-based lazy
//	             deletion and self-pruning adjacency lists
//	topology/  — Vertex Index snapshots and the bounded breadth-first
//	             Topology Oracle used to weight WTM neighbors
//	epoch/     — the four batch processors (WTA, WTM, BMU, CHL) sharing one
//	             partition/reduce skeleton over worker goroutines
//	stats/     — Welford online (count, mean, variance) accumulation and its
//	             parallel-merge reduction, plus a longitudinal smoothing
//	             filter
//	vecspace/  — the minimal vector-space contract (Add, Scale) prototypes
//	             and samples must satisfy, plus ready-made Point/PointN types
//	telemetry/ — Prometheus metrics and structured logging, both no-op by
//	             default
package gngt
