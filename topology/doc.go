// Package topology provides the Vertex Index — a point-in-time snapshot of
// live vertices addressable by integer position — and the Topology Oracle,
// a bounded breadth-first neighborhood expansion used by the WTM processor
// to weight neighbors by edge-distance from a BMU.
//
// What
//
//   - Build captures the graph's currently-live vertices in traversal
//     order into an Index and assigns each a stable position for the
//     lifetime of the index. Numerical passes address vertices by this
//     position; the driver rebuilds the index ("refresh topology") whenever
//     the vertex or edge set changes.
//   - Oracle.Neighborhood performs a memoryless BFS from a source vertex,
//     treating killed or orphaned elements as absent (graph.IncidentEdges
//     converges each visited vertex's adjacency list as a side effect),
//     bounded by a maximum edge-distance and a weight-negligibility cutoff.
//
// # Determinism
//
// Within one BFS level, vertices are discovered in adjacency-list order;
// callers must not depend on that order. WTM weights depend only on
// distance, not on position within a level, so the order is unobservable to
// the epoch processors.
package topology
