// Package epoch implements the four batch operators — WTA, WTM, BMU, CHL —
// that process one sample range against the current graph topology.
//
// Each operator shares one partition-and-reduce skeleton: snapshot the
// Vertex Index, split the sample range across a fixed number of worker
// goroutines, accumulate into a private per-vertex slot per worker, join,
// reduce position-wise, then apply the reduction to the graph on the
// calling goroutine.
//
// Model traits. The sample/prototype/distance/clone/weight/default-edge
// closures a caller supplies are bundled into one ModelTraits value rather
// than threaded individually through every function signature.
//
// Concurrency. Workers fan out with golang.org/x/sync/errgroup, so a worker
// error cancels the remaining workers and propagates to the caller. The
// graph itself is read-only to workers (VertexValue, IncidentEdges) for the
// duration of a pass; all graph mutation — prototype writes, Connect —
// happens back on the driver goroutine after the join.
package epoch
