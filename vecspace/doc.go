// Package vecspace provides the minimal vector-space contract the epoch and
// gngt packages need to accumulate, scale, and average prototypes and
// samples, plus a couple of ready-made concrete spaces.
//
// The engine treats Prototype and Sample as opaque types compared only
// through a caller-supplied distance function, but a complete, testable
// host still needs at least one concrete vector type to exercise
// WTA/WTM/BMU/CHL against, so this package supplies Point (fixed 2D) and
// PointN (arbitrary dimension).
package vecspace
