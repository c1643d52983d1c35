// Package telemetry provides the driver's observability surface: a
// Prometheus Recorder tracking vertex/edge/clone/kill counts and epoch
// duration, and a zap.Logger injection point for structured driver logs.
// Both are no-op by default so embedding gngt.Processor in a host that
// doesn't care about metrics costs nothing.
//
// The Recorder mounts its collectors on a private prometheus.Registry
// rather than the default global one, so multiple Processor instances in
// one process or test binary don't collide on MustRegister.
package telemetry
