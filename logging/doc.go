// Package logging provides a minimal logging interface and adapters for MeetMesh.
//
// The Logger interface defines the standard logging methods (Debug, Info, Warn,
// Error) that the coordinator and engines use for observability. This package
// includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - NoOpLogger for silent operation (testing, minimal setups)
//   - MeetMeshLogger with contextual helpers and scheduling-domain methods
//
// Usage:
//
//	logger := logging.NewSlogLogger(logging.LogLevelInfo, "json", false)
//	coord := coordinator.New(engine, pol, coordinator.WithLogger(logger))
//
// The design intentionally keeps the interface minimal to avoid vendor lock-in
// while supporting structured logging where available.
package logging
