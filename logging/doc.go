// Package logging provides a minimal logging interface and adapters for
// signalmesh.
//
// The Logger interface defines the standard logging methods (Debug, Info,
// Warn, Error) that instrumented components such as the ticker scheduler
// use for observability. This package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - NoOpLogger for silent operation (testing, minimal setups)
//
// Usage:
//
//	logger := logging.NewLogger(nil)
//	sched := scheduler.NewTickerScheduler(scheduler.WithLogger(logger))
//
// The design intentionally keeps the interface minimal to avoid vendor
// lock-in while supporting structured logging where available. The stream
// push path itself never logs.
package logging
