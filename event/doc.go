// Package event defines the unit of communication for signalmesh streams.
// It provides the closed Event variant (Next, Failed, Completed), the
// Observer sink capability that accepts one Event at a time, and convenience
// constructors for building observers from per-kind callbacks.
//
// Events are immutable values. Observers are not inherently thread-safe:
// any component that exposes an Observer to multiple producers must
// serialize calls itself (Signal and Buffer do).
package event
