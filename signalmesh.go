// Package signalmesh provides a high-level façade over the stream engine in
// signal and its supporting packages (event, disposable, result, scheduler,
// logging). Most applications interact with the library by:
//  1. Describing work as cold producers (Value, FromSlice, Timer, Buffer, ...)
//  2. Composing side effects and transformations (On, Lift, MapProducer)
//  3. Starting runs and holding on to the returned cancellation handles
//
// The façade re-exports the common constructors so simple programs can
// import a single package; everything here delegates to signal.
package signalmesh

import (
	"time"

	"github.com/signalmesh/signalmesh/event"
	"github.com/signalmesh/signalmesh/result"
	"github.com/signalmesh/signalmesh/scheduler"
	"github.com/signalmesh/signalmesh/signal"
)

// Value creates a producer emitting one value, then completing.
func Value[T any](v T) *signal.Producer[T] { return signal.Value(v) }

// Failed creates a producer that fails immediately with err.
func Failed[T any](err error) *signal.Producer[T] { return signal.Failed[T](err) }

// FromResult creates a producer delegating to Value or Failed based on the
// result's case.
func FromResult[T any](r result.Result[T]) *signal.Producer[T] { return signal.FromResult(r) }

// FromSlice creates a producer emitting every element of values in order,
// then completing.
func FromSlice[T any](values []T) *signal.Producer[T] { return signal.FromSlice(values) }

// Empty creates a producer that completes immediately with no values.
func Empty[T any]() *signal.Producer[T] { return signal.Empty[T]() }

// Never creates a producer that emits nothing, ever.
func Never[T any]() *signal.Producer[T] { return signal.Never[T]() }

// Buffer returns a paired producer and observer sharing a bounded replay
// log of the given capacity.
func Buffer[T any](capacity int) (*signal.Producer[T], event.Observer[T]) {
	return signal.Buffer[T](capacity)
}

// Timer creates a producer emitting the scheduler's current time every
// interval.
func Timer(interval time.Duration, s scheduler.Scheduler, leeway time.Duration) *signal.Producer[time.Time] {
	return signal.Timer(interval, s, leeway)
}

// First starts one run of p and blocks until its first value or
// termination.
func First[T any](p *signal.Producer[T]) result.Result[T] { return signal.First(p) }
