package event

import "fmt"

// Kind discriminates the three event cases.
type Kind int

const (
	// KindNext carries a value produced by the stream.
	KindNext Kind = iota

	// KindFailed carries the error that terminated the stream.
	KindFailed

	// KindCompleted marks successful exhaustion of the stream.
	KindCompleted
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindNext:
		return "next"
	case KindFailed:
		return "failed"
	case KindCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Event is a single occurrence in a stream: a value, a failure or the
// completion marker. Exactly one case is set, fixed at construction.
// After construction an Event should be treated as immutable.
type Event[T any] struct {
	kind  Kind
	value T
	err   error
}

// Next creates a value event.
func Next[T any](value T) Event[T] {
	return Event[T]{kind: KindNext, value: value}
}

// Failed creates a failure event carrying err. A subscription delivers no
// further events after it.
func Failed[T any](err error) Event[T] {
	return Event[T]{kind: KindFailed, err: err}
}

// Completed creates the completion marker. A subscription delivers no
// further events after it.
func Completed[T any]() Event[T] {
	return Event[T]{kind: KindCompleted}
}

// Kind returns the event case.
func (e Event[T]) Kind() Kind { return e.kind }

// Value returns the carried value. It is the zero value unless Kind is
// KindNext.
func (e Event[T]) Value() T { return e.value }

// Err returns the carried error. It is nil unless Kind is KindFailed.
func (e Event[T]) Err() error { return e.err }

// IsTerminating reports whether the event ends the stream (failure or
// completion).
func (e Event[T]) IsTerminating() bool {
	return e.kind == KindFailed || e.kind == KindCompleted
}

// String renders the event for logs and test failures.
func (e Event[T]) String() string {
	switch e.kind {
	case KindNext:
		return fmt.Sprintf("next(%v)", e.value)
	case KindFailed:
		return fmt.Sprintf("failed(%v)", e.err)
	case KindCompleted:
		return "completed"
	default:
		return "unknown"
	}
}
