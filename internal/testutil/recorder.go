package testutil

import (
	"sync"

	"github.com/signalmesh/signalmesh/event"
)

// Recorder is an Observer capturing every delivered event in order. It is
// safe for concurrent Put so tests can observe multi-goroutine delivery.
type Recorder[T any] struct {
	mu     sync.Mutex
	events []event.Event[T]
}

// NewRecorder creates an empty recorder.
func NewRecorder[T any]() *Recorder[T] {
	return &Recorder[T]{}
}

// Put records the event.
func (r *Recorder[T]) Put(e event.Event[T]) {
	r.mu.Lock()
	r.events = append(r.events, e)
	r.mu.Unlock()
}

// Events returns a copy of everything recorded so far.
func (r *Recorder[T]) Events() []event.Event[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]event.Event[T], len(r.events))
	copy(out, r.events)
	return out
}

// Values returns the values of the recorded Next events, in order.
func (r *Recorder[T]) Values() []T {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []T
	for _, e := range r.events {
		if e.Kind() == event.KindNext {
			out = append(out, e.Value())
		}
	}
	return out
}

// Kinds returns the kind of every recorded event, in order.
func (r *Recorder[T]) Kinds() []event.Kind {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []event.Kind
	for _, e := range r.events {
		out = append(out, e.Kind())
	}
	return out
}

// Len returns the number of recorded events.
func (r *Recorder[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}
