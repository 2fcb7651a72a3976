package signal

import (
	"sync"

	"github.com/signalmesh/signalmesh/bag"
	"github.com/signalmesh/signalmesh/disposable"
	"github.com/signalmesh/signalmesh/event"
)

// Signal is a hot event stream. The generator passed to New runs exactly
// once, at construction, and pushes events through the signal's input
// observer. Observers attach with Observe and detach by disposing the
// returned handle. The first terminating event is recorded and frees every
// observer; later Observe calls receive that terminal event immediately,
// with no replay of prior values.
type Signal[T any] struct {
	mu       sync.Mutex
	subs     *bag.Bag[event.Observer[T]]
	terminal *event.Event[T]
	disposed bool

	// pending and draining implement ordered fan-out: events queue under
	// the lock and a single drainer delivers them outside it, so delivery
	// order is total per subscription and a re-entrant push from inside a
	// callback cannot deadlock.
	pending  []event.Event[T]
	draining bool
}

// inputObserver is the signal's sole event-delivery surface.
type inputObserver[T any] struct{ s *Signal[T] }

func (o inputObserver[T]) Put(e event.Event[T]) { o.s.push(e) }

// newPipe builds the signal together with its input observer and interrupt
// handle in one step, so no partially initialized handle ever escapes.
func newPipe[T any]() (*Signal[T], event.Observer[T], disposable.Disposable) {
	s := &Signal[T]{subs: bag.New[event.Observer[T]]()}
	return s, inputObserver[T]{s: s}, disposable.New(s.interrupt)
}

// New creates a signal and invokes generator exactly once with the
// signal's input observer and its interrupt handle. Events pushed by the
// generator — synchronously or later — fan out to every observer attached
// at delivery time. Disposing the handle silences the signal: no further
// fan-out occurs, without a terminal event.
func New[T any](generator func(event.Observer[T], disposable.Disposable)) *Signal[T] {
	s, input, interrupt := newPipe[T]()
	generator(input, interrupt)
	return s
}

// Pipe creates a signal along with the observer that feeds it. It is the
// primitive behind Producer runs and Buffer, exported for bridging
// external hot sources.
func Pipe[T any]() (*Signal[T], event.Observer[T]) {
	s, input, _ := newPipe[T]()
	return s, input
}

// Observe registers o and returns the handle that removes this one
// registration. If the signal already terminated, o immediately receives
// the terminal event and the returned handle is already disposed. If the
// signal was interrupted, the returned handle is already disposed and o
// receives nothing.
func (s *Signal[T]) Observe(o event.Observer[T]) disposable.Disposable {
	if o == nil {
		panic("signal: nil observer")
	}
	s.mu.Lock()
	if s.terminal != nil {
		term := *s.terminal
		s.mu.Unlock()
		o.Put(term)
		return disposable.Disposed()
	}
	if s.disposed {
		s.mu.Unlock()
		return disposable.Disposed()
	}
	tok := s.subs.Insert(o)
	s.mu.Unlock()

	return disposable.New(func() {
		s.mu.Lock()
		s.subs.Remove(tok)
		s.mu.Unlock()
	})
}

// ObserveFunc builds an observer from per-kind callbacks and observes with
// it.
func (s *Signal[T]) ObserveFunc(opts ...event.CallbackOption[T]) disposable.Disposable {
	return s.Observe(event.NewObserver(opts...))
}

// push enqueues an event for ordered delivery. Events arriving after
// termination or interruption are dropped.
func (s *Signal[T]) push(e event.Event[T]) {
	s.mu.Lock()
	if s.disposed || s.terminal != nil {
		s.mu.Unlock()
		return
	}
	s.pending = append(s.pending, e)
	if s.draining {
		s.mu.Unlock()
		return
	}
	s.draining = true
	s.drain()
}

// drain delivers queued events in order. Called with s.mu held and the
// draining flag set; returns with the lock released.
func (s *Signal[T]) drain() {
	for {
		if s.disposed || len(s.pending) == 0 {
			s.draining = false
			s.mu.Unlock()
			return
		}
		e := s.pending[0]
		s.pending = s.pending[1:]
		targets := s.subs.Snapshot()
		if e.IsTerminating() {
			term := e
			s.terminal = &term
			s.subs.Clear()
			s.pending = nil
		}
		s.mu.Unlock()

		for _, o := range targets {
			o.Put(e)
		}

		s.mu.Lock()
	}
}

// interrupt stops all future fan-out. A delivery already in flight
// completes; everything queued behind it is dropped.
func (s *Signal[T]) interrupt() {
	s.mu.Lock()
	s.disposed = true
	s.pending = nil
	s.subs.Clear()
	s.mu.Unlock()
}
