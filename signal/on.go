package signal

import (
	"github.com/signalmesh/signalmesh/disposable"
	"github.com/signalmesh/signalmesh/event"
)

// sideEffects holds the optional callbacks injected by On.
type sideEffects[T any] struct {
	started    func()
	disposed   func()
	anyEvent   func(event.Event[T])
	next       func(T)
	failed     func(error)
	completed  func()
	terminated func()
}

// SideEffect configures one injected callback for On.
type SideEffect[T any] func(*sideEffects[T])

// OnStarted sets a callback fired once per run, before the wrapped start
// routine executes.
func OnStarted[T any](fn func()) SideEffect[T] {
	return func(s *sideEffects[T]) { s.started = fn }
}

// OnDisposed sets a callback registered into the run's composite, fired
// when the run is disposed however that happens.
func OnDisposed[T any](fn func()) SideEffect[T] {
	return func(s *sideEffects[T]) { s.disposed = fn }
}

// OnEvent sets a callback fired for every event passing through, before
// kind-specific callbacks.
func OnEvent[T any](fn func(event.Event[T])) SideEffect[T] {
	return func(s *sideEffects[T]) { s.anyEvent = fn }
}

// OnNext sets a callback fired for every value.
func OnNext[T any](fn func(T)) SideEffect[T] {
	return func(s *sideEffects[T]) { s.next = fn }
}

// OnFailed sets a callback fired on failure.
func OnFailed[T any](fn func(error)) SideEffect[T] {
	return func(s *sideEffects[T]) { s.failed = fn }
}

// OnCompleted sets a callback fired on completion.
func OnCompleted[T any](fn func()) SideEffect[T] {
	return func(s *sideEffects[T]) { s.completed = fn }
}

// OnTerminated sets a callback fired when any terminating event passes
// through, after the kind-specific callback.
func OnTerminated[T any](fn func()) SideEffect[T] {
	return func(s *sideEffects[T]) { s.terminated = fn }
}

// On wraps the producer so that each run additionally routes events and
// lifecycle transitions to the injected callbacks before forwarding every
// event, unchanged, to the real observer. Callbacks observe; they cannot
// alter the stream.
func (p *Producer[T]) On(opts ...SideEffect[T]) *Producer[T] {
	cfg := &sideEffects[T]{}
	for _, opt := range opts {
		opt(cfg)
	}

	return NewProducer(func(o event.Observer[T], run *disposable.Composite) {
		if cfg.disposed != nil {
			run.AddAction(cfg.disposed)
		}
		if cfg.started != nil {
			cfg.started()
		}
		p.start(event.Func[T](func(e event.Event[T]) {
			if cfg.anyEvent != nil {
				cfg.anyEvent(e)
			}
			switch e.Kind() {
			case event.KindNext:
				if cfg.next != nil {
					cfg.next(e.Value())
				}
			case event.KindFailed:
				if cfg.failed != nil {
					cfg.failed(e.Err())
				}
			case event.KindCompleted:
				if cfg.completed != nil {
					cfg.completed()
				}
			}
			if e.IsTerminating() && cfg.terminated != nil {
				cfg.terminated()
			}
			o.Put(e)
		}), run)
	})
}
