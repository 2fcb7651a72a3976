package signal

import (
	"iter"
	"slices"

	"github.com/signalmesh/signalmesh/disposable"
	"github.com/signalmesh/signalmesh/event"
	"github.com/signalmesh/signalmesh/result"
)

// Producer is a cold stream factory. It owns only its start routine; no
// work happens until Start, and each Start call is an independent run with
// its own Signal and cancellation handle. A producer carries no state
// between runs except what the start routine explicitly captures.
type Producer[T any] struct {
	start func(event.Observer[T], *disposable.Composite)
}

// NewProducer wraps a start routine. The routine is invoked once per Start
// call with the run's input observer and its composite cancellation
// handle; it should stop emitting once the composite is disposed.
func NewProducer[T any](start func(event.Observer[T], *disposable.Composite)) *Producer[T] {
	return &Producer[T]{start: start}
}

// Value creates a producer emitting one value, then completing.
func Value[T any](v T) *Producer[T] {
	return NewProducer(func(o event.Observer[T], _ *disposable.Composite) {
		o.Put(event.Next(v))
		o.Put(event.Completed[T]())
	})
}

// Failed creates a producer that fails immediately with err, emitting no
// value.
func Failed[T any](err error) *Producer[T] {
	return NewProducer(func(o event.Observer[T], _ *disposable.Composite) {
		o.Put(event.Failed[T](err))
	})
}

// FromResult creates a producer delegating to Value or Failed based on the
// result's case.
func FromResult[T any](r result.Result[T]) *Producer[T] {
	v, err := r.Get()
	if err != nil {
		return Failed[T](err)
	}
	return Value(v)
}

// FromSeq creates a producer emitting every element of seq in iteration
// order, then completing. The run's cancellation flag is checked before
// every emission: a cancelled run emits nothing further, including the
// completion.
func FromSeq[T any](seq iter.Seq[T]) *Producer[T] {
	return NewProducer(func(o event.Observer[T], run *disposable.Composite) {
		for v := range seq {
			if run.IsDisposed() {
				return
			}
			o.Put(event.Next(v))
		}
		if run.IsDisposed() {
			return
		}
		o.Put(event.Completed[T]())
	})
}

// FromSlice creates a producer emitting every element of values in order,
// then completing.
func FromSlice[T any](values []T) *Producer[T] {
	return FromSeq(slices.Values(values))
}

// Empty creates a producer that completes immediately with no values.
func Empty[T any]() *Producer[T] {
	return NewProducer(func(o event.Observer[T], _ *disposable.Composite) {
		o.Put(event.Completed[T]())
	})
}

// Never creates a producer that emits nothing, ever. No cleanup is
// scheduled; the caller is responsible for cancelling the run.
func Never[T any]() *Producer[T] {
	return NewProducer(func(event.Observer[T], *disposable.Composite) {})
}

// Try creates a producer invoking op once per run. A returned value is
// emitted and followed by completion; a returned error fails the run. When
// op returns neither, the run fails with ErrEmptyResult.
func Try[T any](op func() (*T, error)) *Producer[T] {
	return NewProducer(func(o event.Observer[T], _ *disposable.Composite) {
		v, err := op()
		switch {
		case err != nil:
			o.Put(event.Failed[T](err))
		case v == nil:
			o.Put(event.Failed[T](ErrEmptyResult))
		default:
			o.Put(event.Next(*v))
			o.Put(event.Completed[T]())
		}
	})
}

// Start performs one independent run. It builds a fresh Signal with its
// input observer and interrupt handle, adds the interrupt to a fresh
// composite, and hands signal and composite to setup so the caller can
// attach observation before any event can be emitted. Only after setup
// returns — and unless the composite was disposed inside it — does the
// start routine run. The returned composite cancels the whole run.
func (p *Producer[T]) Start(setup func(*Signal[T], *disposable.Composite)) disposable.Disposable {
	run := disposable.NewComposite()
	sig, input, interrupt := newPipe[T]()
	run.Add(interrupt)
	if setup != nil {
		setup(sig, run)
	}
	if !run.IsDisposed() {
		p.start(input, run)
	}
	return run
}

// StartWithObserver performs one run with o attached as the sole observer.
// Any sink implementing event.Observer can bridge in this way.
func (p *Producer[T]) StartWithObserver(o event.Observer[T]) disposable.Disposable {
	return p.Start(func(s *Signal[T], _ *disposable.Composite) {
		s.Observe(o)
	})
}

// StartFunc performs one run observed by callbacks.
func (p *Producer[T]) StartFunc(opts ...event.CallbackOption[T]) disposable.Disposable {
	return p.StartWithObserver(event.NewObserver(opts...))
}

// Lift turns a Signal transformation into a Producer transformation: each
// run of the returned producer starts the receiver, applies transform to
// the run's signal, and forwards the transformed events. Cancelling the
// outer run cancels the inner one.
func (p *Producer[T]) Lift(transform func(*Signal[T]) *Signal[T]) *Producer[T] {
	return Lift(p, transform)
}

// Lift is the package-level form of Producer.Lift for transforms that
// change the value type.
func Lift[T, U any](p *Producer[T], transform func(*Signal[T]) *Signal[U]) *Producer[U] {
	return NewProducer(func(outer event.Observer[U], run *disposable.Composite) {
		p.Start(func(inner *Signal[T], innerRun *disposable.Composite) {
			run.Add(innerRun)
			transform(inner).Observe(outer)
		})
	})
}
