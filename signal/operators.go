package signal

import (
	"github.com/signalmesh/signalmesh/disposable"
	"github.com/signalmesh/signalmesh/event"
)

// Map derives a signal whose values are fn applied to the source's values.
// Failure and completion pass through unchanged.
func Map[T, U any](s *Signal[T], fn func(T) U) *Signal[U] {
	return New(func(o event.Observer[U], _ disposable.Disposable) {
		s.Observe(event.Func[T](func(e event.Event[T]) {
			switch e.Kind() {
			case event.KindNext:
				o.Put(event.Next(fn(e.Value())))
			case event.KindFailed:
				o.Put(event.Failed[U](e.Err()))
			case event.KindCompleted:
				o.Put(event.Completed[U]())
			}
		}))
	})
}

// Filter derives a signal forwarding only the values for which pred holds.
// Failure and completion pass through unchanged.
func (s *Signal[T]) Filter(pred func(T) bool) *Signal[T] {
	return New(func(o event.Observer[T], _ disposable.Disposable) {
		s.Observe(event.Func[T](func(e event.Event[T]) {
			if e.Kind() == event.KindNext && !pred(e.Value()) {
				return
			}
			o.Put(e)
		}))
	})
}

// MapProducer lifts Map over a producer: every run maps its values through
// fn.
func MapProducer[T, U any](p *Producer[T], fn func(T) U) *Producer[U] {
	return Lift(p, func(s *Signal[T]) *Signal[U] { return Map(s, fn) })
}

// Filter lifts Signal.Filter over the producer: every run forwards only
// the values for which pred holds.
func (p *Producer[T]) Filter(pred func(T) bool) *Producer[T] {
	return p.Lift(func(s *Signal[T]) *Signal[T] { return s.Filter(pred) })
}
