package signal

import (
	"time"

	"github.com/signalmesh/signalmesh/disposable"
	"github.com/signalmesh/signalmesh/event"
	"github.com/signalmesh/signalmesh/scheduler"
)

// Timer creates a producer that emits the scheduler's current time every
// interval, forever. It never completes; dispose the run to stop it. The
// scheduler's own cancellation handle is registered into the run's
// composite, so cancelling the run stops future ticks.
//
// interval and leeway must be non-negative; violating either is a
// programmer error, not a stream failure.
func Timer(interval time.Duration, s scheduler.Scheduler, leeway time.Duration) *Producer[time.Time] {
	if interval < 0 {
		panic("signal: timer interval must be non-negative")
	}
	if leeway < 0 {
		panic("signal: timer leeway must be non-negative")
	}

	return NewProducer(func(o event.Observer[time.Time], run *disposable.Composite) {
		handle := s.Schedule(interval, interval, leeway, func() {
			o.Put(event.Next(s.Now()))
		})
		run.Add(handle)
	})
}
