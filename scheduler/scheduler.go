package scheduler

import (
	"time"

	"github.com/signalmesh/signalmesh/disposable"
)

// Scheduler exposes the current time and the ability to run a repeating
// action. It is the only timing dependency of the stream core.
type Scheduler interface {
	// Now returns the scheduler's current time.
	Now() time.Time

	// Schedule runs action every interval, after an initial delay. The
	// leeway is a coalescing hint: implementations may fire up to leeway
	// late to batch wakeups, or ignore it entirely. Disposing the returned
	// handle stops all future invocations; an invocation already running
	// completes.
	//
	// delay, interval and leeway must be non-negative.
	Schedule(delay, interval, leeway time.Duration, action func()) disposable.Disposable
}
