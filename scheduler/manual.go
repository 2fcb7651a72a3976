package scheduler

import (
	"sort"
	"sync"
	"time"

	"github.com/signalmesh/signalmesh/disposable"
)

// ManualScheduler is a Scheduler driven by a virtual clock. Time only moves
// when Advance is called, which makes periodic behavior fully deterministic
// in tests. The leeway hint is ignored.
type ManualScheduler struct {
	mu    sync.Mutex
	now   time.Time
	tasks []*manualTask
}

type manualTask struct {
	next      time.Time
	interval  time.Duration
	action    func()
	cancelled bool
}

// NewManualScheduler creates a manual scheduler starting at start.
func NewManualScheduler(start time.Time) *ManualScheduler {
	return &ManualScheduler{now: start}
}

// Now returns the virtual clock's current time.
func (s *ManualScheduler) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

// Schedule registers a repeating action due after the initial delay. The
// action fires only from within Advance.
func (s *ManualScheduler) Schedule(delay, interval, leeway time.Duration, action func()) disposable.Disposable {
	if delay < 0 || interval < 0 || leeway < 0 {
		panic("scheduler: delay, interval and leeway must be non-negative")
	}

	s.mu.Lock()
	t := &manualTask{next: s.now.Add(delay), interval: interval, action: action}
	s.tasks = append(s.tasks, t)
	s.mu.Unlock()

	return disposable.New(func() {
		s.mu.Lock()
		t.cancelled = true
		s.mu.Unlock()
	})
}

// Advance moves the virtual clock forward by d, firing every due action in
// chronological order. Actions run outside the scheduler's lock, so they
// may schedule or cancel tasks.
func (s *ManualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	target := s.now.Add(d)
	for {
		t := s.nextDueLocked(target)
		if t == nil {
			break
		}
		if t.next.After(s.now) {
			s.now = t.next
		}
		action := t.action
		t.next = t.next.Add(t.interval)
		if t.interval == 0 {
			// Zero-interval tasks fire once per Advance step to avoid an
			// unbounded loop inside a single call.
			t.next = target.Add(time.Nanosecond)
		}
		s.mu.Unlock()
		action()
		s.mu.Lock()
	}
	s.now = target
	s.mu.Unlock()
}

// nextDueLocked returns the earliest non-cancelled task due at or before
// target, nil when none remain.
func (s *ManualScheduler) nextDueLocked(target time.Time) *manualTask {
	live := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.cancelled {
			live = append(live, t)
		}
	}
	s.tasks = live

	sort.SliceStable(s.tasks, func(i, j int) bool { return s.tasks[i].next.Before(s.tasks[j].next) })
	if len(s.tasks) == 0 || s.tasks[0].next.After(target) {
		return nil
	}
	return s.tasks[0]
}
