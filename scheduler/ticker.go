package scheduler

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/signalmesh/signalmesh/disposable"
	"github.com/signalmesh/signalmesh/logging"
)

// TickerScheduler runs repeating actions on dedicated goroutines backed by
// time.Timer and time.Ticker. Each scheduled task is tracked under a unique
// identifier for log correlation and bulk shutdown via Close.
//
// The leeway hint is ignored: Go's ticker does not expose wakeup
// coalescing.
type TickerScheduler struct {
	mu     sync.Mutex
	tasks  map[string]*tickerTask
	logger logging.Logger
	closed bool
}

type tickerTask struct {
	id   string
	stop chan struct{}
	once sync.Once
}

func (t *tickerTask) cancel() {
	t.once.Do(func() { close(t.stop) })
}

// TickerOption configures a TickerScheduler.
type TickerOption func(*TickerScheduler)

// WithLogger sets the logger used for task lifecycle events. Defaults to
// NoOpLogger.
func WithLogger(l logging.Logger) TickerOption {
	return func(s *TickerScheduler) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewTickerScheduler creates a scheduler running on real time.
func NewTickerScheduler(opts ...TickerOption) *TickerScheduler {
	s := &TickerScheduler{
		tasks:  make(map[string]*tickerTask),
		logger: logging.NoOpLogger{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Now returns the current wall-clock time.
func (s *TickerScheduler) Now() time.Time { return time.Now() }

// Schedule starts a goroutine that runs action every interval after the
// initial delay. Disposing the returned handle stops future invocations.
// After Close the scheduler accepts no new work and returns an already
// disposed handle.
func (s *TickerScheduler) Schedule(delay, interval, leeway time.Duration, action func()) disposable.Disposable {
	if delay < 0 || interval < 0 || leeway < 0 {
		panic("scheduler: delay, interval and leeway must be non-negative")
	}
	// time.Ticker requires a positive interval.
	if interval == 0 {
		interval = time.Nanosecond
	}

	t := &tickerTask{id: uuid.NewString(), stop: make(chan struct{})}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return disposable.Disposed()
	}
	s.tasks[t.id] = t
	s.mu.Unlock()

	s.logger.Debug("scheduled repeating task", "task_id", t.id, "delay", delay, "interval", interval)

	go s.run(t, delay, interval, action)

	return disposable.New(func() {
		t.cancel()
		s.remove(t.id)
		s.logger.Debug("cancelled repeating task", "task_id", t.id)
	})
}

func (s *TickerScheduler) run(t *tickerTask, delay, interval time.Duration, action func()) {
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-t.stop:
		return
	case <-timer.C:
	}
	action()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-t.stop:
			return
		case <-ticker.C:
			action()
		}
	}
}

func (s *TickerScheduler) remove(id string) {
	s.mu.Lock()
	delete(s.tasks, id)
	s.mu.Unlock()
}

// Len returns the number of active tasks.
func (s *TickerScheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// Close cancels every active task and rejects new scheduling. It is safe to
// call more than once.
func (s *TickerScheduler) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	tasks := s.tasks
	s.tasks = make(map[string]*tickerTask)
	s.mu.Unlock()

	for _, t := range tasks {
		t.cancel()
	}
	s.logger.Debug("scheduler closed", "cancelled_tasks", len(tasks))
}
