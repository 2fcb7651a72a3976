// Package scheduler defines the timing capability consumed by signal.Timer
// and ships two implementations: TickerScheduler, which runs repeating
// actions on real time.Ticker-backed goroutines, and ManualScheduler, a
// virtual-clock implementation for deterministic tests.
//
// The stream core itself never schedules work; all periodic behavior enters
// through this capability and is cancelled through the returned disposable.
package scheduler
