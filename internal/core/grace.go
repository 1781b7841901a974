package core

import "time"

// DefaultGracePeriod is how long a disconnected player keeps its seat.
const DefaultGracePeriod = 30 * time.Second

// Scheduler runs fn once after d elapses. Scheduled work is never cancelled;
// callbacks must re-check state when they fire.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func())
}

// TimerScheduler schedules on the runtime timer heap.
type TimerScheduler struct{}

// AfterFunc implements Scheduler.
func (TimerScheduler) AfterFunc(d time.Duration, fn func()) {
	time.AfterFunc(d, fn)
}

// graceExpiry identifies the disconnect a grace timer was armed for.
type graceExpiry struct {
	key    string
	roomID string
	connID string
}

// hubScheduler hands fired callbacks back to the Hub goroutine.
type hubScheduler struct {
	base Scheduler
	hub  *Hub
}

func (s hubScheduler) AfterFunc(d time.Duration, fn func()) {
	s.base.AfterFunc(d, func() { s.hub.enqueue(fn) })
}
