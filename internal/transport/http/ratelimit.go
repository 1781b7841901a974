package http

import (
	"time"
)

// frameLimiter caps inbound frames per connection inside a fixed window.
// Only the read loop touches it.
type frameLimiter struct {
	limit       int
	window      time.Duration
	now         func() time.Time
	windowStart time.Time
	frames      int
}

func newFrameLimiter(perMinute int) *frameLimiter {
	return &frameLimiter{
		limit:  perMinute,
		window: time.Minute,
		now:    time.Now,
	}
}

// allow counts one frame and reports whether it fits in the current window.
// A non-positive limit disables limiting.
func (l *frameLimiter) allow() bool {
	if l == nil || l.limit <= 0 {
		return true
	}
	now := l.now()
	if l.windowStart.IsZero() || now.Sub(l.windowStart) >= l.window {
		l.windowStart = now
		l.frames = 0
	}
	l.frames++
	return l.frames <= l.limit
}
