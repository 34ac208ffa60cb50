package main

import (
	"time"

	"wadview/internal/config"
)

// fpsLimiter paces the render loop to the configured frame cap.
type fpsLimiter struct {
	next time.Time
}

func newFPSLimiter() *fpsLimiter {
	return &fpsLimiter{}
}

// wait blocks until the current frame's deadline. Sleeping all the way to
// the deadline overshoots by a scheduler quantum, so the last stretch is
// spun instead.
func (f *fpsLimiter) wait() {
	limit := config.GetFPSLimit()
	if limit <= 0 {
		f.next = time.Time{}
		return
	}
	frame := time.Second / time.Duration(limit)

	now := time.Now()
	if f.next.IsZero() || now.Sub(f.next) > frame {
		// First frame, or a hitch left us more than a frame behind:
		// restart the schedule instead of draining the backlog.
		f.next = now
	}
	f.next = f.next.Add(frame)

	if sleep := time.Until(f.next) - 200*time.Microsecond; sleep > 0 {
		time.Sleep(sleep)
	}
	for time.Now().Before(f.next) {
	}
}
