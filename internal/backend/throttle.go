package backend

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Throttle spaces out read-only lookups, such as autocomplete requests
// fired on every keystroke, so they start at most once per interval.
type Throttle struct {
	interval time.Duration

	mu   sync.Mutex
	next time.Time

	generation atomic.Uint64
}

// NewThrottle returns a throttle; a non-positive interval disables it.
func NewThrottle(interval time.Duration) *Throttle {
	if interval <= 0 {
		return &Throttle{}
	}
	return &Throttle{interval: interval}
}

// Wait blocks until the next slot is free. It returns false if ctx ends first.
func (t *Throttle) Wait(ctx context.Context) bool {
	if t == nil || t.interval <= 0 {
		return ctx.Err() == nil
	}
	for {
		t.mu.Lock()
		wait := time.Until(t.next)
		if wait <= 0 {
			t.next = time.Now().Add(t.interval)
			t.mu.Unlock()
			return true
		}
		t.mu.Unlock()
		if wait > t.interval {
			wait = t.interval
		}
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return false
		case <-timer.C:
		}
	}
}

// Ticket registers a new lookup and returns its generation. Issuing a ticket
// supersedes every earlier one.
func (t *Throttle) Ticket() uint64 {
	if t == nil {
		return 0
	}
	return t.generation.Add(1)
}

// Latest reports whether ticket is still the newest one issued.
func (t *Throttle) Latest(ticket uint64) bool {
	if t == nil {
		return true
	}
	return t.generation.Load() == ticket
}
