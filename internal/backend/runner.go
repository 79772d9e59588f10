package backend

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/atomicstack/bizray-tui/internal/logging/events"
)

// Sink is the producer side of the update channel. It is the only handle a
// task gets; tasks never see application state.
type Sink interface {
	Send(u Update) bool
}

// Task performs one remote operation and reports through out.
type Task func(ctx context.Context, out Sink)

// Runner runs tasks on their own goroutines and funnels their updates into
// a single channel read by the UI loop.
type Runner struct {
	ctx    context.Context
	cancel context.CancelFunc

	events   chan Update
	wg       sync.WaitGroup
	inFlight atomic.Int64

	mu      sync.Mutex
	stopped bool
}

// NewRunner creates a runner whose channel buffers up to buffer updates.
// Producers block in their own goroutine once the buffer is full.
func NewRunner(buffer int) *Runner {
	if buffer < 1 {
		buffer = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Runner{
		ctx:    ctx,
		cancel: cancel,
		events: make(chan Update, buffer),
	}
}

// Events returns the consumer side of the update channel. It is closed
// after Stop once every task has returned.
func (r *Runner) Events() <-chan Update {
	return r.events
}

// InFlight returns the number of tasks that have not yet returned.
func (r *Runner) InFlight() int {
	return int(r.inFlight.Load())
}

// Spawn starts task in the background. It reports false after Stop.
func (r *Runner) Spawn(id, label string, task Task) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stopped {
		events.Task.Skip(id, label, "stopped")
		return false
	}
	r.wg.Add(1)
	r.inFlight.Add(1)
	go func() {
		started := time.Now()
		defer func() {
			r.inFlight.Add(-1)
			events.Task.Done(id, label, time.Since(started))
			r.wg.Done()
		}()
		task(r.ctx, sink{ctx: r.ctx, events: r.events, id: id, label: label})
	}()
	return true
}

// Stop is called on shutdown. It cancels the shared context so tasks blocked
// on a request or on a full channel return, then closes the channel once
// every task has finished.
func (r *Runner) Stop() {
	r.mu.Lock()
	if r.stopped {
		r.mu.Unlock()
		return
	}
	r.stopped = true
	r.mu.Unlock()

	r.cancel()
	go func() {
		r.wg.Wait()
		close(r.events)
	}()
}

// Wait blocks until every spawned task has returned.
func (r *Runner) Wait() {
	r.wg.Wait()
}

type sink struct {
	ctx    context.Context
	events chan<- Update
	id     string
	label  string
}

func (s sink) Send(u Update) bool {
	if f, ok := u.(Failed); ok {
		events.Task.Error(s.id, s.label, f.Err)
	}
	select {
	case <-s.ctx.Done():
		return false
	case s.events <- u:
		events.Task.Post(s.id, KindOf(u))
		return true
	}
}
