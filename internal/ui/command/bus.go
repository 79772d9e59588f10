package command

import (
	"github.com/atomicstack/bizray-tui/internal/backend"
	"github.com/atomicstack/bizray-tui/internal/logging/events"
	"github.com/atomicstack/bizray-tui/internal/state"
	"github.com/google/uuid"
)

// Request describes one background operation.
type Request struct {
	Label string
	// Mutating requests hold the busy flag until their task posts
	// BusyChanged{false}. At most one runs at a time.
	Mutating bool
	Task     backend.Task
}

// Spawner starts background tasks.
type Spawner interface {
	Spawn(id, label string, task backend.Task) bool
}

// Bus admits requests against the busy guard and hands them to the runner.
type Bus struct {
	app    *state.App
	runner Spawner
}

// New initialises a command bus instance.
func New(app *state.App, runner Spawner) *Bus {
	return &Bus{app: app, runner: runner}
}

// Submit starts req unless a mutating request is already in flight.
// It reports whether the task was started.
func (b *Bus) Submit(req Request) bool {
	id := uuid.NewString()
	if req.Task == nil {
		events.Task.Skip(id, req.Label, "no task")
		return false
	}
	if req.Mutating && b.app.Busy {
		events.Task.Skip(id, req.Label, "busy")
		return false
	}
	events.Task.Queue(id, req.Label, req.Mutating)
	if req.Mutating {
		b.app.Busy = true
		b.app.ClearMessage()
	}
	if !b.runner.Spawn(id, req.Label, req.Task) {
		if req.Mutating {
			b.app.Busy = false
		}
		return false
	}
	return true
}
