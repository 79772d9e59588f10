package events

import (
	"time"

	"github.com/atomicstack/bizray-tui/internal/logging"
)

type TaskTracer struct{}

var Task = TaskTracer{}

func (TaskTracer) Queue(id, label string, mutating bool) {
	logging.Trace("task.queue", map[string]interface{}{"id": id, "label": label, "mutating": mutating})
}

func (TaskTracer) Skip(id, label, reason string) {
	logging.Trace("task.skip", map[string]interface{}{"id": id, "label": label, "reason": reason})
}

func (TaskTracer) Done(id, label string, elapsed time.Duration) {
	logging.Trace("task.done", map[string]interface{}{"id": id, "label": label, "elapsed_ms": elapsed.Milliseconds()})
}

func (TaskTracer) Post(id, kind string) {
	logging.Trace("task.post", map[string]interface{}{"id": id, "kind": kind})
}

func (TaskTracer) Error(id, label string, err error) {
	if err == nil {
		return
	}
	logging.Trace("task.error", map[string]interface{}{"id": id, "label": label, "error": err.Error()})
}
