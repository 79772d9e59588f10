package events

import "github.com/atomicstack/bizray-tui/internal/logging"

type UITracer struct{}

type InputTracer struct{}

var (
	UI    = UITracer{}
	Input = InputTracer{}
)

func (UITracer) Navigate(action, from, to string, depth int) {
	logging.Trace("nav."+action, map[string]interface{}{"from": from, "to": to, "depth": depth})
}

func (UITracer) Key(screen, key string) {
	logging.Trace("ui.key", map[string]interface{}{"screen": screen, "key": key})
}

func (UITracer) Cursor(screen string, selected, offset int) {
	logging.Trace("ui.cursor", map[string]interface{}{"screen": screen, "selected": selected, "offset": offset})
}

func (UITracer) Resize(width, height int) {
	logging.Trace("ui.resize", map[string]interface{}{"width": width, "height": height})
}

func (UITracer) Message(severity, text string) {
	logging.Trace("ui.message", map[string]interface{}{"severity": severity, "text": text})
}

func (UITracer) Fold(kind string) {
	logging.Trace("ui.fold", map[string]interface{}{"kind": kind})
}

func (UITracer) Clipboard(value string, err error) {
	payload := map[string]interface{}{"value": value}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("ui.clipboard", payload)
}

// Edit records a text field change. Only the length is logged so secrets
// never reach the trace file.
func (InputTracer) Edit(screen, field string, length, cursor int) {
	logging.Trace("input.edit", map[string]interface{}{
		"screen": screen,
		"field":  field,
		"length": length,
		"cursor": cursor,
	})
}

func (InputTracer) Rejected(screen, reason string) {
	logging.Trace("input.rejected", map[string]interface{}{"screen": screen, "reason": reason})
}
