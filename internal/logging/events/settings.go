package events

import "github.com/atomicstack/bizray-tui/internal/logging"

type SettingsTracer struct{}

var Settings = SettingsTracer{}

func (SettingsTracer) Saved(path string) {
	logging.Trace("settings.saved", map[string]interface{}{"path": path})
}

func (SettingsTracer) SaveFailed(path string, err error) {
	logging.Trace("settings.save_failed", map[string]interface{}{"path": path, "error": err.Error()})
}
