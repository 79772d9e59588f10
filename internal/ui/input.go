package ui

import (
	"unicode"

	"github.com/atomicstack/bizray-tui/internal/logging/events"
	uistate "github.com/atomicstack/bizray-tui/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

// edit applies an editing key to field and traces the change. It reports
// false for keys that are not text edits so callers can handle them.
func (m *Model) edit(name string, field *uistate.TextField, msg tea.KeyMsg) bool {
	if field == nil || !editField(field, msg) {
		return false
	}
	events.Input.Edit(m.app.Screen().String(), name, field.Len(), field.Cursor())
	return true
}

func editField(field *uistate.TextField, msg tea.KeyMsg) bool {
	switch msg.String() {
	case "ctrl+a", "home":
		return field.MoveToStart()
	case "ctrl+e", "end":
		return field.MoveToEnd()
	case "ctrl+u":
		if field.IsEmpty() {
			return false
		}
		field.Clear()
		return true
	case "ctrl+w", "alt+backspace":
		return field.DeleteWordBackward()
	case "alt+b", "ctrl+left":
		return field.MoveWordLeft()
	case "alt+f", "ctrl+right":
		return field.MoveWordRight()
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		return field.DeleteBackward()
	case tea.KeyDelete:
		return field.DeleteForward()
	case tea.KeyLeft:
		return field.MoveLeft()
	case tea.KeyRight:
		return field.MoveRight()
	case tea.KeySpace:
		field.Insert(' ')
		return true
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false
			}
		}
		return field.InsertString(string(msg.Runes))
	}
	return false
}
