package ui

import (
	"fmt"

	"github.com/atomicstack/bizray-tui/internal/logging"
	"github.com/atomicstack/bizray-tui/internal/logging/events"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

var writeClipboard = clipboard.WriteAll

type clipboardResultMsg struct {
	value string
	err   error
}

// copyCmd writes value to the system clipboard off the UI loop.
func copyCmd(value string) tea.Cmd {
	return func() tea.Msg {
		return clipboardResultMsg{value: value, err: writeClipboard(value)}
	}
}

func (m *Model) handleClipboardMsg(msg tea.Msg) tea.Cmd {
	res, ok := msg.(clipboardResultMsg)
	if !ok {
		return nil
	}
	events.UI.Clipboard(res.value, res.err)
	if res.err != nil {
		logging.Warn("clipboard write failed: %v", res.err)
		m.app.SetWarning("Could not copy to clipboard")
		return nil
	}
	m.app.SetSuccess(fmt.Sprintf("Copied %s to clipboard", res.value))
	return nil
}
