package ui

import (
	"github.com/atomicstack/bizray-tui/internal/backend"
	"github.com/atomicstack/bizray-tui/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// waitForUpdate blocks in a Bubble Tea command goroutine until the runner
// posts an update, then hands it to the loop.
func waitForUpdate(r *backend.Runner) tea.Cmd {
	return func() tea.Msg {
		u, ok := <-r.Events()
		if !ok {
			return updatesClosedMsg{}
		}
		return updateMsg{update: u}
	}
}

type updateMsg struct {
	update backend.Update
}

type updatesClosedMsg struct{}

func (m *Model) handleUpdateMsg(msg tea.Msg) tea.Cmd {
	um, ok := msg.(updateMsg)
	if !ok {
		return nil
	}
	m.applyUpdate(um.update)
	m.drainUpdates()
	return waitForUpdate(m.runner)
}

func (m *Model) handleUpdatesClosedMsg(tea.Msg) tea.Cmd {
	events.App.Stop("updates closed")
	return nil
}

// drainUpdates folds every update already queued without blocking.
func (m *Model) drainUpdates() int {
	n := 0
	for {
		select {
		case u, ok := <-m.runner.Events():
			if !ok {
				return n
			}
			m.applyUpdate(u)
			n++
		default:
			return n
		}
	}
}

func (m *Model) applyUpdate(u backend.Update) {
	m.dispatcher.Handle(u)
	if _, ok := u.(backend.AuthSucceeded); ok {
		m.loadOverview()
	}
}
