package ui

import (
	"github.com/atomicstack/bizray-tui/internal/logging/events"
	"github.com/atomicstack/bizray-tui/internal/state"
	uistate "github.com/atomicstack/bizray-tui/internal/ui/state"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	events.UI.Key(m.app.Screen().String(), keyMsg.String())
	switch {
	case key.Matches(keyMsg, m.keys.ForceQuit):
		m.app.Quit()
		return nil
	case key.Matches(keyMsg, m.keys.F1):
		m.openHelp()
		return nil
	case key.Matches(keyMsg, m.keys.Logout) && m.app.Token != "":
		m.dispatcher.Logout("user")
		return nil
	}
	if handled, cmd := m.handleScreenKey(keyMsg); handled {
		return cmd
	}
	if !m.textFocused() {
		switch {
		case key.Matches(keyMsg, m.keys.Quit):
			m.app.Quit()
			return nil
		case key.Matches(keyMsg, m.keys.Help):
			m.openHelp()
			return nil
		}
	}
	if key.Matches(keyMsg, m.keys.Back) {
		m.goBack()
	}
	return nil
}

func (m *Model) handleScreenKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch m.app.Screen().Kind {
	case uistate.ScreenLogin:
		return m.handleLoginKey(msg)
	case uistate.ScreenRegister:
		return m.handleRegisterKey(msg)
	case uistate.ScreenSearch:
		return m.handleSearchKey(msg)
	case uistate.ScreenResults:
		return m.handleResultsKey(msg)
	case uistate.ScreenDetails:
		return m.handleDetailsKey(msg)
	case uistate.ScreenAccount:
		return m.handleAccountKey(msg)
	default:
		return false, nil
	}
}

// textFocused reports whether printable keys go to a text field.
func (m *Model) textFocused() bool {
	switch m.app.Screen().Kind {
	case uistate.ScreenLogin, uistate.ScreenRegister, uistate.ScreenSearch:
		return true
	case uistate.ScreenAccount:
		return m.app.Account.Mode != state.AccountView
	default:
		return false
	}
}

func (m *Model) push(s uistate.ScreenID) {
	from := m.app.Screen()
	if m.app.Nav.Push(s) {
		events.UI.Navigate("push", from.String(), s.String(), m.app.Nav.HistoryLen())
	}
}

func (m *Model) replace(s uistate.ScreenID) {
	from := m.app.Screen()
	m.app.Nav.Replace(s)
	events.UI.Navigate("replace", from.String(), s.String(), m.app.Nav.HistoryLen())
}

// goBack clears the message and returns to the previous screen, if any.
func (m *Model) goBack() {
	m.app.ClearMessage()
	from := m.app.Screen()
	if m.app.Nav.Pop() {
		events.UI.Navigate("pop", from.String(), m.app.Screen().String(), m.app.Nav.HistoryLen())
	}
}

func (m *Model) openHelp() {
	if m.app.Screen().Kind == uistate.ScreenHelp {
		return
	}
	m.push(uistate.Screen(uistate.ScreenHelp))
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	m.width = size.Width
	m.height = size.Height
	m.help.Width = size.Width
	events.UI.Resize(size.Width, size.Height)
	m.app.Details.Scroll(0, m.detailMaxOffset())
	return nil
}

// reject shows a validation problem without starting any work.
func (m *Model) reject(text string) {
	m.app.SetError(text)
	events.Input.Rejected(m.app.Screen().String(), text)
}
