package ui

import (
	"github.com/atomicstack/bizray-tui/internal/state"
	uistate "github.com/atomicstack/bizray-tui/internal/ui/state"
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	ForceQuit key.Binding
	Quit      key.Binding
	Help      key.Binding
	F1        key.Binding
	Back      key.Binding
	Logout    key.Binding

	NextField key.Binding
	PrevField key.Binding
	FieldUp   key.Binding
	FieldDown key.Binding
	Submit    key.Binding
	Register  key.Binding

	Filter      key.Binding
	Account     key.Binding
	ToggleCity  key.Binding
	ClearCities key.Binding

	Up        key.Binding
	Down      key.Binding
	Top       key.Binding
	Bottom    key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	NextPage  key.Binding
	PrevPage  key.Binding
	Open      key.Binding
	NewSearch key.Binding
	Copy      key.Binding

	NextSection   key.Binding
	PrevSection   key.Binding
	ToggleSection key.Binding
	NextRecord    key.Binding
	PrevRecord    key.Binding

	ChangePassword key.Binding
	ChangeUsername key.Binding
	DeleteAccount  key.Binding
	Subscription   key.Binding
	Refresh        key.Binding
	SignOut        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		F1:        key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help")),
		Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Logout:    key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "log out")),

		NextField: key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next")),
		PrevField: key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "previous")),
		FieldUp:   key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		FieldDown: key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Register:  key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "register")),

		Filter:      key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "filter")),
		Account:     key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "account")),
		ToggleCity:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "toggle city")),
		ClearCities: key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "clear")),

		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("j", "down")),
		Top:       key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
		Bottom:    key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
		PageUp:    key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown:  key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		NextPage:  key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next page")),
		PrevPage:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "prev page")),
		Open:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		NewSearch: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Copy:      key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy FN")),

		NextSection:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next section")),
		PrevSection:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev section")),
		ToggleSection: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "expand")),
		NextRecord:    key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next result")),
		PrevRecord:    key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev result")),

		ChangePassword: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "password")),
		ChangeUsername: key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "username")),
		DeleteAccount:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Subscription:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "newsletter")),
		Refresh:        key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		SignOut:        key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "log out")),
	}
}

// shortHelp returns the hint bindings for the current screen and mode.
func (m *Model) shortHelp() []key.Binding {
	k := m.keys
	switch m.app.Screen().Kind {
	case uistate.ScreenLogin:
		return []key.Binding{k.NextField, k.Submit, k.Register, k.ForceQuit}
	case uistate.ScreenRegister:
		return []key.Binding{k.NextField, k.Submit, k.Back, k.ForceQuit}
	case uistate.ScreenSearch:
		if m.app.Search.FilterMode {
			return []key.Binding{k.FieldDown, k.ToggleCity, k.ClearCities, k.Back}
		}
		return []key.Binding{k.Submit, k.FieldDown, k.Filter, k.Account, k.F1, k.ForceQuit}
	case uistate.ScreenResults:
		return []key.Binding{k.Down, k.Open, k.NextPage, k.PrevPage, k.NewSearch, k.Back}
	case uistate.ScreenDetails:
		return []key.Binding{k.Down, k.NextSection, k.ToggleSection, k.NextRecord, k.Copy, k.Back}
	case uistate.ScreenAccount:
		if m.app.Account.Mode != state.AccountView {
			return []key.Binding{k.NextField, k.Submit, k.Back}
		}
		return []key.Binding{k.ChangePassword, k.ChangeUsername, k.Subscription, k.DeleteAccount, k.SignOut, k.Back}
	case uistate.ScreenHelp:
		return []key.Binding{k.Back, k.Quit}
	}
	return []key.Binding{k.Back, k.ForceQuit}
}

// helpSections lists every binding for the help screen.
func (m *Model) helpSections() []helpSection {
	k := m.keys
	return []helpSection{
		{title: "Global", bindings: []key.Binding{k.ForceQuit, k.Quit, k.F1, k.Back, k.Logout}},
		{title: "Login", bindings: []key.Binding{k.NextField, k.Submit, k.Register}},
		{title: "Search", bindings: []key.Binding{k.Submit, k.FieldDown, k.Filter, k.ToggleCity, k.ClearCities, k.Account}},
		{title: "Results", bindings: []key.Binding{k.Down, k.Up, k.Top, k.Bottom, k.PageDown, k.PageUp, k.NextPage, k.PrevPage, k.Open, k.NewSearch, k.Copy}},
		{title: "Details", bindings: []key.Binding{k.Down, k.Up, k.NextSection, k.PrevSection, k.ToggleSection, k.NextRecord, k.PrevRecord, k.Copy}},
		{title: "Account", bindings: []key.Binding{k.ChangePassword, k.ChangeUsername, k.Subscription, k.Refresh, k.DeleteAccount, k.SignOut}},
	}
}

type helpSection struct {
	title    string
	bindings []key.Binding
}
