package ui

import (
	"strings"

	"github.com/atomicstack/bizray-tui/internal/backend"
	"github.com/atomicstack/bizray-tui/internal/state"
	uistate "github.com/atomicstack/bizray-tui/internal/ui/state"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const minPasswordLength = 8

func (m *Model) handleLoginKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	form := &m.app.Login
	switch {
	case key.Matches(msg, m.keys.NextField), key.Matches(msg, m.keys.PrevField):
		form.ToggleFocus()
		return true, nil
	case key.Matches(msg, m.keys.Submit):
		m.submitLogin()
		return true, nil
	case key.Matches(msg, m.keys.Register):
		m.app.ClearMessage()
		m.push(uistate.Screen(uistate.ScreenRegister))
		return true, nil
	}
	name := "email"
	if form.Focus == state.LoginPassword {
		name = "password"
	}
	return m.edit(name, form.Focused(), msg), nil
}

func (m *Model) submitLogin() {
	email := strings.TrimSpace(m.app.Login.Email.Value())
	password := m.app.Login.Password.Value()
	if email == "" || password == "" {
		m.reject("Email and password are required")
		return
	}
	m.submit("login", true, backend.Login(m.authorize(""), email, password))
}

func (m *Model) handleRegisterKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	form := &m.app.Register
	switch {
	case key.Matches(msg, m.keys.NextField):
		form.NextField()
		return true, nil
	case key.Matches(msg, m.keys.PrevField):
		form.PrevField()
		return true, nil
	case key.Matches(msg, m.keys.Submit):
		m.submitRegister()
		return true, nil
	}
	return m.edit(registerFieldName(form.Focus), form.Focused(), msg), nil
}

func registerFieldName(f state.RegisterField) string {
	switch f {
	case state.RegisterEmail:
		return "email"
	case state.RegisterPassword:
		return "password"
	default:
		return "username"
	}
}

func (m *Model) submitRegister() {
	form := &m.app.Register
	username := strings.TrimSpace(form.Username.Value())
	email := strings.TrimSpace(form.Email.Value())
	password := form.Password.Value()
	switch {
	case username == "" || email == "" || password == "":
		m.reject("Username, email and password are required")
		return
	case !strings.Contains(email, "@"):
		m.reject("Please enter a valid email address")
		return
	case form.Password.Len() < minPasswordLength:
		m.reject("Password must be at least 8 characters")
		return
	}
	m.submit("register", true, backend.Register(m.authorize(""), username, email, password))
}

func (m *Model) openAccount() {
	m.app.ClearMessage()
	m.app.Account.Reset()
	m.push(uistate.Screen(uistate.ScreenAccount))
	if m.app.User == nil && m.app.Token != "" {
		m.submit("refresh profile", true, backend.RefreshProfile(m.service()))
	}
}

func (m *Model) handleAccountKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	form := &m.app.Account
	if form.Mode == state.AccountView {
		return m.handleAccountViewKey(msg)
	}
	switch {
	case key.Matches(msg, m.keys.Back):
		form.Reset()
		m.app.ClearMessage()
		return true, nil
	case key.Matches(msg, m.keys.NextField):
		form.NextField()
		return true, nil
	case key.Matches(msg, m.keys.PrevField):
		form.PrevField()
		return true, nil
	case key.Matches(msg, m.keys.Submit):
		m.submitAccountForm()
		return true, nil
	}
	return m.edit(form.Mode.String(), form.Focused(), msg), nil
}

func (m *Model) handleAccountViewKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	form := &m.app.Account
	switch {
	case key.Matches(msg, m.keys.ChangePassword):
		form.Enter(state.AccountChangePassword)
	case key.Matches(msg, m.keys.ChangeUsername):
		form.Enter(state.AccountChangeUsername)
	case key.Matches(msg, m.keys.DeleteAccount):
		form.Enter(state.AccountDelete)
	case key.Matches(msg, m.keys.Subscription):
		m.submit("toggle subscription", true, backend.ToggleSubscription(m.service()))
	case key.Matches(msg, m.keys.Refresh):
		m.submit("refresh profile", true, backend.RefreshProfile(m.service()))
	case key.Matches(msg, m.keys.SignOut):
		m.dispatcher.Logout("user")
	default:
		return false, nil
	}
	return true, nil
}

func (m *Model) submitAccountForm() {
	form := &m.app.Account
	switch form.Mode {
	case state.AccountChangePassword:
		current := form.CurrentPassword.Value()
		next := form.NewPassword.Value()
		switch {
		case current == "" || next == "" || form.ConfirmPassword.IsEmpty():
			m.reject("All password fields are required")
		case form.NewPassword.Len() < minPasswordLength:
			m.reject("New password must be at least 8 characters")
		case next != form.ConfirmPassword.Value():
			m.reject("New passwords do not match")
		default:
			m.submit("change password", true, backend.ChangePassword(m.service(), current, next))
		}
	case state.AccountChangeUsername:
		username := strings.TrimSpace(form.NewUsername.Value())
		switch {
		case username == "":
			m.reject("Username is required")
		case m.app.User != nil && username == m.app.User.Username:
			m.reject("New username must differ from the current one")
		default:
			m.submit("change username", true, backend.ChangeUsername(m.service(), username))
		}
	case state.AccountDelete:
		if form.DeleteConfirmation.Value() != state.DeleteConfirmation {
			m.reject("Type DELETE to confirm account deletion")
			return
		}
		m.submit("delete account", true, backend.DeleteAccount(m.service()))
	}
}
