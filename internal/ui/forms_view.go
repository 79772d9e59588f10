package ui

import (
	"fmt"

	"github.com/atomicstack/bizray-tui/internal/format/table"
	"github.com/atomicstack/bizray-tui/internal/format/text"
	"github.com/atomicstack/bizray-tui/internal/state"
)

func (m *Model) heading(s string) styledLine {
	return styledLine{text: s, style: m.styles.Header}
}

func (m *Model) subtle(s string) styledLine {
	return styledLine{text: s, style: m.styles.Subtle}
}

func (m *Model) loginLines() []styledLine {
	form := &m.app.Login
	return []styledLine{
		m.heading("Sign in to BizRay"),
		{},
		m.fieldLine(fieldSpec{label: "Email", field: &form.Email, focused: form.Focus == state.LoginEmail, placeholder: "you@example.com"}),
		m.fieldLine(fieldSpec{label: "Password", field: &form.Password, focused: form.Focus == state.LoginPassword, secret: true}),
		{},
		m.subtle("No account yet? Press Ctrl+R to register."),
	}
}

func (m *Model) registerLines() []styledLine {
	form := &m.app.Register
	return []styledLine{
		m.heading("Create an account"),
		{},
		m.fieldLine(fieldSpec{label: "Username", field: &form.Username, focused: form.Focus == state.RegisterUsername}),
		m.fieldLine(fieldSpec{label: "Email", field: &form.Email, focused: form.Focus == state.RegisterEmail, placeholder: "you@example.com"}),
		m.fieldLine(fieldSpec{label: "Password", field: &form.Password, focused: form.Focus == state.RegisterPassword, secret: true, placeholder: "at least 8 characters"}),
		{},
		m.subtle("Press Esc to return to the login screen."),
	}
}

func (m *Model) accountLines() []styledLine {
	form := &m.app.Account
	switch form.Mode {
	case state.AccountChangePassword:
		focus := form.Focused()
		return []styledLine{
			m.heading("Change password"),
			{},
			m.fieldLine(fieldSpec{label: "Current password", field: &form.CurrentPassword, focused: focus == &form.CurrentPassword, secret: true}),
			m.fieldLine(fieldSpec{label: "New password", field: &form.NewPassword, focused: focus == &form.NewPassword, secret: true}),
			m.fieldLine(fieldSpec{label: "Confirm password", field: &form.ConfirmPassword, focused: focus == &form.ConfirmPassword, secret: true}),
		}
	case state.AccountChangeUsername:
		return []styledLine{
			m.heading("Change username"),
			{},
			m.fieldLine(fieldSpec{label: "New username", field: &form.NewUsername, focused: true}),
		}
	case state.AccountDelete:
		return []styledLine{
			m.heading("Delete account"),
			{},
			{text: "This permanently removes your account.", style: m.styles.Warning},
			m.fieldLine(fieldSpec{label: "Type DELETE", field: &form.DeleteConfirmation, focused: true}),
		}
	}

	lines := []styledLine{m.heading("Account"), {}}
	user := m.app.User
	if user == nil {
		return append(lines, m.subtle("Loading profile…"))
	}
	for _, row := range table.KeyValue([][2]string{
		{"Username", text.OrNA(user.Username)},
		{"Email", text.OrNA(user.Email)},
		{"Role", text.OrNA(user.Role)},
		{"Member since", text.OrNA(user.RegisteredAt)},
		{"User ID", fmt.Sprintf("%d", user.ID)},
	}) {
		lines = append(lines, styledLine{text: "  " + row, style: m.styles.Value})
	}
	return append(lines,
		styledLine{},
		m.subtle("p change password · u change username · s toggle newsletter"),
		m.subtle("r refresh · d delete account · l log out"),
	)
}
