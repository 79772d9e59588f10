package state

import uistate "github.com/atomicstack/bizray-tui/internal/ui/state"

// LoginField identifies a field of the login form.
type LoginField int

const (
	LoginEmail LoginField = iota
	LoginPassword
)

// LoginForm is the login screen input.
type LoginForm struct {
	Email    uistate.TextField
	Password uistate.TextField
	Focus    LoginField
}

// Focused returns the field receiving keystrokes.
func (f *LoginForm) Focused() *uistate.TextField {
	if f.Focus == LoginPassword {
		return &f.Password
	}
	return &f.Email
}

// ToggleFocus switches between the two fields.
func (f *LoginForm) ToggleFocus() {
	if f.Focus == LoginEmail {
		f.Focus = LoginPassword
	} else {
		f.Focus = LoginEmail
	}
}

func (f *LoginForm) Reset() {
	f.Email.Clear()
	f.Password.Clear()
	f.Focus = LoginEmail
}

// RegisterField identifies a field of the registration form.
type RegisterField int

const (
	RegisterUsername RegisterField = iota
	RegisterEmail
	RegisterPassword
	registerFieldCount
)

// RegisterForm is the registration screen input.
type RegisterForm struct {
	Username uistate.TextField
	Email    uistate.TextField
	Password uistate.TextField
	Focus    RegisterField
}

func (f *RegisterForm) Focused() *uistate.TextField {
	switch f.Focus {
	case RegisterEmail:
		return &f.Email
	case RegisterPassword:
		return &f.Password
	default:
		return &f.Username
	}
}

func (f *RegisterForm) NextField() {
	f.Focus = (f.Focus + 1) % registerFieldCount
}

func (f *RegisterForm) PrevField() {
	f.Focus = (f.Focus + registerFieldCount - 1) % registerFieldCount
}

func (f *RegisterForm) Reset() {
	f.Username.Clear()
	f.Email.Clear()
	f.Password.Clear()
	f.Focus = RegisterUsername
}

// AccountMode selects what the account screen is doing.
type AccountMode int

const (
	AccountView AccountMode = iota
	AccountChangePassword
	AccountChangeUsername
	AccountDelete
)

func (m AccountMode) String() string {
	switch m {
	case AccountChangePassword:
		return "change-password"
	case AccountChangeUsername:
		return "change-username"
	case AccountDelete:
		return "delete"
	default:
		return "view"
	}
}

// DeleteConfirmation is the text the user must type to delete the account.
const DeleteConfirmation = "DELETE"

// AccountForm is the account screen input.
type AccountForm struct {
	Mode               AccountMode
	CurrentPassword    uistate.TextField
	NewPassword        uistate.TextField
	ConfirmPassword    uistate.TextField
	NewUsername        uistate.TextField
	DeleteConfirmation uistate.TextField
	Focus              int
}

// Fields returns the editable fields of the current mode in tab order.
func (f *AccountForm) Fields() []*uistate.TextField {
	switch f.Mode {
	case AccountChangePassword:
		return []*uistate.TextField{&f.CurrentPassword, &f.NewPassword, &f.ConfirmPassword}
	case AccountChangeUsername:
		return []*uistate.TextField{&f.NewUsername}
	case AccountDelete:
		return []*uistate.TextField{&f.DeleteConfirmation}
	default:
		return nil
	}
}

// Focused returns the field receiving keystrokes, or nil in view mode.
func (f *AccountForm) Focused() *uistate.TextField {
	fields := f.Fields()
	if len(fields) == 0 {
		return nil
	}
	if f.Focus < 0 || f.Focus >= len(fields) {
		f.Focus = 0
	}
	return fields[f.Focus]
}

func (f *AccountForm) NextField() {
	if n := len(f.Fields()); n > 0 {
		f.Focus = (f.Focus + 1) % n
	}
}

func (f *AccountForm) PrevField() {
	if n := len(f.Fields()); n > 0 {
		f.Focus = (f.Focus + n - 1) % n
	}
}

// Enter switches to mode with empty fields.
func (f *AccountForm) Enter(mode AccountMode) {
	f.Reset()
	f.Mode = mode
}

// Reset clears every field and returns to view mode.
func (f *AccountForm) Reset() {
	f.Mode = AccountView
	f.CurrentPassword.Clear()
	f.NewPassword.Clear()
	f.ConfirmPassword.Clear()
	f.NewUsername.Clear()
	f.DeleteConfirmation.Clear()
	f.Focus = 0
}
