// Package state holds the application state owned by the UI loop. Nothing in
// this package performs I/O or blocks; background results enter only
// through App.Fold.
package state

import (
	"github.com/atomicstack/bizray-tui/internal/api"
	uistate "github.com/atomicstack/bizray-tui/internal/ui/state"
)

// DefaultPageSize is used when no page size is configured.
const DefaultPageSize = 12

// Severity classifies a status message for presentation.
type Severity int

const (
	SeverityInfo Severity = iota
	SeveritySuccess
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeveritySuccess:
		return "success"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "info"
	}
}

// StatusMessage is the single transient message shown to the user.
type StatusMessage struct {
	Text     string
	Severity Severity
	Reauth   bool
}

// Overview holds registry statistics and popular companies for the search screen.
type Overview struct {
	Metrics *api.Metrics
	Popular []api.Recommendation
}

// App is the whole client state. Exactly one instance exists per process
// and only the UI loop mutates it.
type App struct {
	Nav     *uistate.Navigation
	User    *api.User
	Token   string
	Message *StatusMessage
	Busy    bool

	Login    LoginForm
	Register RegisterForm
	Search   SearchForm
	Results  ResultsView
	Details  DetailsView
	Account  AccountForm
	Overview Overview

	quit bool
}

// Options seed a new App.
type Options struct {
	Token    string
	PageSize int
}

// New builds the initial state. A stored token starts on the search screen,
// otherwise on login.
func New(opts Options) *App {
	initial := uistate.Screen(uistate.ScreenLogin)
	if opts.Token != "" {
		initial = uistate.Screen(uistate.ScreenSearch)
	}
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &App{
		Nav:     uistate.NewNavigation(initial),
		Token:   opts.Token,
		Results: ResultsView{CurrentPage: 1, PageSize: pageSize},
		Details: DetailsView{Expanded: defaultExpanded()},
	}
}

// Screen returns the current screen.
func (a *App) Screen() uistate.ScreenID { return a.Nav.Current() }

// SetMessage replaces the status message.
func (a *App) SetMessage(text string, severity Severity) {
	a.Message = &StatusMessage{Text: text, Severity: severity}
}

func (a *App) SetInfo(text string)    { a.SetMessage(text, SeverityInfo) }
func (a *App) SetSuccess(text string) { a.SetMessage(text, SeveritySuccess) }
func (a *App) SetWarning(text string) { a.SetMessage(text, SeverityWarning) }
func (a *App) SetError(text string)   { a.SetMessage(text, SeverityError) }

// ClearMessage removes the status message.
func (a *App) ClearMessage() { a.Message = nil }

// IsAuthenticated requires both an identity and a token.
func (a *App) IsAuthenticated() bool {
	return a.User != nil && a.Token != ""
}

// Logout forgets the identity and token and returns to the login screen
// with no back history.
func (a *App) Logout() {
	a.User = nil
	a.Token = ""
	a.Nav.Reset(uistate.Screen(uistate.ScreenLogin))
	a.Login.Reset()
	a.Register.Reset()
	a.Account.Reset()
	a.SetInfo("Logged out successfully")
}

// Quit requests process exit.
func (a *App) Quit() { a.quit = true }

// ShouldQuit reports whether Quit was called.
func (a *App) ShouldQuit() bool { return a.quit }
