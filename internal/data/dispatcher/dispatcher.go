package dispatcher

import (
	"fmt"

	"github.com/atomicstack/bizray-tui/internal/backend"
	"github.com/atomicstack/bizray-tui/internal/logging"
	"github.com/atomicstack/bizray-tui/internal/logging/events"
	"github.com/atomicstack/bizray-tui/internal/state"
)

// TokenStore persists the session credential.
type TokenStore interface {
	SaveToken(token string) error
}

// Dispatcher folds background updates into the application state and
// performs the follow-up persistence the fold asks for.
type Dispatcher struct {
	app   *state.App
	store TokenStore
}

func New(app *state.App, store TokenStore) *Dispatcher {
	return &Dispatcher{app: app, store: store}
}

// Handle applies u. Persistence failures are logged; the in-memory
// session stays valid either way.
func (d *Dispatcher) Handle(u backend.Update) state.FoldResult {
	events.UI.Fold(backend.KindOf(u))
	res := d.app.Fold(u)
	switch msg := u.(type) {
	case backend.AuthSucceeded:
		events.Auth.Login(msg.User.Username)
	case backend.SessionRestored:
		events.Auth.Restore(msg.User.Username)
	case backend.SessionEnded:
		events.Auth.Logout(msg.Text)
	}
	if res.CredentialChanged {
		d.PersistCredential()
	}
	if m := d.app.Message; m != nil && !res.Ignored {
		events.UI.Message(m.Severity.String(), m.Text)
	}
	return res
}

// Logout ends the session locally and forgets the stored token.
func (d *Dispatcher) Logout(reason string) {
	d.app.Logout()
	events.Auth.Logout(reason)
	d.PersistCredential()
}

// PersistCredential writes the current token, or clears it when signed out.
func (d *Dispatcher) PersistCredential() {
	if d.store == nil {
		return
	}
	if err := d.store.SaveToken(d.app.Token); err != nil {
		logging.Error(fmt.Errorf("persist credential: %w", err))
	}
}
