package events

import "github.com/atomicstack/bizray-tui/internal/logging"

type AuthTracer struct{}

var Auth = AuthTracer{}

func (AuthTracer) Login(user string) {
	logging.Trace("auth.login", map[string]interface{}{"user": user})
}

func (AuthTracer) Logout(reason string) {
	logging.Trace("auth.logout", map[string]interface{}{"reason": reason})
}

func (AuthTracer) Restore(user string) {
	logging.Trace("auth.restore", map[string]interface{}{"user": user})
}
