package state

// ScreenKind identifies one of the application's screens.
type ScreenKind int

const (
	ScreenLogin ScreenKind = iota
	ScreenRegister
	ScreenSearch
	ScreenResults
	ScreenDetails
	ScreenAccount
	ScreenHelp
)

var screenNames = map[ScreenKind]string{
	ScreenLogin:    "login",
	ScreenRegister: "register",
	ScreenSearch:   "search",
	ScreenResults:  "results",
	ScreenDetails:  "details",
	ScreenAccount:  "account",
	ScreenHelp:     "help",
}

func (k ScreenKind) String() string {
	if name, ok := screenNames[k]; ok {
		return name
	}
	return "unknown"
}

// ScreenID is a screen tag plus an optional parameter. Two IDs are equal
// only when both the kind and the parameter match.
type ScreenID struct {
	Kind  ScreenKind
	Param string
}

// Screen returns the unparameterised ID for kind.
func Screen(kind ScreenKind) ScreenID { return ScreenID{Kind: kind} }

// Details returns the detail screen for the given firmenbuchnummer.
func Details(fn string) ScreenID { return ScreenID{Kind: ScreenDetails, Param: fn} }

func (s ScreenID) String() string {
	if s.Param == "" {
		return s.Kind.String()
	}
	return s.Kind.String() + ":" + s.Param
}

// MaxHistory bounds the number of screens remembered for back navigation.
const MaxHistory = 10

// Navigation holds the current screen and a bounded back history.
type Navigation struct {
	current ScreenID
	history []ScreenID
}

// NewNavigation starts navigation at initial with no history.
func NewNavigation(initial ScreenID) *Navigation {
	return &Navigation{current: initial}
}

// Current returns the visible screen.
func (n *Navigation) Current() ScreenID { return n.current }

// Push makes s current and remembers the previous screen. Pushing the
// current screen again does nothing.
func (n *Navigation) Push(s ScreenID) bool {
	if s == n.current {
		return false
	}
	n.history = append(n.history, n.current)
	if len(n.history) > MaxHistory {
		n.history = append(n.history[:0], n.history[len(n.history)-MaxHistory:]...)
	}
	n.current = s
	return true
}

// Pop returns to the most recent history entry. It reports false and leaves
// the current screen alone when there is nothing to go back to.
func (n *Navigation) Pop() bool {
	if len(n.history) == 0 {
		return false
	}
	last := len(n.history) - 1
	n.current = n.history[last]
	n.history = n.history[:last]
	return true
}

// Replace swaps the current screen without touching history.
func (n *Navigation) Replace(s ScreenID) {
	n.current = s
}

// Reset drops all history and makes s current.
func (n *Navigation) Reset(s ScreenID) {
	n.history = n.history[:0]
	n.current = s
}

// CanGoBack reports whether Pop would succeed.
func (n *Navigation) CanGoBack() bool { return len(n.history) > 0 }

// HistoryLen returns the number of remembered screens.
func (n *Navigation) HistoryLen() int { return len(n.history) }

// History returns a copy of the remembered screens, oldest first.
func (n *Navigation) History() []ScreenID {
	out := make([]ScreenID, len(n.history))
	copy(out, n.history)
	return out
}
