package backend

import "github.com/atomicstack/bizray-tui/internal/api"

// Update is a message posted by a background task. The set of variants is
// closed: only types in this package implement it.
type Update interface {
	isUpdate()
}

// AuthSucceeded carries a fresh session from login or registration.
type AuthSucceeded struct {
	Token string
	User  api.User
}

// ResultsArrived carries one page of search results together with the
// request that produced it.
type ResultsArrived struct {
	Companies []api.CompanySummary
	Total     int
	Page      int
	Query     string
	Cities    []string
}

// DetailArrived carries a full company record.
type DetailArrived struct {
	Company api.Company
}

// IdentityUpdated carries the account after a profile change.
type IdentityUpdated struct {
	User api.User
}

// Succeeded reports a completed action with a user-facing message.
type Succeeded struct {
	Text string
}

// Failed reports a failed action. Text is already user-facing.
type Failed struct {
	Text   string
	Reauth bool
	Err    error
}

// BusyChanged sets the busy flag.
type BusyChanged struct {
	Busy bool
}

// SuggestionsArrived carries autocomplete candidates for Query.
type SuggestionsArrived struct {
	Query       string
	Suggestions []api.SearchSuggestion
	Err         error
}

// CitiesArrived carries the seat cities offered by the filter. Err is set
// when the lookup failed so the filter can offer a retry.
type CitiesArrived struct {
	Cities []api.City
	Err    error
}

// OverviewArrived carries registry statistics and popular companies. Either
// part may be missing when its request failed.
type OverviewArrived struct {
	Metrics *api.Metrics
	Popular []api.Recommendation
}

// SessionRestored carries the account behind a stored token.
type SessionRestored struct {
	User api.User
}

// SessionEnded reports that the server-side account is gone.
type SessionEnded struct {
	Text string
}

func (AuthSucceeded) isUpdate()      {}
func (ResultsArrived) isUpdate()     {}
func (DetailArrived) isUpdate()      {}
func (IdentityUpdated) isUpdate()    {}
func (Succeeded) isUpdate()          {}
func (Failed) isUpdate()             {}
func (BusyChanged) isUpdate()        {}
func (SuggestionsArrived) isUpdate() {}
func (CitiesArrived) isUpdate()      {}
func (OverviewArrived) isUpdate()    {}
func (SessionRestored) isUpdate()    {}
func (SessionEnded) isUpdate()       {}

// KindOf names an update for traces.
func KindOf(u Update) string {
	switch u.(type) {
	case AuthSucceeded:
		return "auth_succeeded"
	case ResultsArrived:
		return "results_arrived"
	case DetailArrived:
		return "detail_arrived"
	case IdentityUpdated:
		return "identity_updated"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	case BusyChanged:
		return "busy_changed"
	case SuggestionsArrived:
		return "suggestions_arrived"
	case CitiesArrived:
		return "cities_arrived"
	case OverviewArrived:
		return "overview_arrived"
	case SessionRestored:
		return "session_restored"
	case SessionEnded:
		return "session_ended"
	default:
		return "unknown"
	}
}
