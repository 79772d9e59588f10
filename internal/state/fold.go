package state

import (
	"github.com/atomicstack/bizray-tui/internal/backend"
	uistate "github.com/atomicstack/bizray-tui/internal/ui/state"
)

// FoldResult tells the loop which follow-up work a fold requires.
type FoldResult struct {
	CredentialChanged  bool
	ResultsChanged     bool
	DetailChanged      bool
	SuggestionsChanged bool
	Ignored            bool
}

// Fold applies one background update. It never blocks and never fails;
// results for screens the user has left are still applied.
func (a *App) Fold(u backend.Update) FoldResult {
	var res FoldResult
	switch msg := u.(type) {
	case backend.AuthSucceeded:
		user := msg.User
		a.User = &user
		a.Token = msg.Token
		a.Nav.Reset(uistate.Screen(uistate.ScreenSearch))
		a.Login.Reset()
		a.Register.Reset()
		a.SetSuccess("Login successful!")
		res.CredentialChanged = true

	case backend.ResultsArrived:
		a.Results.List.SetItems(msg.Companies)
		a.Results.Total = msg.Total
		a.Results.Query = msg.Query
		a.Results.Cities = msg.Cities
		if msg.Page > 0 {
			a.Results.CurrentPage = msg.Page
		}
		a.Nav.Push(uistate.Screen(uistate.ScreenResults))
		a.Busy = false
		res.ResultsChanged = true

	case backend.DetailArrived:
		company := msg.Company
		a.Details.Start(company.Firmenbuchnummer)
		a.Details.Company = &company
		a.Busy = false
		res.DetailChanged = true

	case backend.IdentityUpdated:
		user := msg.User
		a.User = &user
		a.Account.Reset()
		a.SetSuccess("Account updated successfully!")

	case backend.Succeeded:
		a.Account.Reset()
		a.SetSuccess(msg.Text)

	case backend.Failed:
		a.Message = &StatusMessage{Text: msg.Text, Severity: SeverityError, Reauth: msg.Reauth}

	case backend.BusyChanged:
		a.Busy = msg.Busy

	case backend.SuggestionsArrived:
		if msg.Err != nil || msg.Query != a.Search.Query.Value() {
			res.Ignored = true
			break
		}
		a.Search.Suggestions.SetItems(msg.Suggestions)
		a.Search.SuggestionActive = false
		res.SuggestionsChanged = true

	case backend.CitiesArrived:
		a.Search.CitiesLoading = false
		if msg.Err != nil {
			break
		}
		a.Search.AllCities = msg.Cities
		a.Search.CitiesLoaded = true
		a.Search.ApplyCityFilter(1)

	case backend.OverviewArrived:
		if msg.Metrics != nil {
			a.Overview.Metrics = msg.Metrics
		}
		if msg.Popular != nil {
			a.Overview.Popular = msg.Popular
			if !a.Search.QueryReady() {
				a.Search.ShowPopular(msg.Popular)
				res.SuggestionsChanged = true
			}
		}

	case backend.SessionRestored:
		user := msg.User
		a.User = &user

	case backend.SessionEnded:
		a.Logout()
		a.SetInfo(msg.Text)
		res.CredentialChanged = true

	default:
		res.Ignored = true
	}
	return res
}
