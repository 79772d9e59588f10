package backend

import (
	"context"

	"github.com/atomicstack/bizray-tui/internal/api"
)

// guarded wraps a busy-flag task: it posts the outcome and then clears busy,
// so a failure can never leave the UI locked.
func guarded(run func(ctx context.Context) Update) Task {
	return func(ctx context.Context, out Sink) {
		out.Send(run(ctx))
		out.Send(BusyChanged{Busy: false})
	}
}

func failed(err error) Failed {
	return Failed{
		Text:   api.UserMessage(err),
		Reauth: api.RequiresReauth(err),
		Err:    err,
	}
}

// Login authenticates with email and password.
func Login(svc api.Service, email, password string) Task {
	return guarded(func(ctx context.Context) Update {
		resp, err := svc.Login(ctx, email, password)
		if err != nil {
			return failed(err)
		}
		return AuthSucceeded{Token: resp.Token, User: resp.User}
	})
}

// Register creates an account and signs in.
func Register(svc api.Service, username, email, password string) Task {
	return guarded(func(ctx context.Context) Update {
		resp, err := svc.Register(ctx, username, email, password)
		if err != nil {
			return failed(err)
		}
		return AuthSucceeded{Token: resp.Token, User: resp.User}
	})
}

// Search fetches one page of companies.
func Search(svc api.Service, params api.SearchParams) Task {
	return guarded(func(ctx context.Context) Update {
		resp, err := svc.SearchCompanies(ctx, params)
		if err != nil {
			return failed(err)
		}
		return ResultsArrived{
			Companies: resp.Companies,
			Total:     resp.Total,
			Page:      params.Page,
			Query:     params.Query,
			Cities:    params.Cities,
		}
	})
}

// FetchDetail loads the full record for fn.
func FetchDetail(svc api.Service, fn string) Task {
	return guarded(func(ctx context.Context) Update {
		company, err := svc.Company(ctx, fn)
		if err != nil {
			return failed(err)
		}
		return DetailArrived{Company: company}
	})
}

func ChangePassword(svc api.Service, current, next string) Task {
	return guarded(func(ctx context.Context) Update {
		if err := svc.ChangePassword(ctx, current, next); err != nil {
			return failed(err)
		}
		return Succeeded{Text: "Password changed successfully!"}
	})
}

func ChangeUsername(svc api.Service, username string) Task {
	return guarded(func(ctx context.Context) Update {
		user, err := svc.ChangeUsername(ctx, username)
		if err != nil {
			return failed(err)
		}
		return IdentityUpdated{User: user}
	})
}

func ToggleSubscription(svc api.Service) Task {
	return guarded(func(ctx context.Context) Update {
		user, err := svc.ToggleSubscription(ctx)
		if err != nil {
			return failed(err)
		}
		return IdentityUpdated{User: user}
	})
}

// RefreshProfile reloads the signed-in account.
func RefreshProfile(svc api.Service) Task {
	return guarded(func(ctx context.Context) Update {
		user, err := svc.Me(ctx)
		if err != nil {
			return failed(err)
		}
		return IdentityUpdated{User: user}
	})
}

func DeleteAccount(svc api.Service) Task {
	return guarded(func(ctx context.Context) Update {
		if err := svc.DeleteAccount(ctx); err != nil {
			return failed(err)
		}
		return SessionEnded{Text: "Account deleted"}
	})
}

// RestoreSession resolves the account behind a stored token. It does not
// touch the busy flag.
func RestoreSession(svc api.Service) Task {
	return func(ctx context.Context, out Sink) {
		user, err := svc.Me(ctx)
		if err != nil {
			out.Send(failed(err))
			return
		}
		out.Send(SessionRestored{User: user})
	}
}

// Suggest looks up autocomplete candidates for query. Failures are carried
// in the update and not shown to the user. A lookup superseded by a newer
// Suggest while waiting for its slot is dropped without a request.
func Suggest(svc api.Service, throttle *Throttle, query string) Task {
	ticket := throttle.Ticket()
	return func(ctx context.Context, out Sink) {
		if !throttle.Wait(ctx) || !throttle.Latest(ticket) {
			return
		}
		suggestions, err := svc.Suggestions(ctx, query)
		out.Send(SuggestionsArrived{Query: query, Suggestions: suggestions, Err: err})
	}
}

// LoadCities fetches the city list for the search filter.
func LoadCities(svc api.Service) Task {
	return func(ctx context.Context, out Sink) {
		cities, err := svc.Cities(ctx, "")
		if err != nil {
			out.Send(failed(err))
			out.Send(CitiesArrived{Err: err})
			return
		}
		out.Send(CitiesArrived{Cities: cities})
	}
}

// LoadOverview fetches registry statistics and popular companies.
func LoadOverview(svc api.Service) Task {
	return func(ctx context.Context, out Sink) {
		var update OverviewArrived
		if metrics, err := svc.Metrics(ctx); err == nil {
			update.Metrics = &metrics
		}
		if popular, err := svc.Recommendations(ctx); err == nil {
			update.Popular = popular
		}
		out.Send(update)
	}
}
