package ui

import (
	"fmt"
	"testing"

	"github.com/atomicstack/bizray-tui/internal/api"
	"github.com/atomicstack/bizray-tui/internal/backend"
	"github.com/atomicstack/bizray-tui/internal/backend/backendtest"
	"github.com/atomicstack/bizray-tui/internal/state"
	uistate "github.com/atomicstack/bizray-tui/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

func newTestModel(t *testing.T, app *state.App) (*Model, *backendtest.Service) {
	t.Helper()
	if app == nil {
		app = state.New(state.Options{})
	}
	svc := backendtest.New()
	runner := backend.NewRunner(64)
	t.Cleanup(runner.Stop)
	m := NewModel(Options{
		App:             app,
		Runner:          runner,
		Authorize:       svc.Authorize,
		ShowHints:       true,
		Width:           100,
		Height:          30,
		SuggestInterval: -1,
	})
	return m, svc
}

func signedInApp() *state.App {
	app := state.New(state.Options{Token: "tok"})
	app.User = &api.User{Username: "anna", Email: "anna@example.at"}
	return app
}

func pageOf(total int) func(api.SearchParams) (api.SearchResponse, error) {
	return func(p api.SearchParams) (api.SearchResponse, error) {
		items := make([]api.CompanySummary, 0, p.Limit)
		for i := 0; i < p.Limit && (p.Page-1)*p.Limit+i < total; i++ {
			n := (p.Page-1)*p.Limit + i
			items = append(items, api.CompanySummary{
				Firmenbuchnummer: fmt.Sprintf("%06da", n),
				Name:             fmt.Sprintf("Company %02d", n),
				Seat:             "Wien",
			})
		}
		return api.SearchResponse{Companies: items, Total: total}, nil
	}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestLoginWithEmptyPasswordSpawnsNothing(t *testing.T) {
	m, svc := newTestModel(t, nil)
	h := NewHarness(m)

	h.Type("anna@example.at")
	h.Key(tea.KeyEnter)

	if m.runner.InFlight() != 0 || m.app.Busy {
		t.Fatalf("expected nothing in flight, got %d busy=%v", m.runner.InFlight(), m.app.Busy)
	}
	if m.app.Message == nil || m.app.Message.Text != "Email and password are required" {
		t.Fatalf("unexpected message %+v", m.app.Message)
	}
	h.Settle()
	if svc.Calls("Login") != 0 {
		t.Fatalf("expected no login call")
	}
}

func TestLoginSuccessShowsSearch(t *testing.T) {
	m, svc := newTestModel(t, nil)
	svc.AuthResponse = api.AuthResponse{Token: "fresh", User: api.User{Username: "anna"}}
	h := NewHarness(m)

	h.Type("anna@example.at")
	h.Key(tea.KeyTab)
	h.Type("secret")
	h.Key(tea.KeyEnter)
	if !m.app.Busy {
		t.Fatalf("expected busy while logging in")
	}
	h.Settle()

	if m.app.Screen().Kind != uistate.ScreenSearch || !m.app.IsAuthenticated() {
		t.Fatalf("expected authenticated search screen, got %s", m.app.Screen())
	}
	if m.app.Busy || m.app.Token != "fresh" {
		t.Fatalf("expected busy cleared and token stored")
	}
}

func TestLoginFailureShowsMessage(t *testing.T) {
	m, svc := newTestModel(t, nil)
	svc.Err = api.FromHTTPResponse(401, "bad credentials")
	h := NewHarness(m)
	m.app.Login.Email.SetValue("anna@example.at")
	m.app.Login.Password.SetValue("wrong")

	h.Key(tea.KeyEnter)
	h.Settle()

	if m.app.Busy {
		t.Fatalf("expected busy cleared after failure")
	}
	if m.app.Message == nil || m.app.Message.Severity != state.SeverityError {
		t.Fatalf("expected error message, got %+v", m.app.Message)
	}
	if m.app.Screen().Kind != uistate.ScreenLogin {
		t.Fatalf("expected to stay on login")
	}
}

func TestSecondSearchWhileBusyIsRejected(t *testing.T) {
	m, svc := newTestModel(t, signedInApp())
	svc.Gate = make(chan struct{})
	svc.Search = pageOf(5)
	h := NewHarness(m)
	m.app.Search.Query.SetValue("red bull")

	h.Key(tea.KeyEnter)
	h.Key(tea.KeyEnter)

	if got := m.runner.InFlight(); got != 1 {
		t.Fatalf("expected one task in flight, got %d", got)
	}
	close(svc.Gate)
	h.Settle()
	if got := svc.Calls("SearchCompanies"); got != 1 {
		t.Fatalf("expected one search call, got %d", got)
	}
	if m.app.Results.List.Len() != 5 || m.app.Screen().Kind != uistate.ScreenResults {
		t.Fatalf("expected results shown")
	}
}

func TestShortQueryIsRejected(t *testing.T) {
	m, _ := newTestModel(t, signedInApp())
	h := NewHarness(m)
	m.app.Search.Query.SetValue("ab")
	h.Key(tea.KeyEnter)
	if m.runner.InFlight() != 0 || m.app.Message.Text != "Search query must be at least 3 characters" {
		t.Fatalf("expected validation error, got %+v", m.app.Message)
	}
}

func TestStaleResultAfterBackNavigationIsFolded(t *testing.T) {
	m, svc := newTestModel(t, signedInApp())
	svc.Search = pageOf(30)
	h := NewHarness(m)
	m.app.Search.Query.SetValue("bau")
	h.Key(tea.KeyEnter)
	h.Settle()
	if m.app.Results.TotalPages() != 3 {
		t.Fatalf("expected 3 pages, got %d", m.app.Results.TotalPages())
	}

	svc.Gate = make(chan struct{})
	h.Type("n")
	h.Type("/")
	if m.app.Screen().Kind != uistate.ScreenSearch {
		t.Fatalf("expected search after /, got %s", m.app.Screen())
	}
	close(svc.Gate)
	h.Settle()

	if m.app.Screen().Kind != uistate.ScreenResults || m.app.Results.CurrentPage != 2 {
		t.Fatalf("expected late page 2 to be shown, got %s page %d", m.app.Screen(), m.app.Results.CurrentPage)
	}
}

func TestQuitKeys(t *testing.T) {
	m, _ := newTestModel(t, signedInApp())
	h := NewHarness(m)

	h.Type("q")
	if isQuit(h.LastCmd()) || m.app.Search.Query.Value() != "q" {
		t.Fatalf("expected q to be typed into the query")
	}
	h.Key(tea.KeyCtrlC)
	if !isQuit(h.LastCmd()) {
		t.Fatalf("expected ctrl+c to quit")
	}
}

func TestQuitFromResults(t *testing.T) {
	m, _ := newTestModel(t, signedInApp())
	m.app.Nav.Push(uistate.Screen(uistate.ScreenResults))
	h := NewHarness(m)
	h.Type("q")
	if !isQuit(h.LastCmd()) {
		t.Fatalf("expected q to quit on results")
	}
}

func TestSuggestionsFlowIntoList(t *testing.T) {
	m, svc := newTestModel(t, signedInApp())
	svc.SuggestionsFor = map[string][]api.SearchSuggestion{
		"red": {{Firmenbuchnummer: "1a", Name: "Red Bull"}},
	}
	svc.CompanyByFN = map[string]api.Company{"1a": {Firmenbuchnummer: "1a", Name: "Red Bull"}}
	h := NewHarness(m)

	h.Type("red")
	h.Settle()
	if m.app.Search.Suggestions.Len() != 1 {
		t.Fatalf("expected one suggestion, got %d", m.app.Search.Suggestions.Len())
	}
	h.Key(tea.KeyDown)
	h.Key(tea.KeyEnter)
	if m.app.Screen() != uistate.Details("1a") {
		t.Fatalf("expected details for 1a, got %s", m.app.Screen())
	}
	h.Settle()
	if m.app.Details.Company == nil || m.app.Details.Company.Name != "Red Bull" {
		t.Fatalf("expected company loaded")
	}
}

func TestLogoutKeyClearsSession(t *testing.T) {
	m, _ := newTestModel(t, signedInApp())
	h := NewHarness(m)
	h.Key(tea.KeyCtrlL)
	if m.app.IsAuthenticated() || m.app.Screen().Kind != uistate.ScreenLogin {
		t.Fatalf("expected logout to login screen")
	}
}

func TestHandlerRegistryIgnoresUnknownMessages(t *testing.T) {
	m, _ := newTestModel(t, nil)
	if _, cmd := m.Update(struct{}{}); cmd != nil {
		t.Fatalf("expected no command for unknown message")
	}
}

func TestFailedSearchKeepsPreviousResults(t *testing.T) {
	m, svc := newTestModel(t, signedInApp())
	svc.Search = pageOf(30)
	h := NewHarness(m)
	m.app.Search.Query.SetValue("bau")
	h.Key(tea.KeyEnter)
	h.Settle()
	h.Type("n")
	h.Settle()
	h.Key(tea.KeyEsc)

	svc.Search = func(api.SearchParams) (api.SearchResponse, error) {
		return api.SearchResponse{}, api.FromHTTPResponse(500, "boom")
	}
	m.app.Search.Query.SetValue("holz")
	h.Key(tea.KeyEnter)
	h.Settle()

	r := m.app.Results
	if r.Query != "bau" || r.CurrentPage != 2 || r.Total != 30 {
		t.Fatalf("expected previous results intact, got query %q page %d total %d", r.Query, r.CurrentPage, r.Total)
	}
	if m.app.Busy || m.app.Message == nil || m.app.Message.Severity != state.SeverityError {
		t.Fatalf("expected error message and busy cleared, got %+v", m.app.Message)
	}
}
