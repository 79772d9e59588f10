package ui

import (
	"testing"

	"github.com/atomicstack/bizray-tui/internal/api"
	"github.com/atomicstack/bizray-tui/internal/state"
	uistate "github.com/atomicstack/bizray-tui/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

func TestEscapeGoesBackAndClearsMessage(t *testing.T) {
	m, _ := newTestModel(t, signedInApp())
	m.app.Nav.Push(uistate.Screen(uistate.ScreenResults))
	m.app.SetError("boom")
	h := NewHarness(m)

	h.Key(tea.KeyEsc)
	if m.app.Screen().Kind != uistate.ScreenSearch {
		t.Fatalf("expected search, got %s", m.app.Screen())
	}
	if m.app.Message != nil {
		t.Fatalf("expected message cleared")
	}
	h.Key(tea.KeyEsc)
	if m.app.Screen().Kind != uistate.ScreenSearch {
		t.Fatalf("expected to stay on root screen")
	}
}

func TestHelpKeys(t *testing.T) {
	m, _ := newTestModel(t, signedInApp())
	m.app.Nav.Push(uistate.Screen(uistate.ScreenResults))
	h := NewHarness(m)

	h.Type("?")
	if m.app.Screen().Kind != uistate.ScreenHelp {
		t.Fatalf("expected help, got %s", m.app.Screen())
	}
	h.Key(tea.KeyEsc)
	if m.app.Screen().Kind != uistate.ScreenResults {
		t.Fatalf("expected results after closing help")
	}

	h.Key(tea.KeyEsc)
	h.Type("?")
	if m.app.Screen().Kind != uistate.ScreenSearch || m.app.Search.Query.Value() != "?" {
		t.Fatalf("expected ? to be typed on search")
	}
	h.Key(tea.KeyF1)
	if m.app.Screen().Kind != uistate.ScreenHelp {
		t.Fatalf("expected f1 to open help from a text field")
	}
}

func TestRegisterScreenRoundTrip(t *testing.T) {
	m, _ := newTestModel(t, nil)
	h := NewHarness(m)
	h.Key(tea.KeyCtrlR)
	if m.app.Screen().Kind != uistate.ScreenRegister {
		t.Fatalf("expected register, got %s", m.app.Screen())
	}
	h.Type("anna")
	h.Key(tea.KeyTab)
	h.Type("not-an-email")
	h.Key(tea.KeyTab)
	h.Type("longenough")
	h.Key(tea.KeyEnter)
	if m.app.Message == nil || m.app.Message.Text != "Please enter a valid email address" {
		t.Fatalf("unexpected message %+v", m.app.Message)
	}
	if m.runner.InFlight() != 0 {
		t.Fatalf("expected no task for invalid form")
	}
	h.Key(tea.KeyEsc)
	if m.app.Screen().Kind != uistate.ScreenLogin {
		t.Fatalf("expected login after esc")
	}
}

func TestResultsCursorAndDetails(t *testing.T) {
	app := signedInApp()
	app.Nav.Push(uistate.Screen(uistate.ScreenResults))
	app.Results.List.SetItems([]api.CompanySummary{
		{Firmenbuchnummer: "1a", Name: "Alpha"},
		{Firmenbuchnummer: "2b", Name: "Beta"},
	})
	app.Results.Total = 2
	m, svc := newTestModel(t, app)
	svc.CompanyByFN = map[string]api.Company{
		"1a": {Firmenbuchnummer: "1a", Name: "Alpha"},
		"2b": {Firmenbuchnummer: "2b", Name: "Beta"},
	}
	h := NewHarness(m)

	h.Type("j")
	h.Key(tea.KeyEnter)
	if m.app.Screen() != uistate.Details("2b") {
		t.Fatalf("expected details for 2b, got %s", m.app.Screen())
	}
	h.Settle()
	h.Type("[")
	if m.app.Screen() != uistate.Details("1a") {
		t.Fatalf("expected previous record, got %s", m.app.Screen())
	}
	h.Settle()
	if m.app.Details.Company == nil || m.app.Details.Company.Name != "Alpha" {
		t.Fatalf("expected Alpha loaded")
	}
	if m.app.Nav.HistoryLen() != 2 {
		t.Fatalf("expected record stepping to replace in place, history %d", m.app.Nav.HistoryLen())
	}
	h.Key(tea.KeyEsc)
	if m.app.Screen().Kind != uistate.ScreenResults {
		t.Fatalf("expected results after esc")
	}
}

func TestMissingCompanyShowsError(t *testing.T) {
	m, _ := newTestModel(t, signedInApp())
	h := NewHarness(m)
	m.openDetails("404x")
	h.Settle()
	if m.app.Busy {
		t.Fatalf("expected busy cleared")
	}
	if m.app.Message == nil || m.app.Message.Severity != state.SeverityError {
		t.Fatalf("expected error message, got %+v", m.app.Message)
	}
	if m.app.Screen() != uistate.Details("404x") {
		t.Fatalf("expected to stay on the detail screen")
	}
}

func TestWindowSizeUpdatesDimensions(t *testing.T) {
	m, _ := newTestModel(t, nil)
	h := NewHarness(m)
	h.Send(tea.WindowSizeMsg{Width: 60, Height: 10})
	if m.width != 60 || m.height != 10 || m.bodyHeight() != 6 {
		t.Fatalf("unexpected size %dx%d body %d", m.width, m.height, m.bodyHeight())
	}
}
