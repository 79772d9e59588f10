package backend

import (
	"context"
	"testing"
	"time"

	"github.com/atomicstack/bizray-tui/internal/api"
	"github.com/atomicstack/bizray-tui/internal/backend/backendtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, r *Runner) Update {
	t.Helper()
	select {
	case u, ok := <-r.Events():
		require.True(t, ok, "events channel closed")
		return u
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for update")
		return nil
	}
}

func TestSpawnPreservesPerTaskOrder(t *testing.T) {
	r := NewRunner(4)
	defer r.Stop()

	r.Spawn("t1", "ordered", func(ctx context.Context, out Sink) {
		out.Send(Succeeded{Text: "one"})
		out.Send(Succeeded{Text: "two"})
		out.Send(BusyChanged{Busy: false})
	})

	assert.Equal(t, Succeeded{Text: "one"}, receive(t, r))
	assert.Equal(t, Succeeded{Text: "two"}, receive(t, r))
	assert.Equal(t, BusyChanged{Busy: false}, receive(t, r))
}

func TestSearchPostsResultsThenBusyClear(t *testing.T) {
	svc := backendtest.New()
	svc.Search = func(p api.SearchParams) (api.SearchResponse, error) {
		return api.SearchResponse{Companies: []api.CompanySummary{{Name: "Acme"}}, Total: 40}, nil
	}
	r := NewRunner(4)
	defer r.Stop()

	r.Spawn("s1", "search", Search(svc, api.SearchParams{Query: "acme", Page: 2, Limit: 12}))

	got := receive(t, r)
	results, ok := got.(ResultsArrived)
	require.True(t, ok, "expected ResultsArrived, got %T", got)
	assert.Equal(t, 40, results.Total)
	assert.Equal(t, 2, results.Page)
	assert.Equal(t, "acme", results.Query)
	assert.Equal(t, BusyChanged{Busy: false}, receive(t, r))
}

func TestFailurePostsErrorThenBusyClear(t *testing.T) {
	svc := backendtest.New()
	svc.Err = api.FromHTTPResponse(401, "expired")
	r := NewRunner(4)
	defer r.Stop()

	r.Spawn("l1", "login", Login(svc, "a@b.at", "pw"))

	got := receive(t, r)
	failure, ok := got.(Failed)
	require.True(t, ok, "expected Failed, got %T", got)
	assert.Equal(t, "Your session has expired. Please log in again.", failure.Text)
	assert.True(t, failure.Reauth)
	assert.Equal(t, BusyChanged{Busy: false}, receive(t, r))
}

func TestReadOnlyTasksDoNotTouchBusy(t *testing.T) {
	svc := backendtest.New()
	svc.SuggestionsFor = map[string][]api.SearchSuggestion{"red": {{Firmenbuchnummer: "1", Name: "Red"}}}
	svc.CityList = []api.City{{City: "Wien", Count: 3}}
	r := NewRunner(4)
	defer r.Stop()

	r.Spawn("q1", "suggest", Suggest(svc, NewThrottle(0), "red"))
	got := receive(t, r)
	assert.Equal(t, SuggestionsArrived{Query: "red", Suggestions: svc.SuggestionsFor["red"]}, got)

	r.Spawn("c1", "cities", LoadCities(svc))
	assert.Equal(t, CitiesArrived{Cities: svc.CityList}, receive(t, r))

	r.Wait()
	select {
	case extra := <-r.Events():
		t.Fatalf("unexpected extra update %#v", extra)
	default:
	}
}

func TestOverviewToleratesPartialFailure(t *testing.T) {
	svc := backendtest.New()
	svc.MetricsValue = api.Metrics{TotalCompanies: 10}
	r := NewRunner(1)
	defer r.Stop()

	r.Spawn("o1", "overview", LoadOverview(svc))
	got := receive(t, r).(OverviewArrived)
	require.NotNil(t, got.Metrics)
	assert.EqualValues(t, 10, got.Metrics.TotalCompanies)
	assert.Empty(t, got.Popular)
}

func TestInFlightCountsRunningTasks(t *testing.T) {
	svc := backendtest.New()
	svc.Gate = make(chan struct{})
	r := NewRunner(4)
	defer r.Stop()

	r.Spawn("d1", "detail", FetchDetail(svc, "1"))
	require.Eventually(t, func() bool { return svc.Calls("Company") == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, 1, r.InFlight())

	svc.Gate <- struct{}{}
	receive(t, r)
	receive(t, r)
	r.Wait()
	assert.Equal(t, 0, r.InFlight())
}

func TestStopClosesChannelAndRejectsSpawn(t *testing.T) {
	svc := backendtest.New()
	svc.Gate = make(chan struct{})
	r := NewRunner(1)

	r.Spawn("g1", "gated", RestoreSession(svc))
	require.Eventually(t, func() bool { return svc.Calls("Me") == 1 }, time.Second, 5*time.Millisecond)
	r.Stop()
	r.Stop()

	assert.False(t, r.Spawn("late", "late", RestoreSession(svc)))
	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-r.Events():
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("events channel was not closed")
		}
	}
}

func TestKindOfNamesEveryVariant(t *testing.T) {
	variants := []Update{
		AuthSucceeded{}, ResultsArrived{}, DetailArrived{}, IdentityUpdated{},
		Succeeded{}, Failed{}, BusyChanged{}, SuggestionsArrived{}, CitiesArrived{},
		OverviewArrived{}, SessionRestored{}, SessionEnded{},
	}
	seen := map[string]bool{}
	for _, v := range variants {
		name := KindOf(v)
		assert.NotEqual(t, "unknown", name)
		assert.False(t, seen[name], "duplicate name %s", name)
		seen[name] = true
	}
}

func TestSupersededSuggestSkipsRequest(t *testing.T) {
	svc := backendtest.New()
	svc.SuggestionsFor = map[string][]api.SearchSuggestion{"redb": {{Firmenbuchnummer: "1", Name: "Red Bull"}}}
	th := NewThrottle(0)
	stale := Suggest(svc, th, "red")
	fresh := Suggest(svc, th, "redb")
	r := NewRunner(4)
	defer r.Stop()

	r.Spawn("q1", "suggest", stale)
	r.Wait()
	r.Spawn("q2", "suggest", fresh)
	got := receive(t, r)

	assert.Equal(t, SuggestionsArrived{Query: "redb", Suggestions: svc.SuggestionsFor["redb"]}, got)
	assert.Equal(t, 1, svc.Calls("Suggestions"))
}
