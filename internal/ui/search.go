package ui

import (
	"strings"

	"github.com/atomicstack/bizray-tui/internal/backend"
	"github.com/atomicstack/bizray-tui/internal/logging/events"
	"github.com/atomicstack/bizray-tui/internal/state"
	uistate "github.com/atomicstack/bizray-tui/internal/ui/state"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleSearchKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	s := &m.app.Search
	if s.FilterMode {
		return m.handleCityFilterKey(msg)
	}
	switch {
	case key.Matches(msg, m.keys.Filter):
		m.openCityFilter()
		return true, nil
	case key.Matches(msg, m.keys.Account):
		m.openAccount()
		return true, nil
	case key.Matches(msg, m.keys.FieldDown):
		m.moveSuggestion(1)
		return true, nil
	case key.Matches(msg, m.keys.FieldUp):
		m.moveSuggestion(-1)
		return true, nil
	case key.Matches(msg, m.keys.Submit):
		m.submitSearch()
		return true, nil
	case key.Matches(msg, m.keys.Back) && s.SuggestionActive:
		s.SuggestionActive = false
		return true, nil
	}
	if m.edit("query", &s.Query, msg) {
		m.queryChanged()
		return true, nil
	}
	return false, nil
}

// moveSuggestion walks the suggestion list. Moving up from the first entry
// hands focus back to the query.
func (m *Model) moveSuggestion(delta int) {
	s := &m.app.Search
	if s.Suggestions.IsEmpty() {
		return
	}
	if !s.SuggestionActive {
		if delta > 0 {
			s.SuggestionActive = true
			s.Suggestions.First()
		}
		return
	}
	switch {
	case delta > 0:
		s.Suggestions.Next(m.suggestionRows())
	case s.Suggestions.SelectedIndex() == 0:
		s.SuggestionActive = false
	default:
		s.Suggestions.Previous()
	}
	events.UI.Cursor("suggestions", s.Suggestions.SelectedIndex(), s.Suggestions.ScrollOffset())
}

func (m *Model) queryChanged() {
	s := &m.app.Search
	s.SuggestionActive = false
	if s.QueryReady() {
		m.submit("suggest", false, backend.Suggest(m.service(), m.throttle, s.Query.Value()))
		return
	}
	if len(m.app.Overview.Popular) > 0 {
		s.ShowPopular(m.app.Overview.Popular)
		return
	}
	s.Suggestions.Clear()
}

func (m *Model) submitSearch() {
	s := &m.app.Search
	if sug, ok := s.HighlightedSuggestion(); ok {
		m.openDetails(sug.Firmenbuchnummer)
		return
	}
	query := strings.TrimSpace(s.Query.Value())
	if len([]rune(query)) < state.MinQueryLength {
		m.reject("Search query must be at least 3 characters")
		return
	}
	params := m.app.Results.NewSearch(query, s.SelectedCities.Keys())
	m.submit("search", true, backend.Search(m.service(), params))
}

// openDetails starts loading fn and shows the detail screen.
func (m *Model) openDetails(fn string) {
	if fn == "" {
		return
	}
	if !m.submit("fetch detail", true, backend.FetchDetail(m.service(), fn)) {
		return
	}
	m.app.Details.Start(fn)
	m.push(uistate.Details(fn))
}

func (m *Model) openCityFilter() {
	s := &m.app.Search
	s.FilterMode = true
	s.SuggestionActive = false
	if s.CitiesLoaded || s.CitiesLoading {
		return
	}
	s.CitiesLoading = m.submit("load cities", false, backend.LoadCities(m.service()))
}

func (m *Model) handleCityFilterKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	s := &m.app.Search
	rows := m.cityRows()
	switch {
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Filter):
		s.FilterMode = false
	case key.Matches(msg, m.keys.FieldUp):
		s.Cities.Previous()
	case key.Matches(msg, m.keys.FieldDown):
		s.Cities.Next(rows)
	case key.Matches(msg, m.keys.ToggleCity):
		if name, on := s.ToggleHighlightedCity(); name != "" {
			events.UI.Message("info", cityToggleText(name, on))
		}
	case key.Matches(msg, m.keys.ClearCities):
		s.SelectedCities.Clear()
	default:
		if m.edit("city", &s.CityQuery, msg) {
			s.ApplyCityFilter(rows)
			return true, nil
		}
		return false, nil
	}
	return true, nil
}

func cityToggleText(name string, on bool) string {
	if on {
		return "selected " + name
	}
	return "deselected " + name
}
