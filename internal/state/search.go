package state

import (
	"github.com/atomicstack/bizray-tui/internal/api"
	uistate "github.com/atomicstack/bizray-tui/internal/ui/state"
)

// MinQueryLength is the shortest query the search and suggestion lookups accept.
const MinQueryLength = 3

// SearchForm is the search screen input, including the city filter.
type SearchForm struct {
	Query            uistate.TextField
	Suggestions      uistate.ListCursor[api.SearchSuggestion]
	SuggestionActive bool

	FilterMode     bool
	CityQuery      uistate.TextField
	AllCities      []api.City
	Cities         uistate.ListCursor[api.City]
	SelectedCities uistate.Selection
	CitiesLoaded   bool
	CitiesLoading  bool
}

// QueryReady reports whether the query is long enough to send.
func (f *SearchForm) QueryReady() bool {
	return f.Query.Len() >= MinQueryLength
}

// ApplyCityFilter narrows AllCities by CityQuery and selects the best match.
func (f *SearchForm) ApplyCityFilter(visibleRows int) {
	labels := make([]string, len(f.AllCities))
	for i, c := range f.AllCities {
		labels[i] = c.City
	}
	idx := uistate.FilterIndices(labels, f.CityQuery.Value())
	filtered := make([]api.City, len(idx))
	names := make([]string, len(idx))
	for i, j := range idx {
		filtered[i] = f.AllCities[j]
		names[i] = f.AllCities[j].City
	}
	f.Cities.SetItems(filtered)
	if !f.CityQuery.IsEmpty() {
		if best := uistate.BestMatchIndex(names, f.CityQuery.Value()); best > 0 {
			f.Cities.Select(best, visibleRows)
		}
	}
}

// ToggleHighlightedCity flips the selection of the highlighted city.
func (f *SearchForm) ToggleHighlightedCity() (string, bool) {
	city, ok := f.Cities.Selected()
	if !ok {
		return "", false
	}
	return city.City, f.SelectedCities.Toggle(city.City)
}

// ShowPopular fills the suggestion list with popular companies.
func (f *SearchForm) ShowPopular(popular []api.Recommendation) {
	items := make([]api.SearchSuggestion, len(popular))
	for i, p := range popular {
		items[i] = api.SearchSuggestion{Firmenbuchnummer: p.Firmenbuchnummer, Name: p.Name}
	}
	f.Suggestions.SetItems(items)
	f.SuggestionActive = false
}

// HighlightedSuggestion returns the suggestion chosen with the arrow keys.
func (f *SearchForm) HighlightedSuggestion() (api.SearchSuggestion, bool) {
	if !f.SuggestionActive {
		return api.SearchSuggestion{}, false
	}
	return f.Suggestions.Selected()
}
