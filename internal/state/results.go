package state

import (
	"github.com/atomicstack/bizray-tui/internal/api"
	uistate "github.com/atomicstack/bizray-tui/internal/ui/state"
)

// ResultsView is the paginated result list. Pages are fetched from the
// server one at a time; nothing is cached locally.
type ResultsView struct {
	List        uistate.ListCursor[api.CompanySummary]
	Total       int
	CurrentPage int
	PageSize    int
	Query       string
	Cities      []string
}

// TotalPages is ceil(Total / PageSize) computed without floating point.
func (r *ResultsView) TotalPages() int {
	if r.Total <= 0 {
		return 0
	}
	return (r.Total-1)/r.pageSize() + 1
}

func (r *ResultsView) CanGoNext() bool { return r.CurrentPage < r.TotalPages() }

func (r *ResultsView) CanGoPrevious() bool { return r.CurrentPage > 1 }

// Params returns the request for page.
func (r *ResultsView) Params(page int) api.SearchParams {
	return api.SearchParams{
		Query:  r.Query,
		Page:   page,
		Limit:  r.pageSize(),
		Cities: append([]string(nil), r.Cities...),
	}
}

// NewSearch returns the first-page request for query. The view keeps its
// current query until results for the new one arrive.
func (r *ResultsView) NewSearch(query string, cities []string) api.SearchParams {
	return api.SearchParams{
		Query:  query,
		Page:   1,
		Limit:  r.pageSize(),
		Cities: append([]string(nil), cities...),
	}
}

func (r *ResultsView) pageSize() int {
	if r.PageSize <= 0 {
		return DefaultPageSize
	}
	return r.PageSize
}
