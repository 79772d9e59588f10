package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/bizray-tui/internal/format/table"
)

func (m *Model) searchLines() []styledLine {
	s := &m.app.Search
	width := m.viewWidth()
	lines := []styledLine{
		m.fieldLine(fieldSpec{label: "Search", field: &s.Query, focused: !s.FilterMode && !s.SuggestionActive, placeholder: "company name or FN"}),
	}
	if keys := s.SelectedCities.Keys(); len(keys) > 0 {
		lines = append(lines, styledLine{text: "  Cities: " + strings.Join(keys, ", "), style: m.styles.Marked})
	}
	lines = append(lines, styledLine{})

	if s.FilterMode {
		lines = append(lines, m.fieldLine(fieldSpec{label: "City filter", field: &s.CityQuery, focused: true, placeholder: "type to filter"}))
		switch {
		case s.CitiesLoading:
			lines = append(lines, m.subtle("  Loading cities…"))
		case s.Cities.IsEmpty():
			lines = append(lines, m.subtle("  No matching cities"))
		default:
			rows := m.cityRows()
			start := s.Cities.ScrollOffset()
			for i, c := range s.Cities.VisibleSlice(rows) {
				mark := "[ ]"
				if s.SelectedCities.IsSelected(c.City) {
					mark = "[x]"
				}
				label := fmt.Sprintf("%s %s (%d)", mark, c.City, c.Count)
				lines = append(lines, m.buildItemLine(label, start+i == s.Cities.SelectedIndex(), width))
			}
		}
		return lines
	}

	if !s.Suggestions.IsEmpty() {
		title := "Suggestions"
		if !s.QueryReady() {
			title = "Popular companies"
		}
		lines = append(lines, m.heading(title))
		start := s.Suggestions.ScrollOffset()
		for i, sug := range s.Suggestions.VisibleSlice(m.suggestionRows()) {
			selected := s.SuggestionActive && start+i == s.Suggestions.SelectedIndex()
			lines = append(lines, m.buildItemLine(fmt.Sprintf("%s  %s", sug.Name, sug.Firmenbuchnummer), selected, width))
		}
	}

	if metrics := m.app.Overview.Metrics; metrics != nil {
		lines = append(lines, styledLine{}, m.heading("Registry"))
		for _, row := range table.Format([][]string{
			{"Companies", groupDigits(metrics.TotalCompanies)},
			{"Partners", groupDigits(metrics.TotalPartners)},
			{"Addresses", groupDigits(metrics.TotalAddresses)},
			{"Registry entries", groupDigits(metrics.TotalRegistryEntries)},
		}, []table.Alignment{table.AlignLeft, table.AlignRight}) {
			lines = append(lines, styledLine{text: "  " + row, style: m.styles.Value})
		}
	}
	return lines
}

func (m *Model) resultsLines() []styledLine {
	r := &m.app.Results
	width := m.viewWidth()
	header := fmt.Sprintf("Results for %q (%d companies)", r.Query, r.Total)
	if len(r.Cities) > 0 {
		header += " in " + strings.Join(r.Cities, ", ")
	}
	lines := []styledLine{m.heading(header)}
	if r.List.IsEmpty() {
		return append(lines, m.subtle("No companies found"))
	}
	rows := make([][]string, 0, r.List.Len())
	visible := r.List.VisibleSlice(m.listRows())
	for _, c := range visible {
		rows = append(rows, []string{c.Name, c.Firmenbuchnummer, c.Seat, c.LegalForm, c.RiskLevel()})
	}
	formatted := table.Format(rows, nil)
	start := r.List.ScrollOffset()
	for i, row := range formatted {
		lines = append(lines, m.buildItemLine(row, start+i == r.List.SelectedIndex(), width))
	}
	lines = append(lines, m.subtle(fmt.Sprintf("Page %d of %d", r.CurrentPage, r.TotalPages())))
	return lines
}

// groupDigits formats n with thousands separators.
func groupDigits(n int64) string {
	s := fmt.Sprintf("%d", n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
