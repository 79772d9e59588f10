package ui

import (
	"github.com/atomicstack/bizray-tui/internal/backend"
	"github.com/atomicstack/bizray-tui/internal/logging/events"
	uistate "github.com/atomicstack/bizray-tui/internal/ui/state"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleResultsKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	r := &m.app.Results
	rows := m.listRows()
	switch {
	case key.Matches(msg, m.keys.Down):
		r.List.Next(rows)
	case key.Matches(msg, m.keys.Up):
		r.List.Previous()
	case key.Matches(msg, m.keys.Top):
		r.List.First()
	case key.Matches(msg, m.keys.Bottom):
		r.List.Last(rows)
	case key.Matches(msg, m.keys.PageDown):
		r.List.PageDown(rows)
	case key.Matches(msg, m.keys.PageUp):
		r.List.PageUp(rows)
	case key.Matches(msg, m.keys.NextPage):
		if r.CanGoNext() {
			m.submit("search page", true, backend.Search(m.service(), r.Params(r.CurrentPage+1)))
		}
		return true, nil
	case key.Matches(msg, m.keys.PrevPage):
		if r.CanGoPrevious() {
			m.submit("search page", true, backend.Search(m.service(), r.Params(r.CurrentPage-1)))
		}
		return true, nil
	case key.Matches(msg, m.keys.Open):
		if c, ok := r.List.Selected(); ok {
			m.openDetails(c.Firmenbuchnummer)
		}
		return true, nil
	case key.Matches(msg, m.keys.NewSearch):
		m.goBack()
		return true, nil
	case key.Matches(msg, m.keys.Copy):
		if c, ok := r.List.Selected(); ok {
			return true, copyCmd(c.Firmenbuchnummer)
		}
		return true, nil
	default:
		return false, nil
	}
	events.UI.Cursor(m.app.Screen().String(), r.List.SelectedIndex(), r.List.ScrollOffset())
	return true, nil
}

func (m *Model) handleDetailsKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	d := &m.app.Details
	maxOffset := m.detailMaxOffset()
	switch {
	case key.Matches(msg, m.keys.Down):
		d.Scroll(1, maxOffset)
	case key.Matches(msg, m.keys.Up):
		d.Scroll(-1, maxOffset)
	case key.Matches(msg, m.keys.Top):
		d.ScrollOffset = 0
	case key.Matches(msg, m.keys.Bottom):
		d.ScrollOffset = maxOffset
	case key.Matches(msg, m.keys.PageDown):
		d.Scroll(m.bodyHeight(), maxOffset)
	case key.Matches(msg, m.keys.PageUp):
		d.Scroll(-m.bodyHeight(), maxOffset)
	case key.Matches(msg, m.keys.NextSection):
		d.NextSection()
	case key.Matches(msg, m.keys.PrevSection):
		d.PrevSection()
	case key.Matches(msg, m.keys.ToggleSection):
		d.ToggleFocused()
		d.Scroll(0, m.detailMaxOffset())
	case key.Matches(msg, m.keys.NextRecord):
		m.stepRecord(1)
	case key.Matches(msg, m.keys.PrevRecord):
		m.stepRecord(-1)
	case key.Matches(msg, m.keys.Copy):
		if d.FN == "" {
			return true, nil
		}
		return true, copyCmd(d.FN)
	default:
		return false, nil
	}
	return true, nil
}

// stepRecord opens the neighbouring search result in place of the current
// detail screen, keeping the result list cursor in step.
func (m *Model) stepRecord(delta int) {
	list := &m.app.Results.List
	items := list.Items()
	idx := -1
	for i, c := range items {
		if c.Firmenbuchnummer == m.app.Details.FN {
			idx = i
			break
		}
	}
	next := idx + delta
	if idx < 0 || next < 0 || next >= len(items) {
		return
	}
	fn := items[next].Firmenbuchnummer
	if !m.submit("fetch detail", true, backend.FetchDetail(m.service(), fn)) {
		return
	}
	list.Select(next, m.listRows())
	m.app.Details.Start(fn)
	m.replace(uistate.Details(fn))
}
