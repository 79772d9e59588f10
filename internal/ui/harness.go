package ui

import tea "github.com/charmbracelet/bubbletea"

// Harness drives the UI model programmatically for integration tests.
// Returned commands are not executed because the update listener blocks;
// background results are folded with Settle instead.
type Harness struct {
	model *Model
	last  tea.Cmd
}

// NewHarness creates a harness for the provided model.
func NewHarness(model *Model) *Harness {
	return &Harness{model: model}
}

// Send routes a message through the model and keeps the returned command.
func (h *Harness) Send(msg tea.Msg) {
	if h.model == nil {
		return
	}
	mdl, cmd := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
	h.last = cmd
}

// Key sends a special key such as tea.KeyEnter.
func (h *Harness) Key(t tea.KeyType) {
	h.Send(tea.KeyMsg{Type: t})
}

// Type sends s one rune at a time, as a terminal would.
func (h *Harness) Type(s string) {
	for _, r := range s {
		if r == ' ' {
			h.Send(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
			continue
		}
		h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// Settle waits for every background task and folds what they posted.
func (h *Harness) Settle() int {
	h.model.runner.Wait()
	return h.model.drainUpdates()
}

// LastCmd returns the command produced by the most recent message.
func (h *Harness) LastCmd() tea.Cmd {
	return h.last
}

// View returns the current view string.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}
