package ui

import (
	"strings"

	"github.com/atomicstack/bizray-tui/internal/format/text"
)

func (m *Model) helpLines() []styledLine {
	var lines []styledLine
	for _, section := range m.helpSections() {
		pairs := make([]string, 0, len(section.bindings))
		for _, b := range section.bindings {
			h := b.Help()
			pairs = append(pairs, h.Key+" "+h.Desc)
		}
		lines = append(lines, m.heading(section.title))
		for _, l := range text.Wrap(strings.Join(pairs, " · "), m.viewWidth()-2) {
			lines = append(lines, styledLine{text: "  " + l, style: m.styles.Value})
		}
	}
	return lines
}
