package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/bizray-tui/internal/api"
	"github.com/atomicstack/bizray-tui/internal/format/risk"
	"github.com/atomicstack/bizray-tui/internal/format/table"
	"github.com/atomicstack/bizray-tui/internal/format/text"
	"github.com/atomicstack/bizray-tui/internal/state"
)

const riskBarWidth = 20

// detailLines renders the whole detail document; the view shows a window
// of it starting at the scroll offset.
func (m *Model) detailLines() []styledLine {
	d := &m.app.Details
	c := d.Company
	if c == nil {
		if m.app.Busy {
			return []styledLine{m.subtle(fmt.Sprintf("Loading company %s…", d.FN))}
		}
		return []styledLine{m.subtle(fmt.Sprintf("No data loaded for %s", d.FN))}
	}
	width := m.viewWidth()
	lines := []styledLine{
		{text: c.Name, style: m.styles.Title},
		m.subtle(strings.Join(nonEmpty(c.Firmenbuchnummer, c.LegalForm, c.Seat), " · ")),
	}
	for _, section := range state.Sections {
		lines = append(lines, styledLine{}, m.sectionHeader(section))
		if !d.IsExpanded(section) {
			continue
		}
		for _, l := range m.sectionBody(section, c, width-2) {
			l.text = "  " + l.text
			lines = append(lines, l)
		}
	}
	return lines
}

func (m *Model) visibleDetailLines() []styledLine {
	lines := m.detailLines()
	offset := m.app.Details.ScrollOffset
	if offset > len(lines) {
		offset = len(lines)
	}
	lines = lines[offset:]
	if h := m.bodyHeight(); len(lines) > h {
		lines = lines[:h]
	}
	return lines
}

func (m *Model) detailMaxOffset() int {
	if n := len(m.detailLines()) - m.bodyHeight(); n > 0 {
		return n
	}
	return 0
}

func (m *Model) sectionHeader(section state.Section) styledLine {
	d := &m.app.Details
	arrow := "▸"
	if d.IsExpanded(section) {
		arrow = "▾"
	}
	style := m.styles.Section
	if d.Focus == section {
		style = m.styles.FocusedSection
	}
	return styledLine{text: arrow + " " + section.String(), style: style}
}

func (m *Model) sectionBody(section state.Section, c *api.Company, width int) []styledLine {
	switch section {
	case state.SectionOverview:
		return m.overviewBody(c, width)
	case state.SectionAddress:
		if c.Address == nil {
			return []styledLine{m.subtle("No address on record")}
		}
		return []styledLine{{text: c.Address.FormatFull(), style: m.styles.Value}}
	case state.SectionPartners:
		return m.partnersBody(c)
	case state.SectionRegistry:
		return m.registryBody(c)
	case state.SectionRisk:
		return m.riskBody(c)
	}
	return nil
}

func (m *Model) overviewBody(c *api.Company, width int) []styledLine {
	var lines []styledLine
	for _, row := range table.KeyValue([][2]string{
		{"FN", text.OrNA(c.Firmenbuchnummer)},
		{"Legal form", text.OrNA(c.LegalForm)},
		{"Seat", text.OrNA(c.Seat)},
		{"Reference date", text.OrNA(c.ReferenceDate.String())},
		{"Partners", fmt.Sprintf("%d", c.PartnerCount())},
		{"Registry entries", fmt.Sprintf("%d", c.RegistryEntryCount())},
	}) {
		lines = append(lines, styledLine{text: row, style: m.styles.Value})
	}
	if purpose := text.Wrap(c.BusinessPurpose, width); len(purpose) > 0 {
		lines = append(lines, styledLine{text: "Business purpose", style: m.styles.Label})
		for _, l := range purpose {
			lines = append(lines, styledLine{text: l, style: m.styles.Value})
		}
	}
	return lines
}

func (m *Model) partnersBody(c *api.Company) []styledLine {
	if len(c.Partners) == 0 {
		return []styledLine{m.subtle("No partners on record")}
	}
	rows := make([][]string, 0, len(c.Partners))
	for _, p := range c.Partners {
		born := ""
		if p.BirthDate.Valid {
			born = "born " + p.BirthDate.String()
		}
		rows = append(rows, []string{p.FormatName(), text.OrNA(p.Role), born, p.Representation})
	}
	var lines []styledLine
	for _, row := range table.Format(rows, nil) {
		lines = append(lines, styledLine{text: row, style: m.styles.Value})
	}
	return lines
}

func (m *Model) registryBody(c *api.Company) []styledLine {
	if len(c.RegistryEntries) == 0 {
		return []styledLine{m.subtle("No registry entries")}
	}
	rows := [][]string{{"Type", "Court", "File number", "Applied", "Registered"}}
	for _, e := range c.RegistryEntries {
		rows = append(rows, []string{
			text.OrNA(e.Type), text.OrNA(e.Court), text.OrNA(e.FileNumber),
			text.OrNA(e.ApplicationDate.String()), text.OrNA(e.RegistrationDate.String()),
		})
	}
	formatted := table.Format(rows, nil)
	lines := []styledLine{{text: formatted[0], style: m.styles.Label}}
	for _, row := range formatted[1:] {
		lines = append(lines, styledLine{text: row, style: m.styles.Value})
	}
	return lines
}

func (m *Model) riskBody(c *api.Company) []styledLine {
	if !c.HasRiskData() {
		return []styledLine{m.subtle("No risk data available")}
	}
	level := risk.LevelOf(c.RiskScore)
	style := level.Style(m.styles)
	lines := []styledLine{
		{text: "Risk Score: " + style.Render(risk.Score(c.RiskScore)), raw: true},
		{text: style.Render(risk.Bar(c.RiskScore, riskBarWidth)), raw: true},
	}
	keys := api.OrderedIndicators(c.RiskIndicators)
	if len(keys) == 0 {
		return lines
	}
	rows := make([][]string, len(keys))
	for i, k := range keys {
		rows[i] = []string{api.RiskIndicatorName(k), risk.Indicator(c.RiskIndicators[k])}
	}
	lines = append(lines, styledLine{})
	for i, row := range table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignRight}) {
		st := risk.IndicatorLevel(c.RiskIndicators[keys[i]]).Style(m.styles)
		lines = append(lines, styledLine{text: st.Render(row), raw: true})
	}
	return lines
}

func nonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}
