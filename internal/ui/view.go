package ui

import (
	"strings"

	"github.com/atomicstack/bizray-tui/internal/format/text"
	"github.com/atomicstack/bizray-tui/internal/state"
	uistate "github.com/atomicstack/bizray-tui/internal/ui/state"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const reauthHint = "Press Ctrl+L to log in again."

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text already carries ANSI styling; truncate ANSI-aware
}

// View implements tea.Model. It only reads the application state.
func (m *Model) View() string {
	body := m.bodyLines()
	height := m.bodyHeight()
	body = limitHeight(body, height, m.width)
	if m.height > 0 {
		for len(body) < height {
			body = append(body, styledLine{})
		}
	}
	lines := make([]styledLine, 0, len(body)+4)
	lines = append(lines, m.titleLine(), styledLine{})
	lines = append(lines, body...)
	lines = append(lines, m.messageLine())
	if m.showHints {
		lines = append(lines, styledLine{text: m.help.ShortHelpView(m.shortHelp()), raw: true})
	}
	lines = applyWidth(lines, m.width)
	return renderLines(lines)
}

func (m *Model) bodyLines() []styledLine {
	switch m.app.Screen().Kind {
	case uistate.ScreenLogin:
		return m.loginLines()
	case uistate.ScreenRegister:
		return m.registerLines()
	case uistate.ScreenSearch:
		return m.searchLines()
	case uistate.ScreenResults:
		return m.resultsLines()
	case uistate.ScreenDetails:
		return m.visibleDetailLines()
	case uistate.ScreenAccount:
		return m.accountLines()
	case uistate.ScreenHelp:
		return m.helpLines()
	}
	return nil
}

func screenTitle(s uistate.ScreenID) string {
	switch s.Kind {
	case uistate.ScreenLogin:
		return "Login"
	case uistate.ScreenRegister:
		return "Register"
	case uistate.ScreenSearch:
		return "Search"
	case uistate.ScreenResults:
		return "Results"
	case uistate.ScreenDetails:
		return "Company " + s.Param
	case uistate.ScreenAccount:
		return "Account"
	case uistate.ScreenHelp:
		return "Help"
	}
	return ""
}

func (m *Model) titleLine() styledLine {
	var b strings.Builder
	b.WriteString(render(m.styles.Title, "BizRay"))
	b.WriteString(render(m.styles.Subtle, " › "+screenTitle(m.app.Screen())))
	if m.app.Busy {
		b.WriteString("  " + m.spinner.View() + render(m.styles.Subtle, " Loading…"))
	}
	if m.app.User != nil {
		b.WriteString(render(m.styles.Subtle, "  "+m.app.User.Username))
	}
	return styledLine{text: b.String(), raw: true}
}

func (m *Model) messageLine() styledLine {
	msg := m.app.Message
	if msg == nil {
		return styledLine{}
	}
	body := msg.Text
	if msg.Reauth && m.app.Screen().Kind != uistate.ScreenLogin {
		body += " " + reauthHint
	}
	var style *lipgloss.Style
	switch msg.Severity {
	case state.SeverityError:
		style = m.styles.Error
	case state.SeveritySuccess:
		style = m.styles.Success
	case state.SeverityWarning:
		style = m.styles.Warning
	default:
		style = m.styles.Info
	}
	return styledLine{text: body, style: style}
}

// buildItemLine renders one list row. The selected row gets a highlighted
// indicator and background padded to width.
func (m *Model) buildItemLine(label string, selected bool, width int) styledLine {
	indicator := "▌"
	lineStyle := m.styles.Item
	indicatorStyle := m.styles.Subtle
	if selected {
		lineStyle = m.styles.SelectedItem
		indicatorStyle = m.styles.Title
	} else {
		indicator = " "
	}
	full := indicator + " " + label
	if width > 0 {
		if pad := width - ansi.StringWidth(full); pad > 0 {
			full += strings.Repeat(" ", pad)
		}
	}
	return styledLine{text: full, style: lineStyle, prefixStyle: indicatorStyle, highlightFrom: 1}
}

func render(style *lipgloss.Style, s string) string {
	if style == nil || s == "" {
		return s
	}
	return style.Render(s)
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: text.Ellipsis("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: "…"})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		if line.raw {
			line.text = ansi.Truncate(line.text, width, "…")
		} else {
			line.text = text.Ellipsis(line.text, width)
		}
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		s := line.text
		if line.raw {
			out[i] = s
			continue
		}
		runes := []rune(s)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := render(line.prefixStyle, string(runes[:line.highlightFrom]))
			tail := render(line.style, string(runes[line.highlightFrom:]))
			s = head + tail
		} else {
			s = render(line.style, s)
		}
		out[i] = s
	}
	return strings.Join(out, "\n")
}
