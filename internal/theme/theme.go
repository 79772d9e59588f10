package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Title          *lipgloss.Style
	Header         *lipgloss.Style
	Subtle         *lipgloss.Style
	Label          *lipgloss.Style
	Value          *lipgloss.Style
	Field          *lipgloss.Style
	FocusedField   *lipgloss.Style
	Placeholder    *lipgloss.Style
	Cursor         *lipgloss.Style
	Item           *lipgloss.Style
	SelectedItem   *lipgloss.Style
	Marked         *lipgloss.Style
	Section        *lipgloss.Style
	FocusedSection *lipgloss.Style
	Error          *lipgloss.Style
	Success        *lipgloss.Style
	Warning        *lipgloss.Style
	Info           *lipgloss.Style
	Footer         *lipgloss.Style
	Spinner        *lipgloss.Style
	RiskLow        *lipgloss.Style
	RiskMedium     *lipgloss.Style
	RiskHigh       *lipgloss.Style
	RiskUnknown    *lipgloss.Style
}

type palette struct {
	accent    string
	text      string
	muted     string
	faint     string
	highlight string
	onAccent  string
	red       string
	green     string
	yellow    string
}

var palettes = map[string]palette{
	"default": {
		accent: "33", text: "249", muted: "245", faint: "241", highlight: "238",
		onAccent: "0", red: "196", green: "34", yellow: "214",
	},
	"dark": {
		accent: "81", text: "252", muted: "246", faint: "240", highlight: "236",
		onAccent: "16", red: "203", green: "114", yellow: "221",
	},
	"light": {
		accent: "25", text: "236", muted: "240", faint: "246", highlight: "254",
		onAccent: "231", red: "160", green: "28", yellow: "130",
	},
}

var defaultStyles = build(palettes["default"])

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return defaultStyles
}

// ByName returns the style set for a theme name. Unknown names fall back to
// the default set.
func ByName(name string) *Styles {
	p, ok := palettes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Default()
	}
	return build(p)
}

// Names lists the available themes.
func Names() []string {
	return []string{"default", "dark", "light"}
}

func build(p palette) *Styles {
	return &Styles{
		Title:          ptr(lipgloss.NewStyle().Foreground(lipgloss.Color(p.accent)).Bold(true)),
		Header:         ptr(lipgloss.NewStyle().Foreground(lipgloss.Color(p.muted)).Bold(true)),
		Subtle:         ptr(lipgloss.NewStyle().Foreground(lipgloss.Color(p.faint))),
		Label:          ptr(lipgloss.NewStyle().Foreground(lipgloss.Color(p.muted))),
		Value:          ptr(lipgloss.NewStyle().Foreground(lipgloss.Color(p.text))),
		Field:          ptr(lipgloss.NewStyle().Foreground(lipgloss.Color(p.text))),
		FocusedField:   ptr(lipgloss.NewStyle().Foreground(lipgloss.Color(p.accent)).Bold(true)),
		Placeholder:    ptr(lipgloss.NewStyle().Foreground(lipgloss.Color(p.faint))),
		Cursor:         ptr(lipgloss.NewStyle().Foreground(lipgloss.Color(p.onAccent)).Background(lipgloss.Color(p.accent))),
		Item:           ptr(lipgloss.NewStyle().Foreground(lipgloss.Color(p.text))),
		SelectedItem:   ptr(lipgloss.NewStyle().Foreground(lipgloss.Color(p.text)).Background(lipgloss.Color(p.highlight)).Bold(true)),
		Marked:         ptr(lipgloss.NewStyle().Foreground(lipgloss.Color(p.green)).Bold(true)),
		Section:        ptr(lipgloss.NewStyle().Foreground(lipgloss.Color(p.muted)).Bold(true)),
		FocusedSection: ptr(lipgloss.NewStyle().Foreground(lipgloss.Color(p.accent)).Bold(true).Underline(true)),
		Error:          ptr(lipgloss.NewStyle().Foreground(lipgloss.Color(p.red)).Bold(true)),
		Success:        ptr(lipgloss.NewStyle().Foreground(lipgloss.Color(p.green)).Bold(true)),
		Warning:        ptr(lipgloss.NewStyle().Foreground(lipgloss.Color(p.yellow))),
		Info:           ptr(lipgloss.NewStyle().Foreground(lipgloss.Color(p.text))),
		Footer:         ptr(lipgloss.NewStyle().Foreground(lipgloss.Color(p.faint))),
		Spinner:        ptr(lipgloss.NewStyle().Foreground(lipgloss.Color(p.accent))),
		RiskLow:        ptr(lipgloss.NewStyle().Foreground(lipgloss.Color(p.green))),
		RiskMedium:     ptr(lipgloss.NewStyle().Foreground(lipgloss.Color(p.yellow))),
		RiskHigh:       ptr(lipgloss.NewStyle().Foreground(lipgloss.Color(p.red)).Bold(true)),
		RiskUnknown:    ptr(lipgloss.NewStyle().Foreground(lipgloss.Color(p.faint))),
	}
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
