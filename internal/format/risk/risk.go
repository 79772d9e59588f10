// Package risk formats company risk scores and indicators for display.
package risk

import (
	"fmt"
	"math"
	"strings"

	"github.com/atomicstack/bizray-tui/internal/api"
	"github.com/atomicstack/bizray-tui/internal/theme"
	"github.com/charmbracelet/lipgloss"
)

// Level is a risk bucket.
type Level int

const (
	LevelUnknown Level = iota
	LevelLow
	LevelMedium
	LevelHigh
)

// LevelOf buckets score with the same thresholds as api.RiskLevel.
func LevelOf(score *float64) Level {
	switch api.RiskLevel(score) {
	case "High":
		return LevelHigh
	case "Medium":
		return LevelMedium
	case "Low":
		return LevelLow
	default:
		return LevelUnknown
	}
}

func (l Level) String() string {
	switch l {
	case LevelHigh:
		return "High"
	case LevelMedium:
		return "Medium"
	case LevelLow:
		return "Low"
	default:
		return "N/A"
	}
}

// Style returns the colour for l.
func (l Level) Style(s *theme.Styles) lipgloss.Style {
	var st *lipgloss.Style
	switch l {
	case LevelHigh:
		st = s.RiskHigh
	case LevelMedium:
		st = s.RiskMedium
	case LevelLow:
		st = s.RiskLow
	default:
		st = s.RiskUnknown
	}
	if st == nil {
		return lipgloss.NewStyle()
	}
	return *st
}

// Score renders "0.52 (Medium)" or "N/A".
func Score(score *float64) string {
	if score == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2f (%s)", *score, LevelOf(score))
}

// Bar renders a gauge of width cells. The fill character reflects the level.
func Bar(score *float64, width int) string {
	if width <= 0 {
		return "[]"
	}
	if score == nil {
		return "[" + strings.Repeat("░", width) + "]"
	}
	filled := int(*score * float64(width))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	fill := "░"
	switch LevelOf(score) {
	case LevelHigh:
		fill = "█"
	case LevelMedium:
		fill = "▓"
	}
	return "[" + strings.Repeat(fill, filled) + strings.Repeat("░", width-filled) + "]"
}

func isFlag(value float64) bool {
	return math.Abs(value) < 0.01 || math.Abs(value-1) < 0.01
}

// Indicator formats an indicator value. Values at 0 or 1 are flags.
func Indicator(value float64) string {
	if isFlag(value) {
		if value > 0.5 {
			return "Yes"
		}
		return "No"
	}
	return fmt.Sprintf("%.2f", value)
}

// IndicatorLevel classifies an indicator value; a raised flag counts as high.
func IndicatorLevel(value float64) Level {
	if isFlag(value) {
		if value > 0.5 {
			return LevelHigh
		}
		return LevelLow
	}
	return LevelOf(&value)
}
