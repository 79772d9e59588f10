// Package text holds width-aware string helpers used by the views.
package text

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/rivo/uniseg"
)

const ellipsis = "…"

// Ellipsis shortens s to at most width terminal cells, cutting between
// grapheme clusters and marking the cut with an ellipsis.
func Ellipsis(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if uniseg.StringWidth(s) <= width {
		return s
	}
	if width == 1 {
		return ellipsis
	}
	var b strings.Builder
	used := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		w := g.Width()
		if used+w > width-1 {
			break
		}
		b.WriteString(g.Str())
		used += w
	}
	return b.String() + ellipsis
}

// Wrap breaks s into lines of at most width cells at word boundaries.
// Words longer than width are kept whole.
func Wrap(s string, width int) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if width <= 0 {
		return []string{s}
	}
	return strings.Split(wordwrap.String(s, width), "\n")
}

// OrNA returns s, or "N/A" when s is blank.
func OrNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}
