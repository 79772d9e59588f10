package ui

import (
	"fmt"
	"strings"

	uistate "github.com/atomicstack/bizray-tui/internal/ui/state"
)

const (
	fieldLabelWidth = 20
	secretRune      = "•"
)

type fieldSpec struct {
	label       string
	field       *uistate.TextField
	focused     bool
	secret      bool
	placeholder string
}

// fieldLine renders a labelled text field. The focused field shows a block
// caret on the rune under the cursor.
func (m *Model) fieldLine(spec fieldSpec) styledLine {
	labelStyle := m.styles.Label
	marker := "  "
	if spec.focused {
		labelStyle = m.styles.FocusedField
		marker = "› "
	}
	label := render(labelStyle, fmt.Sprintf("%s%-*s", marker, fieldLabelWidth-2, spec.label))
	return styledLine{text: label + m.fieldValue(spec), raw: true}
}

func (m *Model) fieldValue(spec fieldSpec) string {
	if spec.field == nil {
		return ""
	}
	if spec.field.IsEmpty() {
		if !spec.focused {
			return render(m.styles.Placeholder, spec.placeholder)
		}
		runes := []rune(spec.placeholder)
		if len(runes) == 0 {
			return m.caret(" ")
		}
		return m.caret(string(runes[0])) + render(m.styles.Placeholder, string(runes[1:]))
	}
	before, after := spec.field.Split()
	if spec.secret {
		before = strings.Repeat(secretRune, len([]rune(before)))
		after = strings.Repeat(secretRune, len([]rune(after)))
	}
	if !spec.focused {
		return render(m.styles.Field, before+after)
	}
	under := " "
	rest := ""
	if runes := []rune(after); len(runes) > 0 {
		under = string(runes[0])
		rest = string(runes[1:])
	}
	return render(m.styles.Field, before) + m.caret(under) + render(m.styles.Field, rest)
}

func (m *Model) caret(char string) string {
	if m.styles.Cursor == nil {
		return char
	}
	return m.styles.Cursor.Inline(true).Render(char)
}
