package state

import "unicode"

// TextField is a single line of editable text with a rune cursor. The zero
// value is an empty field ready for use.
type TextField struct {
	text   []rune
	cursor int
}

// NewTextField returns a field pre-filled with initial and the cursor at the end.
func NewTextField(initial string) TextField {
	f := TextField{}
	f.SetValue(initial)
	return f
}

// Value returns the current text.
func (f *TextField) Value() string { return string(f.text) }

// Len returns the number of runes in the field.
func (f *TextField) Len() int { return len(f.text) }

// IsEmpty reports whether the field holds no text.
func (f *TextField) IsEmpty() bool { return len(f.text) == 0 }

// Cursor returns the rune offset of the insertion point.
func (f *TextField) Cursor() int {
	f.clamp()
	return f.cursor
}

// SetValue replaces the text and moves the cursor to the end.
func (f *TextField) SetValue(value string) {
	f.text = []rune(value)
	f.cursor = len(f.text)
}

// Clear empties the field.
func (f *TextField) Clear() {
	f.text = f.text[:0]
	f.cursor = 0
}

// Insert places r at the cursor and advances the cursor by one.
func (f *TextField) Insert(r rune) {
	f.clamp()
	f.text = append(f.text, 0)
	copy(f.text[f.cursor+1:], f.text[f.cursor:])
	f.text[f.cursor] = r
	f.cursor++
}

// InsertString inserts every rune of s at the cursor.
func (f *TextField) InsertString(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		f.Insert(r)
	}
	return true
}

// DeleteBackward removes the rune before the cursor.
func (f *TextField) DeleteBackward() bool {
	f.clamp()
	if f.cursor == 0 {
		return false
	}
	f.text = append(f.text[:f.cursor-1], f.text[f.cursor:]...)
	f.cursor--
	return true
}

// DeleteForward removes the rune under the cursor.
func (f *TextField) DeleteForward() bool {
	f.clamp()
	if f.cursor >= len(f.text) {
		return false
	}
	f.text = append(f.text[:f.cursor], f.text[f.cursor+1:]...)
	return true
}

// DeleteWordBackward deletes the word preceding the cursor.
func (f *TextField) DeleteWordBackward() bool {
	f.clamp()
	if f.cursor == 0 {
		return false
	}
	i := f.wordStart()
	f.text = append(f.text[:i], f.text[f.cursor:]...)
	f.cursor = i
	return true
}

// MoveLeft moves the cursor one rune to the left.
func (f *TextField) MoveLeft() bool {
	f.clamp()
	if f.cursor == 0 {
		return false
	}
	f.cursor--
	return true
}

// MoveRight moves the cursor one rune to the right.
func (f *TextField) MoveRight() bool {
	f.clamp()
	if f.cursor >= len(f.text) {
		return false
	}
	f.cursor++
	return true
}

// MoveToStart moves the cursor before the first rune.
func (f *TextField) MoveToStart() bool {
	if f.cursor == 0 {
		return false
	}
	f.cursor = 0
	return true
}

// MoveToEnd moves the cursor after the last rune.
func (f *TextField) MoveToEnd() bool {
	if f.cursor == len(f.text) {
		return false
	}
	f.cursor = len(f.text)
	return true
}

// MoveWordLeft moves the cursor to the start of the previous word.
func (f *TextField) MoveWordLeft() bool {
	f.clamp()
	i := f.wordStart()
	if i == f.cursor {
		return false
	}
	f.cursor = i
	return true
}

// MoveWordRight moves the cursor past the next word.
func (f *TextField) MoveWordRight() bool {
	f.clamp()
	i := f.cursor
	for i < len(f.text) && !unicode.IsSpace(f.text[i]) {
		i++
	}
	for i < len(f.text) && unicode.IsSpace(f.text[i]) {
		i++
	}
	if i == f.cursor {
		return false
	}
	f.cursor = i
	return true
}

// Split returns the text before and after the cursor, used when rendering a caret.
func (f *TextField) Split() (before, after string) {
	f.clamp()
	return string(f.text[:f.cursor]), string(f.text[f.cursor:])
}

func (f *TextField) wordStart() int {
	i := f.cursor
	for i > 0 && unicode.IsSpace(f.text[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(f.text[i-1]) {
		i--
	}
	return i
}

func (f *TextField) clamp() {
	if f.cursor < 0 {
		f.cursor = 0
	}
	if f.cursor > len(f.text) {
		f.cursor = len(f.text)
	}
}
