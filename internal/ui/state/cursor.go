package state

// maxPageStep caps how far a single page movement travels.
const maxPageStep = 10

// ListCursor tracks the selection and scroll window over an ordered slice.
// It is independent of the item type; rendering concerns live elsewhere.
type ListCursor[T any] struct {
	items        []T
	selected     int
	scrollOffset int
}

// NewListCursor returns a cursor over items with the first item selected.
func NewListCursor[T any](items []T) ListCursor[T] {
	var c ListCursor[T]
	c.SetItems(items)
	return c
}

// Items returns the underlying items.
func (c *ListCursor[T]) Items() []T { return c.items }

// Len returns the number of items.
func (c *ListCursor[T]) Len() int { return len(c.items) }

// IsEmpty reports whether there are no items.
func (c *ListCursor[T]) IsEmpty() bool { return len(c.items) == 0 }

// SelectedIndex returns the index of the selected item.
func (c *ListCursor[T]) SelectedIndex() int { return c.selected }

// ScrollOffset returns the index of the first visible row.
func (c *ListCursor[T]) ScrollOffset() int { return c.scrollOffset }

// Selected returns the selected item, if any.
func (c *ListCursor[T]) Selected() (T, bool) {
	var zero T
	if c.selected < 0 || c.selected >= len(c.items) {
		return zero, false
	}
	return c.items[c.selected], true
}

// SetItems replaces the items and resets the selection and scroll window.
func (c *ListCursor[T]) SetItems(items []T) {
	c.items = items
	c.selected = 0
	c.scrollOffset = 0
}

// Clear drops all items.
func (c *ListCursor[T]) Clear() {
	c.SetItems(nil)
}

// Next selects the following item, stopping at the last one.
func (c *ListCursor[T]) Next(visibleRows int) bool {
	if len(c.items) == 0 || c.selected >= len(c.items)-1 {
		return false
	}
	c.selected++
	c.follow(visibleRows)
	return true
}

// Previous selects the preceding item, stopping at the first one.
func (c *ListCursor[T]) Previous() bool {
	if len(c.items) == 0 || c.selected <= 0 {
		return false
	}
	c.selected--
	if c.selected < c.scrollOffset {
		c.scrollOffset = c.selected
	}
	return true
}

// First selects the first item and scrolls to the top.
func (c *ListCursor[T]) First() bool {
	if len(c.items) == 0 {
		return false
	}
	old := c.selected
	c.selected = 0
	c.scrollOffset = 0
	return old != c.selected
}

// Last selects the last item and shows the final window of rows.
func (c *ListCursor[T]) Last(visibleRows int) bool {
	if len(c.items) == 0 {
		return false
	}
	rows := normalizeRows(visibleRows)
	old := c.selected
	c.selected = len(c.items) - 1
	c.scrollOffset = len(c.items) - rows
	if c.scrollOffset < 0 {
		c.scrollOffset = 0
	}
	return old != c.selected
}

// PageDown moves the selection down by min(visibleRows, 10) rows.
func (c *ListCursor[T]) PageDown(visibleRows int) bool {
	return c.moveBy(pageStep(visibleRows), visibleRows)
}

// PageUp moves the selection up by min(visibleRows, 10) rows.
func (c *ListCursor[T]) PageUp(visibleRows int) bool {
	return c.moveBy(-pageStep(visibleRows), visibleRows)
}

// Select jumps to index, clamped to the item bounds.
func (c *ListCursor[T]) Select(index, visibleRows int) bool {
	if len(c.items) == 0 {
		return false
	}
	return c.moveBy(index-c.selected, visibleRows)
}

// VisibleSlice returns the items inside the current scroll window.
func (c *ListCursor[T]) VisibleSlice(visibleRows int) []T {
	if len(c.items) == 0 {
		return nil
	}
	rows := normalizeRows(visibleRows)
	start := c.scrollOffset
	if start < 0 {
		start = 0
	}
	if start > len(c.items) {
		start = len(c.items)
	}
	end := start + rows
	if end > len(c.items) {
		end = len(c.items)
	}
	return c.items[start:end]
}

func (c *ListCursor[T]) moveBy(delta, visibleRows int) bool {
	if len(c.items) == 0 {
		return false
	}
	old := c.selected
	c.selected += delta
	if c.selected < 0 {
		c.selected = 0
	}
	if c.selected >= len(c.items) {
		c.selected = len(c.items) - 1
	}
	c.follow(visibleRows)
	return old != c.selected
}

// follow shifts the scroll window only when the selection has left it.
func (c *ListCursor[T]) follow(visibleRows int) {
	rows := normalizeRows(visibleRows)
	if c.selected < c.scrollOffset {
		c.scrollOffset = c.selected
	}
	if c.selected >= c.scrollOffset+rows {
		c.scrollOffset = c.selected - rows + 1
	}
	if c.scrollOffset < 0 {
		c.scrollOffset = 0
	}
}

func pageStep(visibleRows int) int {
	step := normalizeRows(visibleRows)
	if step > maxPageStep {
		step = maxPageStep
	}
	return step
}

func normalizeRows(visibleRows int) int {
	if visibleRows < 1 {
		return 1
	}
	return visibleRows
}
