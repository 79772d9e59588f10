package state

import (
	"math/rand"
	"testing"
)

func newTestCursor(n int) ListCursor[int] {
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}
	return NewListCursor(items)
}

func assertWindow(t *testing.T, c *ListCursor[int], rows int) {
	t.Helper()
	if c.IsEmpty() {
		return
	}
	sel := c.SelectedIndex()
	off := c.ScrollOffset()
	if sel < 0 || sel >= c.Len() {
		t.Fatalf("selection %d out of bounds for %d items", sel, c.Len())
	}
	if sel < off || sel >= off+rows {
		t.Fatalf("selection %d outside window [%d,%d)", sel, off, off+rows)
	}
}

func TestNextClampsAtEnd(t *testing.T) {
	c := newTestCursor(3)
	c.Next(5)
	c.Next(5)
	if c.Next(5) {
		t.Fatalf("expected no movement past the last item")
	}
	if c.SelectedIndex() != 2 {
		t.Fatalf("expected selection 2, got %d", c.SelectedIndex())
	}
}

func TestPreviousClampsAtStart(t *testing.T) {
	c := newTestCursor(3)
	if c.Previous() {
		t.Fatalf("expected no movement before the first item")
	}
	if c.SelectedIndex() != 0 {
		t.Fatalf("expected selection 0, got %d", c.SelectedIndex())
	}
}

func TestNextScrollsOnlyWhenLeavingWindow(t *testing.T) {
	c := newTestCursor(10)
	for i := 0; i < 2; i++ {
		c.Next(3)
	}
	if c.ScrollOffset() != 0 {
		t.Fatalf("expected offset 0 while inside window, got %d", c.ScrollOffset())
	}
	c.Next(3)
	if c.ScrollOffset() != 1 {
		t.Fatalf("expected offset 1 after leaving window, got %d", c.ScrollOffset())
	}
	c.Previous()
	if c.ScrollOffset() != 1 {
		t.Fatalf("expected offset unchanged on move inside window, got %d", c.ScrollOffset())
	}
}

func TestFirstAndLast(t *testing.T) {
	c := newTestCursor(20)
	c.Last(5)
	if c.SelectedIndex() != 19 || c.ScrollOffset() != 15 {
		t.Fatalf("expected 19/15, got %d/%d", c.SelectedIndex(), c.ScrollOffset())
	}
	c.First()
	if c.SelectedIndex() != 0 || c.ScrollOffset() != 0 {
		t.Fatalf("expected 0/0, got %d/%d", c.SelectedIndex(), c.ScrollOffset())
	}

	short := newTestCursor(3)
	short.Last(10)
	if short.ScrollOffset() != 0 {
		t.Fatalf("expected offset 0 when all items fit, got %d", short.ScrollOffset())
	}
}

func TestPagingMovesByAtMostTen(t *testing.T) {
	c := newTestCursor(50)
	c.PageDown(25)
	if c.SelectedIndex() != 10 {
		t.Fatalf("expected page step capped at 10, got %d", c.SelectedIndex())
	}
	c.PageDown(4)
	if c.SelectedIndex() != 14 {
		t.Fatalf("expected page step of 4, got %d", c.SelectedIndex())
	}
	assertWindow(t, &c, 4)
	c.PageUp(4)
	if c.SelectedIndex() != 10 {
		t.Fatalf("expected 10 after page up, got %d", c.SelectedIndex())
	}
	for i := 0; i < 10; i++ {
		c.PageUp(4)
	}
	if c.SelectedIndex() != 0 || c.ScrollOffset() != 0 {
		t.Fatalf("expected clamp at top, got %d/%d", c.SelectedIndex(), c.ScrollOffset())
	}
	for i := 0; i < 20; i++ {
		c.PageDown(4)
	}
	if c.SelectedIndex() != 49 {
		t.Fatalf("expected clamp at bottom, got %d", c.SelectedIndex())
	}
	assertWindow(t, &c, 4)
}

func TestEmptyCursorIsNoOp(t *testing.T) {
	var c ListCursor[string]
	c.Next(5)
	c.Previous()
	c.First()
	c.Last(5)
	c.PageDown(5)
	c.PageUp(5)
	c.Select(3, 5)
	if c.SelectedIndex() != 0 || c.ScrollOffset() != 0 {
		t.Fatalf("expected untouched empty cursor, got %d/%d", c.SelectedIndex(), c.ScrollOffset())
	}
	if _, ok := c.Selected(); ok {
		t.Fatalf("expected no selected item")
	}
	if got := c.VisibleSlice(5); len(got) != 0 {
		t.Fatalf("expected empty slice, got %v", got)
	}
}

func TestSetItemsResetsSelectionAndScroll(t *testing.T) {
	c := newTestCursor(30)
	c.Last(5)
	c.SetItems([]int{7, 8})
	if c.SelectedIndex() != 0 || c.ScrollOffset() != 0 {
		t.Fatalf("expected reset, got %d/%d", c.SelectedIndex(), c.ScrollOffset())
	}
	if v, _ := c.Selected(); v != 7 {
		t.Fatalf("expected first item selected, got %d", v)
	}
	c.Clear()
	if !c.IsEmpty() {
		t.Fatalf("expected cleared cursor to be empty")
	}
}

func TestVisibleSliceWindow(t *testing.T) {
	c := newTestCursor(8)
	for i := 0; i < 6; i++ {
		c.Next(3)
	}
	got := c.VisibleSlice(3)
	if len(got) != 3 || got[0] != 4 || got[2] != 6 {
		t.Fatalf("unexpected window %v", got)
	}
	c.Last(3)
	got = c.VisibleSlice(10)
	if len(got) != 3 {
		t.Fatalf("expected window intersected with bounds, got %v", got)
	}
}

func TestNonPositiveRowsTreatedAsOne(t *testing.T) {
	c := newTestCursor(4)
	c.Next(0)
	c.Next(-3)
	assertWindow(t, &c, 1)
	if got := c.VisibleSlice(0); len(got) != 1 || got[0] != 2 {
		t.Fatalf("expected single visible row, got %v", got)
	}
}

func TestRandomNavigationKeepsSelectionVisible(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 200; trial++ {
		c := newTestCursor(1 + rng.Intn(60))
		rows := 1 + rng.Intn(15)
		for step := 0; step < 100; step++ {
			switch rng.Intn(6) {
			case 0:
				c.Next(rows)
			case 1:
				c.Previous()
			case 2:
				c.PageDown(rows)
			case 3:
				c.PageUp(rows)
			case 4:
				c.First()
			case 5:
				c.Last(rows)
			}
			assertWindow(t, &c, rows)
		}
	}
}
