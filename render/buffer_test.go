package render

import "testing"

func TestBuffer_DrawPublishesOnRefresh(t *testing.T) {
	b := NewBuffer(10, 3)
	b.MoveCursor(1, 2)
	b.DrawText("ab")

	if got := b.Cell(1, 2); got != ' ' {
		t.Errorf("Expected unpublished cell blank, got %q", got)
	}

	b.Refresh()
	if got := b.Line(1); got != "  ab" {
		t.Errorf("Expected line %q, got %q", "  ab", got)
	}
	if b.Refreshes() != 1 {
		t.Errorf("Expected 1 refresh, got %d", b.Refreshes())
	}
}

func TestBuffer_CursorAdvances(t *testing.T) {
	b := NewBuffer(5, 1)
	b.MoveCursor(0, 0)
	b.DrawChar('x')
	b.DrawChar('y')
	b.Refresh()

	if b.Line(0) != "xy" {
		t.Errorf("Expected consecutive chars, got %q", b.Line(0))
	}
}

func TestBuffer_ClipsOutOfRange(t *testing.T) {
	b := NewBuffer(4, 2)
	b.MoveCursor(0, 2)
	b.DrawText("abcdef")
	b.MoveCursor(5, 0)
	b.DrawChar('z')
	b.MoveCursor(-1, -1)
	b.DrawChar('z')
	b.Refresh()

	if b.Line(0) != "  ab" {
		t.Errorf("Expected clipped line, got %q", b.Line(0))
	}
	if _, _, ok := b.Find('z'); ok {
		t.Error("Expected out-of-range writes to be dropped")
	}
	if b.Cell(9, 9) != 0 {
		t.Error("Expected zero rune outside buffer")
	}
}

func TestBuffer_ClearLineAndClear(t *testing.T) {
	b := NewBuffer(4, 2)
	b.MoveCursor(0, 0)
	b.DrawText("abcd")
	b.MoveCursor(1, 0)
	b.DrawText("efgh")

	b.ClearLine(0)
	b.DrawChar('q')
	b.Refresh()
	if b.Line(0) != "q" || b.Line(1) != "efgh" {
		t.Errorf("Unexpected lines after ClearLine: %q", b.Lines())
	}

	b.Clear()
	b.Refresh()
	for i, line := range b.Lines() {
		if line != "" {
			t.Errorf("Line %d not cleared: %q", i, line)
		}
	}
}
