package render

import "strings"

// Buffer is an in-memory framebuffer renderer.
// Drawing goes to a back buffer; Refresh copies it to the front buffer readers see.
type Buffer struct {
	width     int
	height    int
	back      [][]rune
	front     [][]rune
	row, col  int
	refreshes int
}

// NewBuffer creates a new buffer with the given dimensions
func NewBuffer(width, height int) *Buffer {
	return &Buffer{
		width:  width,
		height: height,
		back:   newGrid(width, height),
		front:  newGrid(width, height),
	}
}

func newGrid(width, height int) [][]rune {
	lines := make([][]rune, height)
	for y := 0; y < height; y++ {
		lines[y] = make([]rune, width)
		for x := 0; x < width; x++ {
			lines[y][x] = ' '
		}
	}
	return lines
}

// Size returns the buffer dimensions
func (b *Buffer) Size() (int, int) {
	return b.width, b.height
}

// MoveCursor sets the draw position
func (b *Buffer) MoveCursor(row, col int) {
	b.row, b.col = row, col
}

// DrawChar writes at the cursor and advances it; out-of-range writes are dropped
func (b *Buffer) DrawChar(ch rune) {
	if b.row >= 0 && b.row < b.height && b.col >= 0 && b.col < b.width {
		b.back[b.row][b.col] = ch
	}
	b.col++
}

// DrawText writes each rune of s at the cursor
func (b *Buffer) DrawText(s string) {
	for _, ch := range s {
		b.DrawChar(ch)
	}
}

// ClearLine blanks a row and leaves the cursor at its start
func (b *Buffer) ClearLine(row int) {
	if row >= 0 && row < b.height {
		for x := range b.back[row] {
			b.back[row][x] = ' '
		}
	}
	b.row, b.col = row, 0
}

// Clear blanks the back buffer
func (b *Buffer) Clear() {
	for y := range b.back {
		b.ClearLine(y)
	}
	b.row, b.col = 0, 0
}

// Refresh publishes the back buffer
func (b *Buffer) Refresh() {
	for y := range b.back {
		copy(b.front[y], b.back[y])
	}
	b.refreshes++
}

// Cell returns the published glyph at (row, col), or 0 outside the buffer
func (b *Buffer) Cell(row, col int) rune {
	if row < 0 || row >= b.height || col < 0 || col >= b.width {
		return 0
	}
	return b.front[row][col]
}

// Line returns a published row with trailing blanks trimmed
func (b *Buffer) Line(row int) string {
	if row < 0 || row >= b.height {
		return ""
	}
	return strings.TrimRight(string(b.front[row]), " ")
}

// Lines returns every published row
func (b *Buffer) Lines() []string {
	lines := make([]string, b.height)
	for y := range lines {
		lines[y] = b.Line(y)
	}
	return lines
}

// Refreshes returns how many times Refresh was called
func (b *Buffer) Refreshes() int {
	return b.refreshes
}

// Find returns the first published cell holding ch, scanning row-major
func (b *Buffer) Find(ch rune) (row, col int, ok bool) {
	for y := range b.front {
		for x, c := range b.front[y] {
			if c == ch {
				return y, x, true
			}
		}
	}
	return -1, -1, false
}
