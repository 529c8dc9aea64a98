package render

// Renderer is the character-cell output the game draws through.
// Coordinates are (row, col) with row 0 at the top; DrawChar and DrawText
// write at the cursor and advance it to the right.
type Renderer interface {
	MoveCursor(row, col int)
	DrawChar(ch rune)
	DrawText(s string)
	ClearLine(row int)
	Clear()
	Refresh()
	Size() (width, height int)
}
