package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/invaders/constants"
)

// ScreenRenderer draws onto a tcell screen
type ScreenRenderer struct {
	screen   tcell.Screen
	row, col int
	styles   map[rune]tcell.Style
	base     tcell.Style
}

// NewScreenRenderer creates a renderer for an initialised screen
func NewScreenRenderer(screen tcell.Screen) *ScreenRenderer {
	base := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	screen.SetStyle(base)
	screen.HideCursor()

	return &ScreenRenderer{
		screen: screen,
		base:   base,
		styles: map[rune]tcell.Style{
			constants.TankChar:      base.Foreground(tcell.ColorLime).Bold(true),
			constants.ShotChar:      base.Foreground(tcell.ColorYellow),
			constants.BombChar:      base.Foreground(tcell.ColorOrangeRed),
			constants.AlienChars[0]: base.Foreground(tcell.ColorAqua),
			constants.AlienChars[1]: base.Foreground(tcell.ColorFuchsia),
			constants.AlienChars[2]: base.Foreground(tcell.ColorSilver),
			constants.AlienChars[3]: base.Foreground(tcell.ColorRed).Bold(true),
		},
	}
}

// MoveCursor sets the draw position
func (r *ScreenRenderer) MoveCursor(row, col int) {
	r.row, r.col = row, col
}

// DrawChar writes one glyph at the cursor; glyphs outside the screen are dropped
func (r *ScreenRenderer) DrawChar(ch rune) {
	style, ok := r.styles[ch]
	if !ok {
		style = r.base
	}
	w, h := r.screen.Size()
	if r.row >= 0 && r.row < h && r.col >= 0 && r.col < w {
		r.screen.SetContent(r.col, r.row, ch, nil, style)
	}
	r.col++
}

// DrawText writes a string at the cursor in the base style
func (r *ScreenRenderer) DrawText(s string) {
	w, h := r.screen.Size()
	for _, ch := range s {
		if r.row >= 0 && r.row < h && r.col >= 0 && r.col < w {
			r.screen.SetContent(r.col, r.row, ch, nil, r.base)
		}
		r.col++
	}
}

// ClearLine blanks a full row and leaves the cursor at its start
func (r *ScreenRenderer) ClearLine(row int) {
	w, _ := r.screen.Size()
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, row, ' ', nil, r.base)
	}
	r.row, r.col = row, 0
}

// Clear blanks the whole screen
func (r *ScreenRenderer) Clear() {
	r.screen.Clear()
	r.row, r.col = 0, 0
}

// Refresh pushes pending changes to the terminal
func (r *ScreenRenderer) Refresh() {
	r.screen.Show()
}

// Size returns the screen size in cells
func (r *ScreenRenderer) Size() (int, int) {
	return r.screen.Size()
}
