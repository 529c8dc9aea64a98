// Package window runs the game in a desktop window with ebiten.
// The game loop runs on its own goroutine; ebiten owns the main thread and only
// reads the published character grid and feeds keys.
package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/lixenwraith/invaders/constants"
	"github.com/lixenwraith/invaders/input"
	"github.com/lixenwraith/invaders/render"
)

// Cell metrics of basicfont.Face7x13
const (
	CellWidth  = 7
	CellHeight = 13
	cellAscent = 11
)

var background = color.RGBA{0x00, 0x00, 0x00, 0xff}

var (
	colorText  = color.RGBA{0xff, 0xff, 0xff, 0xff}
	glyphColor = map[rune]color.RGBA{
		constants.TankChar:      {0x00, 0xff, 0x00, 0xff},
		constants.ShotChar:      {0xff, 0xff, 0x00, 0xff},
		constants.BombChar:      {0xff, 0x45, 0x00, 0xff},
		constants.AlienChars[0]: {0x00, 0xff, 0xff, 0xff},
		constants.AlienChars[1]: {0xff, 0x00, 0xff, 0xff},
		constants.AlienChars[2]: {0xc0, 0xc0, 0xc0, 0xff},
		constants.AlienChars[3]: {0xff, 0x00, 0x00, 0xff},
	}
)

// specialKeys are checked in order every frame
var specialKeys = []struct {
	key  ebiten.Key
	code input.KeyCode
}{
	{ebiten.KeyArrowLeft, input.KeyLeft},
	{ebiten.KeyArrowRight, input.KeyRight},
	{ebiten.KeyEnter, input.KeyEnter},
	{ebiten.KeyNumpadEnter, input.KeyEnter},
	{ebiten.KeyBackspace, input.KeyBackspace},
}

// Window is an ebiten.Game presenting a character grid
type Window struct {
	grid  *render.SyncBuffer
	src   *input.ChanSource
	cols  int
	rows  int
	done  chan struct{}
	chars []rune
}

// New creates a window with a cols x rows character grid
func New(cols, rows int) *Window {
	return &Window{
		grid: render.NewSyncBuffer(cols, rows),
		src:  input.NewChanSource(64),
		cols: cols,
		rows: rows,
		done: make(chan struct{}),
	}
}

// Renderer returns the grid the game draws into
func (w *Window) Renderer() render.Renderer {
	return w.grid
}

// Source returns the key source fed by the window
func (w *Window) Source() input.Source {
	return w.src
}

// Finish closes the window on the next frame; call once when the game loop returns
func (w *Window) Finish() {
	close(w.done)
}

// Update forwards keyboard input to the game
func (w *Window) Update() error {
	select {
	case <-w.done:
		return ebiten.Termination
	default:
	}

	if ebiten.IsKeyPressed(ebiten.KeyControl) && inpututil.IsKeyJustPressed(ebiten.KeyC) {
		w.src.Push(input.Press(input.KeyQuit))
		return nil
	}

	for _, sk := range specialKeys {
		if inpututil.IsKeyJustPressed(sk.key) {
			w.src.Push(input.Press(sk.code))
		}
	}

	w.chars = ebiten.AppendInputChars(w.chars[:0])
	for _, r := range w.chars {
		w.src.Push(input.FromRune(r))
	}
	return nil
}

// Draw paints the last published frame
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	for y, row := range w.grid.Snapshot() {
		for x, ch := range row {
			if ch == ' ' || ch == 0 {
				continue
			}
			c, ok := glyphColor[ch]
			if !ok {
				c = colorText
			}
			text.Draw(screen, string(ch), basicfont.Face7x13, x*CellWidth, y*CellHeight+cellAscent, c)
		}
	}
}

// Layout fixes the logical screen to the grid size
func (w *Window) Layout(_, _ int) (int, int) {
	return w.cols * CellWidth, w.rows * CellHeight
}
