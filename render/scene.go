package render

import (
	"strconv"

	"github.com/lixenwraith/invaders/constants"
	"github.com/lixenwraith/invaders/engine"
)

// Scene paints game state onto a Renderer
type Scene struct {
	r Renderer
}

// NewScene creates a scene drawing through r
func NewScene(r Renderer) *Scene {
	return &Scene{r: r}
}

// Renderer returns the underlying renderer
func (s *Scene) Renderer() Renderer {
	return s.r
}

// header draws the title, labels, score, and alien counter on row 0
func (s *Scene) header(world *engine.World) {
	width := world.Board.Width
	r := s.r

	r.ClearLine(constants.HeaderRow)

	r.MoveCursor(constants.HeaderRow, width/2-len(constants.TitleText)/2)
	r.DrawText(constants.TitleText)

	r.MoveCursor(constants.HeaderRow, constants.ScoreLabelCol)
	r.DrawText(constants.ScoreLabel)

	r.MoveCursor(constants.HeaderRow, width-len(constants.HelpText)-1)
	r.DrawText(constants.HelpText)

	r.MoveCursor(constants.HeaderRow, constants.ScoreCol)
	r.DrawText(strconv.Itoa(world.Score) + "   ")

	r.MoveCursor(constants.HeaderRow, constants.AliensCol)
	r.DrawText("Aliens: " + strconv.Itoa(world.AliveAliens) + "   ")
}

// Frame redraws the whole board.
// Aliens are drawn at their last redraw cell, bombs only once they have stepped.
func (s *Scene) Frame(world *engine.World) {
	r := s.r
	board := world.Board

	s.header(world)
	for row := constants.HeaderRow + 1; row < board.Height; row++ {
		r.ClearLine(row)
	}

	for i := range world.Aliens {
		a := &world.Aliens[i]
		if !a.Alive {
			continue
		}
		s.put(board, a.PrevRow, a.PrevCol, a.Char)
	}

	for i := range world.Shots.Slots {
		shot := &world.Shots.Slots[i]
		if shot.Active {
			s.put(board, shot.Row, shot.Col, shot.Char)
		}
	}

	for i := range world.Bombs.Slots {
		b := &world.Bombs.Slots[i]
		if b.Active && b.Grace > 0 {
			s.put(board, b.Row, b.Col, b.Char)
		}
	}

	s.put(board, world.Tank.Row, world.Tank.Col, world.Tank.Char)

	r.MoveCursor(constants.HeaderRow, board.Width-1)
	r.Refresh()
}

// put draws a glyph in the playfield; the header row and off-board cells are skipped
func (s *Scene) put(board engine.Board, row, col int, ch rune) {
	if row <= constants.HeaderRow || row >= board.Height || col < 0 || col >= board.Width {
		return
	}
	s.r.MoveCursor(row, col)
	s.r.DrawChar(ch)
}

// GameOver draws the win or lose screen; other states draw nothing
func (s *Scene) GameOver(state engine.State, board engine.Board) bool {
	var text string
	switch {
	case state == engine.StateWon:
		text = constants.WinText
	case state.Lost():
		text = constants.LoseText
	default:
		return false
	}

	r := s.r
	r.Clear()
	r.MoveCursor(board.Height/2-1, board.Width/2-5)
	r.DrawText(text)
	r.MoveCursor(board.Height/2, board.Width/2-11)
	r.DrawText(constants.ExitHintText)
	r.MoveCursor(0, board.Width-1)
	r.Refresh()
	return true
}
