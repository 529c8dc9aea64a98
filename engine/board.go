package engine

import (
	"fmt"

	"github.com/lixenwraith/invaders/constants"
)

// Board is the playfield size as reported by the terminal.
// Row 0 carries the header, the tank lives on the last row,
// and the last column is kept free so the cursor never wraps.
type Board struct {
	Width, Height int
}

// MaxCol returns the rightmost column an entity may occupy
func (b Board) MaxCol() int {
	return b.Width - 2
}

// BottomRow returns the tank row; an alien reaching it breaches the defence
func (b Board) BottomRow() int {
	return b.Height - 1
}

// ShotRow returns the row a new shot spawns on
func (b Board) ShotRow() int {
	return b.Height - 2
}

// ClampCol limits a column to [0, MaxCol]
func (b Board) ClampCol(col int) int {
	return max(0, min(col, b.MaxCol()))
}

// Contains reports whether (row, col) is a valid entity cell
func (b Board) Contains(row, col int) bool {
	return row >= 0 && row < b.Height && col >= 0 && col <= b.MaxCol()
}

// Validate checks the board against the playable minimum
func (b Board) Validate() error {
	if b.Width < constants.MinBoardWidth || b.Height < constants.MinBoardHeight {
		return fmt.Errorf("%w: %dx%d, need at least %dx%d",
			ErrBoardTooSmall, b.Width, b.Height, constants.MinBoardWidth, constants.MinBoardHeight)
	}
	return nil
}
