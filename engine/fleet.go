package engine

import (
	"fmt"

	"github.com/lixenwraith/invaders/components"
	"github.com/lixenwraith/invaders/constants"
)

// FleetLayout describes how the fleet is arranged at game start
type FleetLayout struct {
	Count int // Total aliens
	Rows  int // Rows the aliens are spread over
}

// DefaultFleetLayout returns the classic 3x3 fleet
func DefaultFleetLayout() FleetLayout {
	return FleetLayout{Count: constants.DefaultAlienCount, Rows: constants.DefaultAlienRows}
}

// Columns returns the number of aliens per row
func (l FleetLayout) Columns() int {
	if l.Rows <= 0 {
		return 0
	}
	return (l.Count + l.Rows - 1) / l.Rows
}

// Validate checks the layout itself, independent of any board
func (l FleetLayout) Validate() error {
	if l.Count < 1 || l.Count > constants.MaxAlienCount {
		return fmt.Errorf("%w: alien count must be in 1..%d, got %d", ErrInvalidSetting, constants.MaxAlienCount, l.Count)
	}
	if l.Rows < 1 || l.Rows > l.Count {
		return fmt.Errorf("%w: alien rows must be in 1..%d, got %d", ErrInvalidSetting, l.Count, l.Rows)
	}
	return nil
}

// NewFleet lays out the aliens row-major: fleet row r at board row (r+1)*2, column c at c*5.
// Every alien must start strictly above the tank row and within [0, MaxCol];
// anything else would freeze off-screen, so it is rejected up front.
func NewFleet(layout FleetLayout, board Board) ([]components.AlienComponent, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}

	cols := layout.Columns()
	aliens := make([]components.AlienComponent, layout.Count)
	for i := range aliens {
		row := (i/cols + 1) * constants.AlienRowSpacing
		col := (i % cols) * constants.AlienColumnSpacing

		if row >= board.BottomRow() || !board.Contains(row, col) {
			return nil, fmt.Errorf("%w: alien %d at (%d,%d) on %dx%d board",
				ErrOutOfBounds, i, row, col, board.Width, board.Height)
		}

		aliens[i] = components.AlienComponent{
			Row:      row,
			Col:      col,
			PrevRow:  row,
			PrevCol:  col,
			Alive:    true,
			Behavior: components.BehaviorWander,
			Dir:      components.DirRight,
			Char:     components.BehaviorWander.Char(),
		}
	}
	return aliens, nil
}
