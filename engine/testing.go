package engine

import (
	"github.com/lixenwraith/invaders/components"
	"github.com/lixenwraith/invaders/constants"
)

// ScriptedRand replays queued values, used by tests to pin behavior outcomes.
// An exhausted queue answers n-1, the least eventful value for every roll the engine makes.
type ScriptedRand struct {
	values []int
	calls  int
}

// NewScriptedRand creates a generator that returns values in order
func NewScriptedRand(values ...int) *ScriptedRand {
	return &ScriptedRand{values: values}
}

// Push appends more values to the queue
func (r *ScriptedRand) Push(values ...int) {
	r.values = append(r.values, values...)
}

// Calls returns how many values have been drawn
func (r *ScriptedRand) Calls() int {
	return r.calls
}

func (r *ScriptedRand) Intn(n int) int {
	r.calls++
	if n <= 0 {
		return 0
	}
	if len(r.values) == 0 {
		return n - 1
	}
	v := r.values[0]
	r.values = r.values[1:]
	return max(0, min(v, n-1))
}

// NewTestWorld creates a world on an explicit board holding exactly the given aliens.
// The classic layout cannot place aliens freely, so tests build the fleet by hand.
func NewTestWorld(width, height int, aliens ...components.AlienComponent) *World {
	board := Board{Width: width, Height: height}
	w := &World{
		Board:    board,
		Settings: DefaultSettings(),
		Tank: components.TankComponent{
			Row:  board.BottomRow(),
			Col:  width / 2,
			Char: constants.TankChar,
		},
		Aliens: aliens,
		Shots:  NewShotPool(),
		Bombs:  NewBombPool(16),
	}
	for _, a := range aliens {
		if a.Alive {
			w.AliveAliens++
		}
	}
	return w
}

// NewTestAlien creates a living alien whose previous cell equals its current cell
func NewTestAlien(row, col int, behavior components.Behavior) components.AlienComponent {
	return components.AlienComponent{
		Row:      row,
		Col:      col,
		PrevRow:  row,
		PrevCol:  col,
		Alive:    true,
		Behavior: behavior,
		Dir:      components.DirRight,
		Char:     behavior.Char(),
	}
}
