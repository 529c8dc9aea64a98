package input

import (
	"context"
	"io"

	"github.com/lixenwraith/invaders/engine"
)

// autopilotBombWatch is how many rows above the tank a falling bomb is considered a threat
const autopilotBombWatch = 4

// Autopilot plays the game by reading the world it is attached to.
// It steps out from under falling bombs, otherwise lines up with the nearest alien and fires.
type Autopilot struct {
	world *engine.World
}

// NewAutopilot creates a bot driving the tank of world
func NewAutopilot(world *engine.World) *Autopilot {
	return &Autopilot{world: world}
}

func (a *Autopilot) PollKey() (Key, bool) {
	w := a.world
	if w == nil {
		return Key{}, false
	}
	tank := w.Tank

	if code, ok := a.evade(); ok {
		return Press(code), true
	}

	target, ok := a.target()
	if !ok {
		return Key{}, false
	}
	switch {
	case target < tank.Col:
		return Press(KeyLeft), true
	case target > tank.Col:
		return Press(KeyRight), true
	case !w.Shots.Full():
		return FromRune(' '), true
	}
	return Key{}, false
}

// evade returns a move away from the closest bomb about to land on the tank
func (a *Autopilot) evade() (KeyCode, bool) {
	w := a.world
	tank := w.Tank
	closest := -1
	for i := range w.Bombs.Slots {
		b := &w.Bombs.Slots[i]
		if !b.Active || b.Col < tank.Col-1 || b.Col > tank.Col+1 {
			continue
		}
		if tank.Row-b.Row > autopilotBombWatch || b.Row > tank.Row {
			continue
		}
		if closest < 0 || b.Row > w.Bombs.Slots[closest].Row {
			closest = i
		}
	}
	if closest < 0 {
		return KeyNone, false
	}

	bombCol := w.Bombs.Slots[closest].Col
	switch {
	case bombCol > tank.Col && tank.Col > 0:
		return KeyLeft, true
	case bombCol < tank.Col && tank.Col < w.Board.MaxCol():
		return KeyRight, true
	case tank.Col > 1:
		return KeyLeft, true
	default:
		return KeyRight, true
	}
}

// target picks the column of the living alien nearest the tank, lowest alien first on ties.
// Shots hit aliens at their last drawn column, so that is the column aimed at.
func (a *Autopilot) target() (int, bool) {
	w := a.world
	best := -1
	for i := range w.Aliens {
		al := &w.Aliens[i]
		if !al.Alive {
			continue
		}
		if best < 0 {
			best = i
			continue
		}
		cur := &w.Aliens[best]
		d, bd := abs(al.PrevCol-w.Tank.Col), abs(cur.PrevCol-w.Tank.Col)
		if d < bd || (d == bd && al.Row > cur.Row) {
			best = i
		}
	}
	if best < 0 {
		return 0, false
	}
	return w.Board.ClampCol(w.Aliens[best].PrevCol), true
}

// ReadLine has nothing to type; the autopilot never opens the menu
func (a *Autopilot) ReadLine(ctx context.Context, echo func(string)) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
