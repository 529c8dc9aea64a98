package systems

import "github.com/lixenwraith/invaders/engine"

// BombSystem moves active bombs down one row per bomb tick
// Priority: 10 (before shots and aliens)
type BombSystem struct{}

// NewBombSystem creates a new bomb system
func NewBombSystem() *BombSystem {
	return &BombSystem{}
}

// Priority returns the system's priority
func (s *BombSystem) Priority() int {
	return 10
}

// Update advances bombs on bomb ticks; a bomb that reaches the bottom boundary is released
func (s *BombSystem) Update(world *engine.World) {
	if !engine.Eligible(world.Tick, world.Settings.BombDivisor) {
		return
	}

	pool := world.Bombs
	for i := range pool.Slots {
		b := &pool.Slots[i]
		if !b.Active {
			continue
		}

		// First step arms the bomb for drawing
		if b.Grace == 0 {
			b.Grace++
		}

		b.Row++
		if b.Row >= world.Board.Height {
			pool.Release(i)
		}
	}
}
