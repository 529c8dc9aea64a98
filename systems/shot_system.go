package systems

import (
	"github.com/lixenwraith/invaders/constants"
	"github.com/lixenwraith/invaders/engine"
)

// ShotSystem moves tank shots upward and resolves alien hits
// Priority: 20 (after bombs, before aliens)
type ShotSystem struct{}

// NewShotSystem creates a new shot system
func NewShotSystem() *ShotSystem {
	return &ShotSystem{}
}

// Priority returns the system's priority
func (s *ShotSystem) Priority() int {
	return 20
}

// Update runs on shot ticks: each active shot either hits an alien, climbs one row,
// or is released at the top boundary
func (s *ShotSystem) Update(world *engine.World) {
	if !engine.Eligible(world.Tick, world.Settings.ShotDivisor) {
		return
	}

	pool := world.Shots
	for i := range pool.Slots {
		shot := &pool.Slots[i]
		if !shot.Active {
			continue
		}

		if shot.Row <= 0 {
			pool.Release(i)
			continue
		}

		if s.resolveHit(world, shot.Row, shot.Col) {
			pool.Release(i)
			continue
		}

		shot.Row--
	}
}

// resolveHit kills the first living alien on the shot's cell.
// Aliens are matched on current row and previous column: the fleet is drawn at its
// previous column, so that is the cell the player aimed at.
func (s *ShotSystem) resolveHit(world *engine.World, row, col int) bool {
	for j := range world.Aliens {
		a := &world.Aliens[j]
		if !a.Alive || a.Row != row || a.PrevCol != col {
			continue
		}

		a.Alive = false
		world.AliveAliens--
		world.Score += constants.HitReward
		world.Stats.Hits++
		return true
	}
	return false
}
