package systems

import (
	"log"

	"github.com/lixenwraith/invaders/components"
	"github.com/lixenwraith/invaders/constants"
	"github.com/lixenwraith/invaders/engine"
)

// AlienSystem is the behavior engine: on alien ticks it moves every living alien
// according to its behavior, then spawns the bombs the fleet asked for
// Priority: 30 (after bombs and shots)
type AlienSystem struct {
	rng   engine.Rand
	clock engine.TimeProvider

	// Per-alien drop requests, reused across ticks
	drops []bool
}

// NewAlienSystem creates a new alien system drawing randomness from rng
// clock may be nil, in which case engine timing is not recorded
func NewAlienSystem(rng engine.Rand, clock engine.TimeProvider) *AlienSystem {
	return &AlienSystem{
		rng:   rng,
		clock: clock,
	}
}

// Priority returns the system's priority
func (s *AlienSystem) Priority() int {
	return 30
}

// Update runs the behavior engine on alien ticks
func (s *AlienSystem) Update(world *engine.World) {
	if !engine.Eligible(world.Tick, world.Settings.AlienDivisor) {
		return
	}

	if s.clock != nil {
		start := s.clock.Now()
		defer func() {
			world.Stats.AlienTime += s.clock.Now().Sub(start)
		}()
	}

	if cap(s.drops) < len(world.Aliens) {
		s.drops = make([]bool, len(world.Aliens))
	}
	s.drops = s.drops[:len(world.Aliens)]

	descend := world.Tick%constants.DescendPeriod == 0 && world.Tick != 0

	for i := range world.Aliens {
		a := &world.Aliens[i]
		s.drops[i] = false
		if !a.Alive {
			continue
		}

		// Redraw mark: the cell the alien is shown at until the next alien tick
		a.PrevRow, a.PrevCol = a.Row, a.Col

		s.drops[i] = s.stepAlien(world, i, a)

		if descend {
			a.Row++
		}
		a.Ticks++
	}

	s.dropBombs(world)
	world.Stats.AlienTicks++
}

// stepAlien applies fatigue and the current behavior; returns true when the alien requests a bomb
func (s *AlienSystem) stepAlien(world *engine.World, index int, a *components.AlienComponent) bool {
	// Longer time in a behavior raises the chance of a forced change
	if s.rng.Intn(constants.FatigueRange) < a.Ticks {
		prev, ticks := a.Behavior, a.Ticks
		a.SetBehavior(s.rollBehavior())
		world.Stats.Rerolls++
		log.Printf("alien %d: %s -> %s after %d ticks", index, prev, a.Behavior, ticks)
	}

	var drop bool
	switch a.Behavior {
	case components.BehaviorWander:
		drop = s.wander(world, a)
	case components.BehaviorFollow:
		drop = s.follow(world, a)
	case components.BehaviorDodge:
		s.dodge(world, a)
	case components.BehaviorWall:
		drop = true
	}

	a.Col = world.Board.ClampCol(a.Col)
	return drop
}

// rollBehavior draws a new behavior; a Wall draw only sticks 1 time in WallAcceptOdds
func (s *AlienSystem) rollBehavior() components.Behavior {
	for {
		b := components.Behavior(s.rng.Intn(components.BehaviorCount))
		if b == components.BehaviorWall && s.rng.Intn(constants.WallAcceptOdds) != 0 {
			continue
		}
		return b
	}
}

// rollBomb reports whether a percent-chance bomb roll succeeds
func (s *AlienSystem) rollBomb(chance int) bool {
	return chance-(1+s.rng.Intn(100)) >= 0
}

// dropBombs claims bomb slots for every alien that asked for one.
// The scan resumes after the previous claim so a tick's bombs spread across the pool.
func (s *AlienSystem) dropBombs(world *engine.World) {
	cursor, skipped := 0, 0
	for i, want := range s.drops {
		if !want {
			continue
		}
		a := &world.Aliens[i]
		if !a.Alive {
			continue
		}

		idx, ok := world.Bombs.Claim(cursor, a.Row+1, a.Col)
		if !ok {
			skipped++
			continue
		}
		cursor = idx
		world.Stats.BombsDropped++
	}

	if skipped > 0 {
		world.Stats.BombsSkipped += skipped
		log.Printf("bomb pool exhausted: %d drops skipped (capacity %d)", skipped, world.Bombs.Cap())
	}
}
