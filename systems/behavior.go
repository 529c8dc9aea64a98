package systems

import (
	"github.com/lixenwraith/invaders/components"
	"github.com/lixenwraith/invaders/constants"
	"github.com/lixenwraith/invaders/engine"
)

// wander drifts one column per tick, occasionally reversing, and rolls for a bomb
func (s *AlienSystem) wander(world *engine.World, a *components.AlienComponent) bool {
	flip := s.rng.Intn(constants.WanderFlipOdds)
	if a.Ticks%constants.WanderFlipPeriod == 0 && flip == 0 {
		a.Dir = a.Dir.Reverse()
	}

	step(world.Board, a)

	return s.rollBomb(world.Settings.BombChance)
}

// follow closes one column on the tank and bombs only when nearly above it
func (s *AlienSystem) follow(world *engine.World, a *components.AlienComponent) bool {
	target := world.Tank.Col
	switch {
	case a.Col < target:
		a.Col++
	case a.Col > target:
		a.Col--
	}

	roll := s.rollBomb(world.Settings.BombChance)
	return roll && abs(a.Col-target) <= constants.FollowBombRadius
}

// dodge sidesteps the first shot closing in from below, otherwise drifts like wander
func (s *AlienSystem) dodge(world *engine.World, a *components.AlienComponent) {
	maxCol := world.Board.MaxCol()

	for i := range world.Shots.Slots {
		shot := &world.Shots.Slots[i]
		if !shot.Active || !threatens(shot, a) {
			continue
		}

		switch {
		case a.Col >= maxCol-1:
			a.Dir = components.DirLeft
		case a.Col <= 1:
			a.Dir = components.DirRight
		case s.rng.Intn(2) == 0:
			a.Dir = components.DirRight
		default:
			a.Dir = components.DirLeft
		}

		a.Col = world.Board.ClampCol(a.Col + int(a.Dir)*constants.DodgeStep)
		return
	}

	step(world.Board, a)
}

// threatens reports whether a shot is in the column band below the alien and close enough to hit soon
func threatens(shot *components.ShotComponent, a *components.AlienComponent) bool {
	return abs(shot.Col-a.Col) <= constants.DodgeColumnRange &&
		shot.Row > a.Row &&
		shot.Row-a.Row <= constants.DodgeRowRange
}

// step moves one column along the heading, turning around at either edge first
func step(board engine.Board, a *components.AlienComponent) {
	if a.Col >= board.MaxCol() {
		a.Dir = components.DirLeft
	} else if a.Col <= 0 {
		a.Dir = components.DirRight
	}
	a.Col += int(a.Dir)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
