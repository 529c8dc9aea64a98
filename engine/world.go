package engine

import (
	"fmt"

	"github.com/lixenwraith/invaders/components"
	"github.com/lixenwraith/invaders/constants"
)

// WorldConfig is everything needed to build a fresh game
type WorldConfig struct {
	Board        Board
	Settings     Settings
	Fleet        FleetLayout
	BombCapacity int
}

// DefaultWorldConfig returns the classic configuration for a board
func DefaultWorldConfig(board Board) WorldConfig {
	return WorldConfig{
		Board:        board,
		Settings:     DefaultSettings(),
		Fleet:        DefaultFleetLayout(),
		BombCapacity: constants.DefaultBombCapacity,
	}
}

// World holds all mutable game state.
// It is owned by the game loop and passed explicitly to every system; nothing here is shared.
type World struct {
	Board    Board
	Settings Settings

	Tank   components.TankComponent
	Aliens []components.AlienComponent
	Shots  *ShotPool
	Bombs  *BombPool

	Score       int
	AliveAliens int

	// Tick is the loop counter; divisors are applied against it
	Tick uint64

	Stats Stats
}

// NewWorld validates a configuration and creates the starting state
func NewWorld(cfg WorldConfig) (*World, error) {
	if err := cfg.Settings.Validate(); err != nil {
		return nil, err
	}
	if cfg.BombCapacity < 1 || cfg.BombCapacity > constants.MaxBombCapacity {
		return nil, fmt.Errorf("%w: bomb capacity must be in 1..%d, got %d",
			ErrInvalidSetting, constants.MaxBombCapacity, cfg.BombCapacity)
	}

	aliens, err := NewFleet(cfg.Fleet, cfg.Board)
	if err != nil {
		return nil, err
	}

	tank := components.TankComponent{
		Row:  cfg.Board.BottomRow(),
		Col:  cfg.Board.Width / 2,
		Char: constants.TankChar,
	}
	if !cfg.Board.Contains(tank.Row, tank.Col) {
		return nil, fmt.Errorf("%w: tank at (%d,%d) on %dx%d board",
			ErrOutOfBounds, tank.Row, tank.Col, cfg.Board.Width, cfg.Board.Height)
	}

	return &World{
		Board:       cfg.Board,
		Settings:    cfg.Settings,
		Tank:        tank,
		Aliens:      aliens,
		Shots:       NewShotPool(),
		Bombs:       NewBombPool(cfg.BombCapacity),
		AliveAliens: len(aliens),
	}, nil
}

// FireShot spawns a shot above the tank and charges the firing cost.
// Returns false without side effects when the shot pool is full.
func (w *World) FireShot() bool {
	if _, ok := w.Shots.Claim(w.Board.ShotRow(), w.Tank.Col); !ok {
		return false
	}
	w.Score -= constants.FireCost
	w.Stats.ShotsFired++
	return true
}

// MoveTank shifts the tank by delta columns and clamps it to the board
func (w *World) MoveTank(delta int) {
	w.Tank.Col = w.Board.ClampCol(w.Tank.Col + delta)
}
