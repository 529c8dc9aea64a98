package engine

import (
	"fmt"

	"github.com/lixenwraith/invaders/constants"
)

// Settings holds the five tunables read by every system
type Settings struct {
	OverallDelay int // Pacing sleep per tick in microseconds, >= 0
	AlienDivisor int // Aliens move on ticks divisible by this, > 0
	ShotDivisor  int // Shots move on ticks divisible by this, > 0
	BombDivisor  int // Bombs move on ticks divisible by this, > 0
	BombChance   int // Percent chance of an eligible bomb drop, 0..100
}

// DefaultSettings returns the classic tuning
func DefaultSettings() Settings {
	return Settings{
		OverallDelay: constants.DefaultOverallDelay,
		AlienDivisor: constants.DefaultAlienDivisor,
		ShotDivisor:  constants.DefaultShotDivisor,
		BombDivisor:  constants.DefaultBombDivisor,
		BombChance:   constants.DefaultBombChance,
	}
}

// Field identifies one setting; the order matches the menu numbering
type Field int

const (
	FieldOverallDelay Field = iota
	FieldAlienDivisor
	FieldShotDivisor
	FieldBombDivisor
	FieldBombChance
)

// FieldCount is the number of adjustable settings
const FieldCount = 5

var fieldLabels = [FieldCount]string{
	"Change overall game speed",
	"Change alien motion speed",
	"Change tank shot speed",
	"Change alien bomb speed",
	"Change alien bomb dropping frequency",
}

var fieldNames = [FieldCount]string{
	"overall_delay",
	"alien_divisor",
	"shot_divisor",
	"bomb_divisor",
	"bomb_chance",
}

// Label returns the menu text for the field
func (f Field) Label() string {
	if f < 0 || int(f) >= FieldCount {
		return ""
	}
	return fieldLabels[f]
}

func (f Field) String() string {
	if f < 0 || int(f) >= FieldCount {
		return fmt.Sprintf("field(%d)", int(f))
	}
	return fieldNames[f]
}

// Check validates a candidate value for the field without applying it
func (f Field) Check(value int) error {
	switch f {
	case FieldOverallDelay:
		if value < 0 {
			return fmt.Errorf("%w: %s must be >= 0, got %d", ErrInvalidSetting, f, value)
		}
	case FieldAlienDivisor, FieldShotDivisor, FieldBombDivisor:
		if value < constants.MinDivisor {
			return fmt.Errorf("%w: %s must be >= %d, got %d", ErrInvalidSetting, f, constants.MinDivisor, value)
		}
	case FieldBombChance:
		if value < 0 || value > constants.MaxBombChance {
			return fmt.Errorf("%w: %s must be in 0..%d, got %d", ErrInvalidSetting, f, constants.MaxBombChance, value)
		}
	default:
		return fmt.Errorf("%w: unknown %s", ErrInvalidSetting, f)
	}
	return nil
}

// Get returns the current value of a field
func (s *Settings) Get(f Field) int {
	switch f {
	case FieldOverallDelay:
		return s.OverallDelay
	case FieldAlienDivisor:
		return s.AlienDivisor
	case FieldShotDivisor:
		return s.ShotDivisor
	case FieldBombDivisor:
		return s.BombDivisor
	case FieldBombChance:
		return s.BombChance
	}
	return 0
}

// Set applies a value after validation; the prior value is kept on error
func (s *Settings) Set(f Field, value int) error {
	if err := f.Check(value); err != nil {
		return err
	}
	switch f {
	case FieldOverallDelay:
		s.OverallDelay = value
	case FieldAlienDivisor:
		s.AlienDivisor = value
	case FieldShotDivisor:
		s.ShotDivisor = value
	case FieldBombDivisor:
		s.BombDivisor = value
	case FieldBombChance:
		s.BombChance = value
	}
	return nil
}

// Validate checks every field
func (s Settings) Validate() error {
	for f := Field(0); int(f) < FieldCount; f++ {
		if err := f.Check(s.Get(f)); err != nil {
			return err
		}
	}
	return nil
}

// Eligible reports whether a class moving every divisor ticks moves on this tick
func Eligible(tick uint64, divisor int) bool {
	if divisor <= 0 {
		return false
	}
	return tick%uint64(divisor) == 0
}
