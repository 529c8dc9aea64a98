package constants

import "time"

// Default Settings
// Values match the classic curses build; all are adjustable from the menu
const (
	// DefaultOverallDelay is the per-tick pacing sleep in microseconds
	DefaultOverallDelay = 15000

	// DefaultAlienDivisor moves aliens every Nth tick
	DefaultAlienDivisor = 12

	// DefaultShotDivisor moves shots every Nth tick
	DefaultShotDivisor = 3

	// DefaultBombDivisor moves bombs every Nth tick
	DefaultBombDivisor = 10

	// DefaultBombChance is the percent chance an eligible alien drops a bomb
	DefaultBombChance = 5
)

// Setting Limits
const (
	// MaxBombChance is the upper bound of BombChance (percent)
	MaxBombChance = 100

	// MinDivisor is the smallest accepted tick divisor
	MinDivisor = 1
)

// Game Loop Timing
const (
	// DelayUnit converts OverallDelay into a duration
	DelayUnit = time.Microsecond

	// GameOverPollInterval is the sleep between key polls on the win/lose screen
	GameOverPollInterval = 20 * time.Millisecond
)

// Scoring
const (
	// HitReward is added to the score when a shot kills an alien
	HitReward = 20

	// FireCost is subtracted from the score for every shot fired
	FireCost = 1
)
