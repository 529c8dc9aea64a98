package constants

// Behavior Engine
const (
	// FatigueRange is the exclusive bound of the per-tick fatigue roll
	// A behavior is re-rolled when the roll falls below the alien's ticks-in-behavior
	FatigueRange = 2500

	// WallAcceptOdds makes a Wall draw stick only 1 time in WallAcceptOdds
	WallAcceptOdds = 10

	// WanderFlipPeriod is how often (in behavior ticks) a wandering alien may reverse
	WanderFlipPeriod = 15

	// WanderFlipOdds gives a 1 in WanderFlipOdds chance to reverse on a flip tick
	WanderFlipOdds = 5

	// FollowBombRadius is the column distance to the tank within which a follower bombs
	FollowBombRadius = 5

	// DodgeColumnRange is how many columns either side a shot counts as a threat
	DodgeColumnRange = 1

	// DodgeRowRange is how far below the alien a shot counts as a threat
	DodgeRowRange = 6

	// DodgeStep is how many columns a dodge sidestep moves
	DodgeStep = 2

	// DescendPeriod is the loop-counter period of whole-fleet descent
	DescendPeriod = 100
)
