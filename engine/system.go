package engine

// System advances one class of entities by one tick.
// Systems check their own cadence against World.Tick; an ineligible tick must leave state untouched.
type System interface {
	Update(world *World)
	Priority() int // Lower values run first
}
