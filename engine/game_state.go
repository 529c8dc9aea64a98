package engine

// State is the game loop state machine
type State int

const (
	StateRunning State = iota
	StateWon
	StateLostByBreach // An alien reached the tank row
	StateLostByBomb   // A bomb landed on the tank
	StateQuit
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateWon:
		return "won"
	case StateLostByBreach:
		return "lost (breach)"
	case StateLostByBomb:
		return "lost (bomb)"
	case StateQuit:
		return "quit"
	}
	return "unknown"
}

// Terminal reports whether the state ends the loop
func (s State) Terminal() bool {
	return s != StateRunning
}

// Lost reports whether the state is either loss
func (s State) Lost() bool {
	return s == StateLostByBreach || s == StateLostByBomb
}
