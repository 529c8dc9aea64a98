package components

import "github.com/lixenwraith/invaders/constants"

// Behavior is the movement and targeting mode of an alien
type Behavior uint8

const (
	BehaviorWander Behavior = iota // Drifts left/right, random bombs
	BehaviorFollow                 // Tracks the tank column, bombs when close
	BehaviorDodge                  // Sidesteps incoming shots, never bombs
	BehaviorWall                   // Holds column, bombs every alien tick
)

// BehaviorCount is the number of behaviors a re-roll draws from
const BehaviorCount = 4

var behaviorNames = [BehaviorCount]string{"wander", "follow", "dodge", "wall"}

func (b Behavior) String() string {
	if int(b) < BehaviorCount {
		return behaviorNames[b]
	}
	return "unknown"
}

// Char returns the glyph that identifies the behavior on screen
func (b Behavior) Char() rune {
	if int(b) < BehaviorCount {
		return constants.AlienChars[b]
	}
	return '?'
}

// Direction is a horizontal heading, usable directly as a column delta
type Direction int8

const (
	DirLeft  Direction = -1
	DirRight Direction = 1
)

// Reverse returns the opposite heading
func (d Direction) Reverse() Direction {
	if d == DirLeft {
		return DirRight
	}
	return DirLeft
}
