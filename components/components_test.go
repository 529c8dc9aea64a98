package components

import (
	"testing"

	"github.com/lixenwraith/invaders/constants"
)

func TestBehaviorChar(t *testing.T) {
	tests := []struct {
		name     string
		behavior Behavior
		want     rune
	}{
		{"Wander", BehaviorWander, '#'},
		{"Follow", BehaviorFollow, 'V'},
		{"Dodge", BehaviorDodge, '+'},
		{"Wall", BehaviorWall, 'T'},
		{"Out of range", Behavior(9), '?'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.behavior.Char(); got != tt.want {
				t.Errorf("Expected glyph %q, got %q", tt.want, got)
			}
		})
	}
}

func TestBehaviorString(t *testing.T) {
	if BehaviorWall.String() != "wall" {
		t.Errorf("Expected wall, got %s", BehaviorWall.String())
	}
	if Behavior(200).String() != "unknown" {
		t.Errorf("Expected unknown for invalid behavior, got %s", Behavior(200).String())
	}
}

func TestDirectionReverse(t *testing.T) {
	if DirLeft.Reverse() != DirRight {
		t.Error("Expected left to reverse to right")
	}
	if DirRight.Reverse() != DirLeft {
		t.Error("Expected right to reverse to left")
	}
	if int(DirRight)+int(DirLeft) != 0 {
		t.Error("Expected directions to be opposite column deltas")
	}
}

func TestSetBehaviorResetsFatigue(t *testing.T) {
	alien := AlienComponent{Behavior: BehaviorWander, Ticks: 120, Char: constants.AlienChars[BehaviorWander]}

	alien.SetBehavior(BehaviorDodge)

	if alien.Ticks != 0 {
		t.Errorf("Expected ticks reset to 0, got %d", alien.Ticks)
	}
	if alien.Char != '+' {
		t.Errorf("Expected dodge glyph '+', got %q", alien.Char)
	}
}
