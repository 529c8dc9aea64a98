package render

import (
	"strings"
	"testing"

	"github.com/lixenwraith/invaders/components"
	"github.com/lixenwraith/invaders/constants"
	"github.com/lixenwraith/invaders/engine"
)

func newSceneWorld(aliens ...components.AlienComponent) (*engine.World, *Buffer, *Scene) {
	return newSceneWorldSized(40, 20, aliens...)
}

func newSceneWorldSized(w, h int, aliens ...components.AlienComponent) (*engine.World, *Buffer, *Scene) {
	world := engine.NewTestWorld(w, h, aliens...)
	buf := NewBuffer(w, h)
	return world, buf, NewScene(buf)
}

func TestFrame_Header(t *testing.T) {
	world, buf, scene := newSceneWorldSized(80, 24, engine.NewTestAlien(2, 0, components.BehaviorWander))
	world.Score = 19

	scene.Frame(world)

	header := buf.Line(constants.HeaderRow)
	if !strings.HasPrefix(header, " "+constants.ScoreLabel+"19") {
		t.Errorf("Expected score after label, got %q", header)
	}
	if !strings.Contains(header, "Aliens: 1") {
		t.Errorf("Expected alien counter, got %q", header)
	}
	if !strings.HasSuffix(header, constants.HelpText) {
		t.Errorf("Expected right-aligned help, got %q", header)
	}
	if !strings.Contains(header, constants.TitleText) {
		t.Errorf("Expected title, got %q", header)
	}
}

func TestFrame_NegativeScoreOverwritesLonger(t *testing.T) {
	world, buf, scene := newSceneWorld(engine.NewTestAlien(2, 0, components.BehaviorWander))
	world.Score = 100
	scene.Frame(world)

	world.Score = -3
	scene.Frame(world)

	header := buf.Line(constants.HeaderRow)
	if strings.Contains(header, "100") {
		t.Errorf("Expected stale score digits cleared, got %q", header)
	}
	if !strings.Contains(header, constants.ScoreLabel+"-3") {
		t.Errorf("Expected negative score, got %q", header)
	}
}

func TestFrame_Entities(t *testing.T) {
	alien := engine.NewTestAlien(4, 10, components.BehaviorFollow)
	alien.Row, alien.Col = 5, 11
	dead := engine.NewTestAlien(6, 30, components.BehaviorDodge)
	dead.Alive = false

	world, buf, scene := newSceneWorld(alien, dead)
	world.Shots.Claim(12, 7)
	world.Bombs.Claim(0, 8, 3)
	stepped, _ := world.Bombs.Claim(0, 9, 4)
	world.Bombs.Slots[stepped].Grace = 1

	scene.Frame(world)

	tests := []struct {
		name     string
		row, col int
		want     rune
	}{
		{"alien at previous cell", 4, 10, 'V'},
		{"alien current cell not drawn yet", 5, 11, ' '},
		{"dead alien hidden", 6, 30, ' '},
		{"shot", 12, 7, constants.ShotChar},
		{"fresh bomb hidden", 8, 3, ' '},
		{"stepped bomb", 9, 4, constants.BombChar},
		{"tank", 19, 20, constants.TankChar},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := buf.Cell(tt.row, tt.col); got != tt.want {
				t.Errorf("Cell(%d,%d) = %q, want %q", tt.row, tt.col, got, tt.want)
			}
		})
	}
}

func TestFrame_ClearsPreviousFrame(t *testing.T) {
	world, buf, scene := newSceneWorld(engine.NewTestAlien(3, 5, components.BehaviorWall))
	scene.Frame(world)
	if buf.Cell(3, 5) != 'T' {
		t.Fatalf("Expected alien drawn, got %q", buf.Cell(3, 5))
	}

	world.Aliens[0].PrevCol = 6
	world.MoveTank(-3)
	scene.Frame(world)

	if buf.Cell(3, 5) != ' ' {
		t.Error("Expected old alien cell cleared")
	}
	if buf.Cell(19, 20) != ' ' || buf.Cell(19, 17) != constants.TankChar {
		t.Error("Expected tank redrawn at new column only")
	}
	if buf.Refreshes() != 2 {
		t.Errorf("Expected one refresh per frame, got %d", buf.Refreshes())
	}
}

func TestFrame_OffBoardEntitiesSkipped(t *testing.T) {
	world, buf, scene := newSceneWorld()
	idx, _ := world.Bombs.Claim(0, 20, 1)
	world.Bombs.Slots[idx].Grace = 1
	world.Shots.Claim(0, 2)

	scene.Frame(world)

	if buf.Cell(0, 2) == constants.ShotChar {
		t.Error("Expected shot on header row not drawn")
	}
	if _, _, ok := buf.Find(constants.BombChar); ok {
		t.Error("Expected bomb past the bottom not drawn")
	}
}

func TestGameOver(t *testing.T) {
	tests := []struct {
		state engine.State
		text  string
		drawn bool
	}{
		{engine.StateWon, constants.WinText, true},
		{engine.StateLostByBreach, constants.LoseText, true},
		{engine.StateLostByBomb, constants.LoseText, true},
		{engine.StateQuit, "", false},
		{engine.StateRunning, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			buf := NewBuffer(40, 20)
			scene := NewScene(buf)
			board := engine.Board{Width: 40, Height: 20}

			if got := scene.GameOver(tt.state, board); got != tt.drawn {
				t.Fatalf("GameOver drawn = %v, want %v", got, tt.drawn)
			}
			if !tt.drawn {
				if buf.Refreshes() != 0 {
					t.Error("Expected no refresh for non-final state")
				}
				return
			}

			all := strings.Join(buf.Lines(), "\n")
			if !strings.Contains(all, tt.text) {
				t.Errorf("Expected %q on screen", tt.text)
			}
			if !strings.Contains(all, constants.ExitHintText) {
				t.Error("Expected exit hint on screen")
			}
		})
	}
}
