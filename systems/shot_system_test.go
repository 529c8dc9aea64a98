package systems

import (
	"reflect"
	"testing"

	"github.com/lixenwraith/invaders/components"
	"github.com/lixenwraith/invaders/engine"
)

// TestShotHitScoresReward fires from column 20 at an alien drawn at column 20 on the shot row
func TestShotHitScoresReward(t *testing.T) {
	alien := engine.NewTestAlien(18, 21, components.BehaviorWander)
	alien.PrevCol = 20
	world := engine.NewTestWorld(40, 20, alien)
	world.Tank.Col = 20

	if !world.FireShot() {
		t.Fatal("FireShot refused on empty pool")
	}
	if world.Shots.Slots[0].Row != 18 {
		t.Fatalf("Expected shot on row 18, got %d", world.Shots.Slots[0].Row)
	}

	world.Tick = 3
	NewShotSystem().Update(world)

	if world.Score != 19 {
		t.Errorf("Expected score -1 + 20 = 19, got %d", world.Score)
	}
	if world.Aliens[0].Alive {
		t.Error("Expected alien to be dead")
	}
	if world.AliveAliens != 0 {
		t.Errorf("Expected alive count 0, got %d", world.AliveAliens)
	}
	if world.Shots.Slots[0].Active || world.Shots.Active() != 0 {
		t.Error("Expected shot released after hit")
	}
	if world.Stats.Hits != 1 {
		t.Errorf("Expected 1 hit counted, got %d", world.Stats.Hits)
	}
}

// TestShotMissUsesPreviousColumn verifies the current column alone does not register a hit
func TestShotMissUsesPreviousColumn(t *testing.T) {
	alien := engine.NewTestAlien(18, 20, components.BehaviorWander)
	alien.PrevCol = 19
	world := engine.NewTestWorld(40, 20, alien)
	world.Tank.Col = 20
	world.FireShot()

	NewShotSystem().Update(world)

	if !world.Aliens[0].Alive {
		t.Fatal("Alien at current column should not be hit")
	}
	if s := world.Shots.Slots[0]; !s.Active || s.Row != 17 {
		t.Errorf("Expected shot to climb to row 17, got %+v", s)
	}
}

// TestShotIgnoresDeadAlien verifies a dead alien in the path does not absorb a shot
func TestShotIgnoresDeadAlien(t *testing.T) {
	alien := engine.NewTestAlien(18, 20, components.BehaviorWander)
	alien.Alive = false
	world := engine.NewTestWorld(40, 20, alien)
	world.Tank.Col = 20
	world.FireShot()

	NewShotSystem().Update(world)

	if world.Score != -1 {
		t.Errorf("Expected only the firing cost, got score %d", world.Score)
	}
	if !world.Shots.Slots[0].Active {
		t.Error("Expected shot to keep flying")
	}
}

// TestShotReleasedAtTop verifies a shot is released once it reaches row 0
func TestShotReleasedAtTop(t *testing.T) {
	world := engine.NewTestWorld(40, 20)
	world.Settings.ShotDivisor = 1
	world.FireShot()
	sys := NewShotSystem()

	// Row 18 climbs to 0 in 18 steps, the next step releases it
	for i := 0; i < 18; i++ {
		sys.Update(world)
	}
	if s := world.Shots.Slots[0]; !s.Active || s.Row != 0 {
		t.Fatalf("Expected active shot at row 0, got %+v", s)
	}

	sys.Update(world)
	if world.Shots.Active() != 0 {
		t.Error("Expected shot released at the top boundary")
	}
	if world.Score != -1 {
		t.Errorf("Expected no penalty beyond firing cost, got %d", world.Score)
	}
}

// TestShotOneHitPerShot verifies a shot kills at most one of two stacked aliens
func TestShotOneHitPerShot(t *testing.T) {
	a := engine.NewTestAlien(18, 20, components.BehaviorWander)
	b := engine.NewTestAlien(18, 20, components.BehaviorFollow)
	world := engine.NewTestWorld(40, 20, a, b)
	world.Tank.Col = 20
	world.FireShot()

	NewShotSystem().Update(world)

	if world.AliveAliens != 1 {
		t.Errorf("Expected one alien left, got %d", world.AliveAliens)
	}
	if world.Aliens[0].Alive || !world.Aliens[1].Alive {
		t.Error("Expected the first alien in index order to be hit")
	}
}

// TestShotSystem_IneligibleTickNoop verifies shots are untouched off-cadence
func TestShotSystem_IneligibleTickNoop(t *testing.T) {
	alien := engine.NewTestAlien(18, 20, components.BehaviorWander)
	world := engine.NewTestWorld(40, 20, alien)
	world.Tank.Col = 20
	world.FireShot()
	world.Tick = 4 // divisor 3

	before := world.Shots.Slots
	score := world.Score
	NewShotSystem().Update(world)

	if !reflect.DeepEqual(before, world.Shots.Slots) || world.Score != score || !world.Aliens[0].Alive {
		t.Error("Shot state changed on an ineligible tick")
	}
}
