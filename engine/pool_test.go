package engine

import (
	"testing"

	"github.com/lixenwraith/invaders/constants"
)

func TestShotPool_ClaimUntilFull(t *testing.T) {
	pool := NewShotPool()

	for i := 0; i < constants.MaxShots; i++ {
		idx, ok := pool.Claim(10, i)
		if !ok {
			t.Fatalf("Claim %d failed on a pool with free slots", i)
		}
		if idx != i {
			t.Errorf("Expected lowest free slot %d, got %d", i, idx)
		}
	}

	if !pool.Full() {
		t.Error("Expected pool to be full")
	}
	if idx, ok := pool.Claim(10, 0); ok || idx != -1 {
		t.Errorf("Expected claim on full pool to fail, got (%d, %v)", idx, ok)
	}
	if pool.Active() != constants.MaxShots {
		t.Errorf("Expected %d active shots, got %d", constants.MaxShots, pool.Active())
	}
}

func TestShotPool_ReleaseReusesSlot(t *testing.T) {
	pool := NewShotPool()
	pool.Claim(5, 0)
	pool.Claim(5, 1)
	pool.Claim(5, 2)

	pool.Release(1)
	pool.Release(1) // double release must not corrupt the count

	if pool.Active() != 2 {
		t.Fatalf("Expected 2 active after release, got %d", pool.Active())
	}

	idx, ok := pool.Claim(7, 9)
	if !ok || idx != 1 {
		t.Fatalf("Expected slot 1 to be reused, got (%d, %v)", idx, ok)
	}
	if s := pool.Slots[1]; s.Row != 7 || s.Col != 9 || s.Char != constants.ShotChar {
		t.Errorf("Unexpected reused slot state: %+v", s)
	}
}

func TestBombPool_ClaimFromCursor(t *testing.T) {
	pool := NewBombPool(4)

	first, _ := pool.Claim(0, 1, 1)
	second, _ := pool.Claim(first, 1, 2)
	if first != 0 || second != 1 {
		t.Fatalf("Expected slots 0 and 1, got %d and %d", first, second)
	}

	pool.Release(0)

	// Scanning forward from the last allocation skips the freed low slot
	third, ok := pool.Claim(second, 1, 3)
	if !ok || third != 2 {
		t.Errorf("Expected forward scan to claim slot 2, got (%d, %v)", third, ok)
	}

	// A fresh scan from zero finds the freed slot
	fourth, ok := pool.Claim(0, 1, 4)
	if !ok || fourth != 0 {
		t.Errorf("Expected scan from 0 to claim slot 0, got (%d, %v)", fourth, ok)
	}
}

func TestBombPool_Exhaustion(t *testing.T) {
	pool := NewBombPool(2)
	pool.Claim(0, 0, 0)
	pool.Claim(0, 0, 1)

	if idx, ok := pool.Claim(0, 0, 2); ok || idx != -1 {
		t.Errorf("Expected exhausted pool to refuse claim, got (%d, %v)", idx, ok)
	}
	if pool.Active() != pool.Cap() {
		t.Errorf("Active %d exceeds or misses capacity %d", pool.Active(), pool.Cap())
	}
}

func TestBombPool_ClaimResetsGrace(t *testing.T) {
	pool := NewBombPool(1)
	idx, _ := pool.Claim(0, 3, 3)
	pool.Slots[idx].Grace = 1
	pool.Release(idx)

	idx, _ = pool.Claim(0, 4, 4)
	if pool.Slots[idx].Grace != 0 {
		t.Errorf("Expected reclaimed bomb to start with zero grace, got %d", pool.Slots[idx].Grace)
	}
}
