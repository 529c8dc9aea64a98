package engine

import (
	"github.com/lixenwraith/invaders/components"
	"github.com/lixenwraith/invaders/constants"
)

// ShotPool is the tank's fixed set of projectile slots
type ShotPool struct {
	Slots  [constants.MaxShots]components.ShotComponent
	active int
}

// NewShotPool creates an empty shot pool
func NewShotPool() *ShotPool {
	p := &ShotPool{}
	for i := range p.Slots {
		p.Slots[i].Char = constants.ShotChar
	}
	return p
}

// Active returns the number of claimed slots
func (p *ShotPool) Active() int {
	return p.active
}

// Full reports whether every slot is in flight
func (p *ShotPool) Full() bool {
	return p.active >= len(p.Slots)
}

// Claim activates the lowest free slot at (row, col).
// Returns -1, false when all slots are in use.
func (p *ShotPool) Claim(row, col int) (int, bool) {
	for i := range p.Slots {
		s := &p.Slots[i]
		if !s.Active {
			s.Active = true
			s.Row = row
			s.Col = col
			p.active++
			return i, true
		}
	}
	return -1, false
}

// Release frees a slot; releasing an inactive slot is a no-op
func (p *ShotPool) Release(i int) {
	if i < 0 || i >= len(p.Slots) || !p.Slots[i].Active {
		return
	}
	p.Slots[i].Active = false
	p.active--
}

// BombPool is the bomb arena shared by every alien
type BombPool struct {
	Slots  []components.BombComponent
	active int
}

// NewBombPool creates an empty pool with a fixed capacity
func NewBombPool(capacity int) *BombPool {
	p := &BombPool{Slots: make([]components.BombComponent, capacity)}
	for i := range p.Slots {
		p.Slots[i].Char = constants.BombChar
	}
	return p
}

// Cap returns the fixed capacity
func (p *BombPool) Cap() int {
	return len(p.Slots)
}

// Active returns the number of bombs in flight
func (p *BombPool) Active() int {
	return p.active
}

// Claim activates the first free slot at or after from, placing it at (row, col).
// Returns the claimed index, or -1, false when no slot at or after from is free.
func (p *BombPool) Claim(from, row, col int) (int, bool) {
	for i := max(from, 0); i < len(p.Slots); i++ {
		b := &p.Slots[i]
		if !b.Active {
			b.Active = true
			b.Row = row
			b.Col = col
			b.Grace = 0
			p.active++
			return i, true
		}
	}
	return -1, false
}

// Release frees a slot; releasing an inactive slot is a no-op
func (p *BombPool) Release(i int) {
	if i < 0 || i >= len(p.Slots) || !p.Slots[i].Active {
		return
	}
	p.Slots[i].Active = false
	p.Slots[i].Grace = 0
	p.active--
}
