package components

// AlienComponent is one member of the fleet.
// The fleet slice never shrinks; a destroyed alien keeps its slot with Alive=false.
type AlienComponent struct {
	Row, Col         int       // Current cell
	PrevRow, PrevCol int       // Cell at the last redraw, used for blanking and hit tests
	Alive            bool      //
	Behavior         Behavior  // Current behavior
	Ticks            int       // Alien ticks spent in the current behavior
	Dir              Direction // Horizontal heading
	Char             rune      // Glyph, follows Behavior
}

// SetBehavior switches behavior and resets the fatigue counter
func (a *AlienComponent) SetBehavior(b Behavior) {
	a.Behavior = b
	a.Ticks = 0
	a.Char = b.Char()
}
