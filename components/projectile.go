package components

// ShotComponent is a tank projectile slot
type ShotComponent struct {
	Row, Col int
	Active   bool
	Char     rune
}

// BombComponent is an alien bomb slot
type BombComponent struct {
	Row, Col int
	Active   bool
	// Grace is zero on the spawn tick and becomes non-zero on the first step.
	// An unstepped bomb is not drawn so the dropping alien's cell is left alone.
	Grace int
	Char  rune
}
