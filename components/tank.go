package components

// TankComponent is the player tank; its row is pinned to the bottom of the board
type TankComponent struct {
	Row, Col int
	Char     rune
}
