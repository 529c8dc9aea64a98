package constants

// --- Tank ---
const (
	// TankChar is the glyph of the player tank
	TankChar = '^'
)

// --- Shots ---
const (
	// ShotChar is the glyph of a tank shot
	ShotChar = '*'

	// MaxShots is the fixed size of the shot pool
	MaxShots = 3
)

// --- Bombs ---
const (
	// BombChar is the glyph of an alien bomb
	BombChar = 'o'

	// DefaultBombCapacity is the default size of the shared bomb pool
	DefaultBombCapacity = 1000

	// MaxBombCapacity bounds the configurable bomb pool
	MaxBombCapacity = 100000
)

// --- Fleet ---
const (
	// DefaultAlienCount is the number of aliens created at game start
	DefaultAlienCount = 9

	// DefaultAlienRows is the number of rows the fleet is laid out in
	DefaultAlienRows = 3

	// MaxAlienCount bounds the configurable fleet size
	MaxAlienCount = 100

	// AlienRowSpacing is the vertical gap between fleet rows; fleet row r sits at (r+1)*AlienRowSpacing
	AlienRowSpacing = 2

	// AlienColumnSpacing is the horizontal gap between aliens in a row
	AlienColumnSpacing = 5
)

// Alien glyphs indexed by behavior: Wander, Follow, Dodge, Wall
var AlienChars = [4]rune{'#', 'V', '+', 'T'}
