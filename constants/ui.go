package constants

// Header Layout (row 0)
const (
	// TitleText is centered on the header row
	TitleText = "--SPACE INVADERS--"

	// ScoreLabel is drawn at ScoreLabelCol
	ScoreLabel    = "SCORE: "
	ScoreLabelCol = 1

	// ScoreCol is where the score value is drawn
	ScoreCol = 8

	// AliensCol is where the remaining alien count is drawn
	AliensCol = 15

	// HelpText is right-aligned on the header row
	HelpText = "m = menu  q = quit"

	// HeaderRow is the row reserved for the header
	HeaderRow = 0
)

// Board Limits
const (
	// MinBoardWidth leaves room for the header help text
	MinBoardWidth = 20

	// MinBoardHeight leaves room for the header, fleet, and tank rows
	MinBoardHeight = 10
)

// Game Over Screen
const (
	WinText      = "YOU WIN!"
	LoseText     = "YOU LOSE!"
	ExitHintText = "PRESS ANY KEY TO EXIT"
)

// Menu Text
const (
	MenuReturnLabel      = "Return to the game"
	MenuExitLabel        = "Exit the game"
	MenuPrompt           = "Enter your option: "
	MenuCurrentFormat    = "Current value: %d"
	MenuNewValuePrompt   = "Enter new value: "
	MenuInvalidValue     = "ERROR: Invalid value"
	MenuInvalidSelection = "ERROR: Invalid selection"

	// MenuPromptRow is the row of the option prompt; messages follow below it
	MenuPromptRow = 8
)
