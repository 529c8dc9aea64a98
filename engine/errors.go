package engine

import "errors"

var (
	// ErrInvalidSetting reports a setting value outside its accepted range
	ErrInvalidSetting = errors.New("invalid setting")

	// ErrOutOfBounds reports an entity placed outside the board
	ErrOutOfBounds = errors.New("out of bounds")

	// ErrBoardTooSmall reports a terminal smaller than the playable minimum
	ErrBoardTooSmall = errors.New("board too small")
)
