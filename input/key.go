package input

import (
	"context"
	"errors"
)

// KeyCode discriminates what a key press means to the game
type KeyCode uint8

const (
	KeyNone KeyCode = iota
	KeyQuit
	KeyLeft
	KeyRight
	KeyFire
	KeyMenu
	KeyEnter
	KeyBackspace
	KeyRune // Any other printable character, payload in Key.Rune
)

// Key is one decoded key press.
// Rune carries the typed character for printable keys, including bound ones ('q', ' ', 'm'),
// so line editing sees the literal text; it is zero for control keys.
type Key struct {
	Code KeyCode
	Rune rune
}

// Press returns a control key with no character payload
func Press(code KeyCode) Key {
	return Key{Code: code}
}

// Type returns the keys produced by typing s
func Type(s string) []Key {
	keys := make([]Key, 0, len(s))
	for _, r := range s {
		keys = append(keys, FromRune(r))
	}
	return keys
}

// ErrInterrupted is returned by ReadLine when the user presses the interrupt key
var ErrInterrupted = errors.New("input interrupted")

// Source is the keyboard reader the game polls every tick
type Source interface {
	// PollKey returns the next pending key without blocking
	PollKey() (Key, bool)
	// ReadLine blocks until a full line is entered; echo receives the partial line after each edit
	ReadLine(ctx context.Context, echo func(string)) (string, error)
}

func (c KeyCode) String() string {
	switch c {
	case KeyQuit:
		return "quit"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyFire:
		return "fire"
	case KeyMenu:
		return "menu"
	case KeyEnter:
		return "enter"
	case KeyBackspace:
		return "backspace"
	case KeyRune:
		return "rune"
	default:
		return "none"
	}
}
