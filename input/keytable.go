package input

import "github.com/gdamore/tcell/v2"

// RuneBindings maps printable characters to game keys
var RuneBindings = map[rune]KeyCode{
	'q': KeyQuit,
	' ': KeyFire,
	'm': KeyMenu,
}

// SpecialKeys maps tcell control keys to game keys
var SpecialKeys = map[tcell.Key]KeyCode{
	tcell.KeyLeft:       KeyLeft,
	tcell.KeyRight:      KeyRight,
	tcell.KeyEnter:      KeyEnter,
	tcell.KeyBackspace:  KeyBackspace,
	tcell.KeyBackspace2: KeyBackspace,
	tcell.KeyCtrlC:      KeyQuit,
}

// FromRune decodes a printable character
func FromRune(r rune) Key {
	if code, ok := RuneBindings[r]; ok {
		return Key{Code: code, Rune: r}
	}
	return Key{Code: KeyRune, Rune: r}
}

// FromEvent decodes a tcell key event; unbound control keys are ignored
func FromEvent(ev *tcell.EventKey) (Key, bool) {
	if ev.Key() == tcell.KeyRune {
		return FromRune(ev.Rune()), true
	}
	if code, ok := SpecialKeys[ev.Key()]; ok {
		return Key{Code: code}, true
	}
	return Key{}, false
}
