package input

import (
	"github.com/gdamore/tcell/v2"
)

// ScreenSource reads keys from a tcell screen
type ScreenSource struct {
	*ChanSource
}

// NewScreenSource starts pumping key events from screen.
// The pump ends when the screen is finalised.
func NewScreenSource(screen tcell.Screen) *ScreenSource {
	s := &ScreenSource{ChanSource: NewChanSource(256)}
	go s.pump(screen)
	return s
}

func (s *ScreenSource) pump(screen tcell.Screen) {
	defer s.Close()
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if k, ok := FromEvent(ev); ok {
				s.Push(k)
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}
