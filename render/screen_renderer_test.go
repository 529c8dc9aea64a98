package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/invaders/constants"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func TestScreenRenderer_DrawsStyledGlyphs(t *testing.T) {
	screen := newSimScreen(t, 20, 5)
	r := NewScreenRenderer(screen)

	r.MoveCursor(4, 3)
	r.DrawChar(constants.TankChar)
	r.DrawText("ok")
	r.Refresh()

	mainc, _, style, _ := screen.GetContent(3, 4)
	if mainc != constants.TankChar {
		t.Errorf("Expected tank glyph, got %q", mainc)
	}
	fg, _, _ := style.Decompose()
	if fg != tcell.ColorLime {
		t.Errorf("Expected tank foreground lime, got %v", fg)
	}

	if c, _, _, _ := screen.GetContent(4, 4); c != 'o' {
		t.Errorf("Expected text after glyph, got %q", c)
	}
	if c, _, _, _ := screen.GetContent(5, 4); c != 'k' {
		t.Errorf("Expected text after glyph, got %q", c)
	}
}

func TestScreenRenderer_ClearLine(t *testing.T) {
	screen := newSimScreen(t, 10, 3)
	r := NewScreenRenderer(screen)

	r.MoveCursor(1, 0)
	r.DrawText("abcdef")
	r.ClearLine(1)
	r.DrawChar('x')
	r.Refresh()

	if c, _, _, _ := screen.GetContent(0, 1); c != 'x' {
		t.Errorf("Expected cursor reset to line start, got %q", c)
	}
	if c, _, _, _ := screen.GetContent(1, 1); c != ' ' {
		t.Errorf("Expected line cleared, got %q", c)
	}
}

func TestScreenRenderer_SizeAndClipping(t *testing.T) {
	screen := newSimScreen(t, 8, 4)
	r := NewScreenRenderer(screen)

	if w, h := r.Size(); w != 8 || h != 4 {
		t.Fatalf("Expected 8x4, got %dx%d", w, h)
	}

	r.MoveCursor(0, 6)
	r.DrawText("xyz")
	r.MoveCursor(9, 9)
	r.DrawChar('q')
	r.Refresh()

	if c, _, _, _ := screen.GetContent(7, 0); c != 'y' {
		t.Errorf("Expected last visible char, got %q", c)
	}
}
