package input

import (
	"context"
	"errors"
	"io"
	"testing"
)

func TestScript_KeysInOrder(t *testing.T) {
	s := NewScript(Press(KeyLeft), Press(KeyRight)).Keys(FromRune('q'))

	for _, want := range []KeyCode{KeyLeft, KeyRight, KeyQuit} {
		k, ok := s.PollKey()
		if !ok || k.Code != want {
			t.Fatalf("Expected %s, got %+v, %v", want, k, ok)
		}
	}
	if _, ok := s.PollKey(); ok {
		t.Error("Expected exhausted script to yield nothing")
	}
	if s.Polls() != 4 {
		t.Errorf("Expected 4 polls, got %d", s.Polls())
	}
}

func TestScript_Lines(t *testing.T) {
	s := NewScript().Lines("1", "20000")

	var echoed string
	line, err := s.ReadLine(context.Background(), func(p string) { echoed = p })
	if err != nil || line != "1" || echoed != "1" {
		t.Errorf("Unexpected first line %q echo %q err %v", line, echoed, err)
	}
	if _, lines := s.Pending(); lines != 1 {
		t.Errorf("Expected one pending line, got %d", lines)
	}

	s.ReadLine(context.Background(), nil)
	if _, err := s.ReadLine(context.Background(), nil); !errors.Is(err, io.EOF) {
		t.Errorf("Expected io.EOF, got %v", err)
	}
}

func TestScript_ReadLineCancelled(t *testing.T) {
	s := NewScript().Lines("1")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.ReadLine(ctx, nil); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if _, lines := s.Pending(); lines != 1 {
		t.Error("Expected cancelled read to leave the line queued")
	}
}
