package input

import (
	"context"
	"io"
)

// Script replays queued keys and lines, for tests and unattended runs
type Script struct {
	keys  []Key
	lines []string
	polls int
}

// NewScript creates a script that yields keys in order
func NewScript(keys ...Key) *Script {
	return &Script{keys: keys}
}

// Keys appends keys to the queue
func (s *Script) Keys(keys ...Key) *Script {
	s.keys = append(s.keys, keys...)
	return s
}

// Lines appends lines returned by ReadLine
func (s *Script) Lines(lines ...string) *Script {
	s.lines = append(s.lines, lines...)
	return s
}

// Polls returns how many times PollKey was called
func (s *Script) Polls() int {
	return s.polls
}

// Pending returns the number of unread keys and lines
func (s *Script) Pending() (keys, lines int) {
	return len(s.keys), len(s.lines)
}

func (s *Script) PollKey() (Key, bool) {
	s.polls++
	if len(s.keys) == 0 {
		return Key{}, false
	}
	k := s.keys[0]
	s.keys = s.keys[1:]
	return k, true
}

// ReadLine returns the next queued line, or io.EOF once they run out
func (s *Script) ReadLine(ctx context.Context, echo func(string)) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(s.lines) == 0 {
		return "", io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	if echo != nil {
		echo(line)
	}
	return line, nil
}
