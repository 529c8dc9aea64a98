package input

import (
	"context"
	"io"
	"log"
)

// ChanSource is a Source fed from a key channel.
// A single producer pushes keys; the game loop is the only consumer.
type ChanSource struct {
	keys chan Key
}

// NewChanSource creates a source buffering up to size unread keys
func NewChanSource(size int) *ChanSource {
	return &ChanSource{keys: make(chan Key, size)}
}

// Push queues a key without blocking; keys arriving while the buffer is full are dropped
func (s *ChanSource) Push(k Key) bool {
	select {
	case s.keys <- k:
		return true
	default:
		log.Printf("input: buffer full, dropped %s key", k.Code)
		return false
	}
}

// Close marks the end of input; only the producer may call it
func (s *ChanSource) Close() {
	close(s.keys)
}

func (s *ChanSource) PollKey() (Key, bool) {
	select {
	case k, ok := <-s.keys:
		return k, ok
	default:
		return Key{}, false
	}
}

func (s *ChanSource) ReadLine(ctx context.Context, echo func(string)) (string, error) {
	var line []rune
	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case k, ok := <-s.keys:
			if !ok {
				return "", io.EOF
			}
			switch {
			case k.Code == KeyEnter:
				return string(line), nil
			case k.Code == KeyBackspace:
				if len(line) == 0 {
					continue
				}
				line = line[:len(line)-1]
			case k.Code == KeyQuit && k.Rune == 0:
				return "", ErrInterrupted
			case k.Rune != 0:
				line = append(line, k.Rune)
			default:
				continue
			}
			if echo != nil {
				echo(string(line))
			}
		}
	}
}
