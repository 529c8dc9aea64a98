package render

import "sync"

// SyncBuffer is a Buffer safe for one drawing goroutine and concurrent readers.
// Readers only ever see published frames.
type SyncBuffer struct {
	mu  sync.Mutex
	buf *Buffer
}

// NewSyncBuffer creates a guarded buffer with the given dimensions
func NewSyncBuffer(width, height int) *SyncBuffer {
	return &SyncBuffer{buf: NewBuffer(width, height)}
}

func (s *SyncBuffer) MoveCursor(row, col int) {
	s.mu.Lock()
	s.buf.MoveCursor(row, col)
	s.mu.Unlock()
}

func (s *SyncBuffer) DrawChar(ch rune) {
	s.mu.Lock()
	s.buf.DrawChar(ch)
	s.mu.Unlock()
}

func (s *SyncBuffer) DrawText(str string) {
	s.mu.Lock()
	s.buf.DrawText(str)
	s.mu.Unlock()
}

func (s *SyncBuffer) ClearLine(row int) {
	s.mu.Lock()
	s.buf.ClearLine(row)
	s.mu.Unlock()
}

func (s *SyncBuffer) Clear() {
	s.mu.Lock()
	s.buf.Clear()
	s.mu.Unlock()
}

func (s *SyncBuffer) Refresh() {
	s.mu.Lock()
	s.buf.Refresh()
	s.mu.Unlock()
}

func (s *SyncBuffer) Size() (int, int) {
	return s.buf.Size()
}

// Snapshot copies the published frame, one rune slice per row
func (s *SyncBuffer) Snapshot() [][]rune {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := make([][]rune, len(s.buf.front))
	for y, line := range s.buf.front {
		rows[y] = append([]rune(nil), line...)
	}
	return rows
}
