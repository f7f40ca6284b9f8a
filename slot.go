package nextline

import (
	"bytes"
	"io"

	"github.com/linecast/nextline/internal/io/pool"
)

// slot is the per-descriptor state: the bytes read past the last returned
// line boundary, the reusable chunk buffer and the end-of-stream marks.
type slot struct {
	retained *bytes.Buffer
	chunk    []byte
	src      io.Reader // attached source, nil means raw descriptor reads
	sawEOF   bool      // underlying stream is exhausted
	done     bool      // end-of-stream already delivered to the caller
}

// read fills the chunk buffer from the attached source or the raw
// descriptor. The chunk buffer is allocated once and reused per slot.
func (s *slot) read(fn ReadFunc, fd int, chunkSize int) (int, error) {
	if s.chunk == nil {
		s.chunk = make([]byte, chunkSize)
	}
	if s.src != nil {
		return s.src.Read(s.chunk)
	}
	return fn(fd, s.chunk)
}

// retain appends the first n chunk bytes to the retained buffer.
func (s *slot) retain(n int) {
	if s.retained == nil {
		s.retained = pool.GetBytesBuffer()
	}
	s.retained.Write(s.chunk[:n])
}

func (s *slot) hasNewline() bool {
	return s.retained != nil && bytes.IndexByte(s.retained.Bytes(), '\n') >= 0
}

// extractLine splits the retained buffer at the first newline and returns
// the line including the newline. Everything after the boundary stays
// retained. Reports false when no newline is retained.
func (s *slot) extractLine() (string, bool) {
	if s.retained == nil {
		return "", false
	}
	b := s.retained.Bytes()
	i := bytes.IndexByte(b, '\n')
	if i < 0 {
		return "", false
	}
	line := string(b[:i+1])
	rest := b[i+1:]
	s.retained.Reset()
	s.retained.Write(rest)
	return line, true
}

// takeRemainder returns all retained bytes as the final, unterminated
// line. Reports false when nothing is retained.
func (s *slot) takeRemainder() (string, bool) {
	if s.retained == nil || s.retained.Len() == 0 {
		return "", false
	}
	line := s.retained.String()
	s.retained.Reset()
	return line, true
}

// finish marks the slot terminal and releases its buffers. Further calls
// keep signaling end-of-stream without touching the descriptor.
func (s *slot) finish() {
	s.done = true
	s.release()
}

func (s *slot) release() {
	pool.RecycleBytesBuffer(s.retained)
	s.retained = nil
	s.chunk = nil
}
