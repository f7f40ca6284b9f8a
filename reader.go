package nextline

import (
	"io"
	"sync"

	"github.com/google/uuid"

	"github.com/linecast/nextline/internal/constants"
	"github.com/linecast/nextline/internal/dlog"
	"github.com/linecast/nextline/internal/errors"
)

// Reader holds per-descriptor retained buffers across ReadLine calls.
// Readers are independent of each other, so tests and tools can run
// multiple instances side by side without shared state.
//
// Calls on distinct descriptors are safe concurrently. Calls on the same
// descriptor must be serialized by the caller; the retained buffer of a
// slot is exclusively owned by one logical call sequence.
type Reader struct {
	id        string
	chunkSize int
	maxFd     int
	readFn    ReadFunc

	mu    sync.Mutex
	slots map[int]*slot
}

// Option configures a Reader.
type Option func(*Reader)

// WithChunkSize sets the size of one bounded read. The chunk size only
// affects how many reads a call performs, never the returned lines.
// Out-of-range values are ignored.
func WithChunkSize(n int) Option {
	return func(r *Reader) {
		if n >= constants.MinChunkSize && n <= constants.MaxChunkSize {
			r.chunkSize = n
		}
	}
}

// WithMaxDescriptors sets the highest accepted descriptor number.
func WithMaxDescriptors(n int) Option {
	return func(r *Reader) {
		if n > 0 {
			r.maxFd = n
		}
	}
}

// WithReadFunc replaces the raw read primitive for all descriptors of
// this Reader. The default reads from the real file descriptor.
func WithReadFunc(fn ReadFunc) Option {
	return func(r *Reader) {
		if fn != nil {
			r.readFn = fn
		}
	}
}

// New returns a Reader with an empty descriptor table.
func New(opts ...Option) *Reader {
	r := &Reader{
		id:        uuid.New().String(),
		chunkSize: constants.DefaultChunkSize,
		maxFd:     constants.DefaultMaxDescriptors,
		readFn:    rawRead,
		slots:     make(map[int]*slot),
	}
	for _, opt := range opts {
		opt(r)
	}
	dlog.WithField("reader", r.id).WithField("chunkSize", r.chunkSize).
		Debug("Created line reader")
	return r
}

// ReadLine returns the next newline-delimited line from fd.
//
// It returns ("", io.EOF) once the stream is exhausted, and keeps
// returning io.EOF on that descriptor without re-reading consumed bytes.
// Any other error wraps a sentinel from the errors package: an
// out-of-range descriptor wraps ErrInvalidDescriptor and leaves all state
// untouched, a failing read wraps ErrReadFailed and clears the slot so
// the next call on that descriptor starts fresh.
func (r *Reader) ReadLine(fd int) (string, error) {
	if err := r.checkDescriptor(fd); err != nil {
		return "", err
	}
	s := r.slot(fd)
	if s.done {
		return "", io.EOF
	}

	// A retained newline means no read is needed at all.
	if line, ok := s.extractLine(); ok {
		return line, nil
	}

	for !s.sawEOF {
		n, err := s.read(r.readFn, fd, r.chunkSize)
		if n > 0 {
			s.retain(n)
		}
		if err != nil {
			if err == io.EOF {
				s.sawEOF = true
				break
			}
			r.drop(fd)
			return "", errors.Wrapf(errors.ErrReadFailed,
				"descriptor %d: %v", fd, err)
		}
		if n == 0 {
			// read(2) reports end-of-stream as zero bytes.
			s.sawEOF = true
			break
		}
		if s.hasNewline() {
			break
		}
	}

	if line, ok := s.extractLine(); ok {
		return line, nil
	}

	// Stream exhausted. Whatever is retained is the final, unterminated
	// line; with nothing retained the descriptor is at end-of-stream.
	if line, ok := s.takeRemainder(); ok {
		s.finish()
		return line, nil
	}
	s.finish()
	return "", io.EOF
}

// Attach routes fd through src instead of raw descriptor reads. Any
// previously retained state for fd is released. This is how compressed
// and in-memory streams flow through the descriptor-keyed table.
func (r *Reader) Attach(fd int, src io.Reader) error {
	if err := r.checkDescriptor(fd); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if old, ok := r.slots[fd]; ok {
		old.release()
	}
	r.slots[fd] = &slot{src: src}
	return nil
}

// Forget releases all state retained for fd, for callers that closed the
// descriptor or want to reuse its number for another stream.
func (r *Reader) Forget(fd int) {
	r.drop(fd)
}

// Reset clears the end-of-stream marks for fd so that reading continues
// when the underlying stream grew, as happens while following a file.
// Retained bytes stay retained.
func (r *Reader) Reset(fd int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.slots[fd]; ok {
		s.sawEOF = false
		s.done = false
	}
}

func (r *Reader) checkDescriptor(fd int) error {
	if fd < 0 || fd >= r.maxFd {
		return errors.Wrapf(errors.ErrInvalidDescriptor,
			"descriptor %d out of range [0,%d)", fd, r.maxFd)
	}
	return nil
}

// slot returns the retained state for fd, lazily creating an empty one.
func (r *Reader) slot(fd int) *slot {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.slots[fd]
	if !ok {
		s = &slot{}
		r.slots[fd] = s
	}
	return s
}

func (r *Reader) drop(fd int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.slots[fd]; ok {
		s.release()
		delete(r.slots, fd)
	}
}
