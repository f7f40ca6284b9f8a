// Package nextline reads newline-delimited lines from file descriptors.
//
// A Reader keeps per-descriptor retained buffers across calls: each call
// to ReadLine appends bounded chunks read from the descriptor until a
// newline shows up or the stream ends, returns the next complete line and
// keeps everything past the line boundary for the following call.
//
// Returned lines include the trailing newline. Only a final line that the
// stream did not terminate comes back without one, so concatenating all
// returned lines reproduces the stream byte for byte.
package nextline

import (
	"golang.org/x/sys/unix"
)

// ReadFunc is the raw read primitive used to fill a descriptor's retained
// buffer. It follows read(2) semantics: it reads up to len(p) bytes into p,
// returns the number of bytes read, and reports end-of-stream as (0, nil)
// or (0, io.EOF).
type ReadFunc func(fd int, p []byte) (int, error)

func rawRead(fd int, p []byte) (int, error) {
	return unix.Read(fd, p)
}

// defaultReader serves the package-level convenience functions.
var defaultReader = New()

// ReadLine reads the next line from fd using the package default Reader.
func ReadLine(fd int) (string, error) {
	return defaultReader.ReadLine(fd)
}

// Forget releases any state the package default Reader retains for fd.
func Forget(fd int) {
	defaultReader.Forget(fd)
}
