// Package source opens the byte streams behind the nextline commands. A
// source is always descriptor-backed; zstd-compressed files additionally
// carry a decompressing stream which gets attached to the descriptor slot
// of a reader, so compressed and plain files flow through the same
// line-extraction path.
package source

import (
	"io"
	"os"
	"strings"

	"github.com/DataDog/zstd"

	"github.com/linecast/nextline"
	"github.com/linecast/nextline/internal/dlog"
	"github.com/linecast/nextline/internal/errors"
)

// StdinName is the path argument meaning standard input.
const StdinName = "-"

// ZstdSuffix marks files that are transparently decompressed.
const ZstdSuffix = ".zst"

// Source is one open byte stream.
type Source struct {
	name   string
	file   *os.File
	stream io.ReadCloser // non-nil for compressed files
	stdin  bool
}

// Open opens path for line reading. The path "-" means standard input,
// a ".zst" suffix enables transparent zstd decompression.
func Open(path string) (*Source, error) {
	if path == StdinName {
		return &Source{name: "stdin", file: os.Stdin, stdin: true}, nil
	}

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrFileNotFound, path)
		}
		return nil, errors.Wrapf(err, "unable to open %s", path)
	}

	s := &Source{name: path, file: file}
	if strings.HasSuffix(path, ZstdSuffix) {
		dlog.WithField("path", path).Debug("Decompressing zstd stream")
		s.stream = zstd.NewReader(file)
	}
	return s, nil
}

// Name returns the display name of the source.
func (s *Source) Name() string {
	return s.name
}

// Fd returns the descriptor number backing the source.
func (s *Source) Fd() int {
	return int(s.file.Fd())
}

// Attach wires the source into the reader: compressed sources route their
// descriptor slot through the decompressor, plain sources read raw.
func (s *Source) Attach(r *nextline.Reader) error {
	if s.stream == nil {
		return nil
	}
	return r.Attach(s.Fd(), s.stream)
}

// Close releases the stream layer and the underlying file. Standard input
// stays open.
func (s *Source) Close() error {
	var err error
	if s.stream != nil {
		err = s.stream.Close()
	}
	if s.stdin {
		return err
	}
	if cerr := s.file.Close(); err == nil {
		err = cerr
	}
	return err
}
