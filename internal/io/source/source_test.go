package source

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/DataDog/zstd"

	"github.com/linecast/nextline"
	"github.com/linecast/nextline/internal/errors"
	"github.com/linecast/nextline/internal/testutil"
)

func readAll(t *testing.T, r *nextline.Reader, fd int) []string {
	t.Helper()
	var lines []string
	for {
		line, err := r.ReadLine(fd)
		if err == io.EOF {
			return lines
		}
		testutil.AssertNoError(t, err)
		lines = append(lines, line)
	}
}

func TestOpenPlainFile(t *testing.T) {
	path := testutil.TempFile(t, "plain one\nplain two\n")

	s, err := Open(path)
	testutil.AssertNoError(t, err)
	defer s.Close()

	r := nextline.New()
	testutil.AssertNoError(t, s.Attach(r))

	lines := readAll(t, r, s.Fd())
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	testutil.AssertEqual(t, "plain one\n", lines[0])
	testutil.AssertEqual(t, "plain two\n", lines[1])
}

func TestOpenZstdFile(t *testing.T) {
	dir := testutil.TempDir(t)
	path := filepath.Join(dir, "test.log.zst")

	f, err := os.Create(path)
	testutil.AssertNoError(t, err)
	zw := zstd.NewWriter(f)
	_, err = zw.Write([]byte("compressed one\ncompressed two\nunterminated"))
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, zw.Close())
	testutil.AssertNoError(t, f.Close())

	s, err := Open(path)
	testutil.AssertNoError(t, err)
	defer s.Close()

	r := nextline.New()
	testutil.AssertNoError(t, s.Attach(r))

	lines := readAll(t, r, s.Fd())
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	testutil.AssertEqual(t, "compressed one\n", lines[0])
	testutil.AssertEqual(t, "compressed two\n", lines[1])
	testutil.AssertEqual(t, "unterminated", lines[2])
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open("/no/such/file.log")
	if !errors.Is(err, errors.ErrFileNotFound) {
		t.Errorf("expected ErrFileNotFound, got %v", err)
	}
}

func TestOpenStdin(t *testing.T) {
	s, err := Open(StdinName)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, "stdin", s.Name())
	testutil.AssertEqual(t, 0, s.Fd())
	// Closing a stdin source must not close the real stdin.
	testutil.AssertNoError(t, s.Close())
	if _, err := os.Stdin.Stat(); err != nil {
		t.Errorf("stdin unexpectedly closed: %v", err)
	}
}
