// Package follow implements tail -f style following of a single growing
// file on top of the nextline reader. After draining the file to
// end-of-stream it waits for filesystem events, with a periodic poll as
// fallback for filesystems that deliver no events, then resets the
// descriptor slot and drains again.
package follow

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/tevino/abool"

	"github.com/linecast/nextline"
	"github.com/linecast/nextline/internal/constants"
	"github.com/linecast/nextline/internal/dlog"
	"github.com/linecast/nextline/internal/errors"
)

// LineFunc receives one complete line, including its trailing newline.
// Returning an error stops the follower.
type LineFunc func(line string) error

// Follower tails one file path.
type Follower struct {
	path      string
	fromStart bool
	reader    *nextline.Reader
	running   *abool.AtomicBool

	// pending holds an unterminated trailing line. It is only emitted
	// once its newline arrives, or when the follower shuts down, so a
	// line the writer is still appending to never comes out split.
	pending string
}

// New returns a follower for path. With fromStart the existing content is
// emitted first, otherwise following begins at the current end of file.
func New(path string, fromStart bool, opts ...nextline.Option) *Follower {
	return &Follower{
		path:      path,
		fromStart: fromStart,
		reader:    nextline.New(opts...),
		running:   abool.New(),
	}
}

// Stop makes Start return after the current drain pass.
func (f *Follower) Stop() {
	f.running.UnSet()
}

// Start follows the file until the context is canceled, Stop is called,
// the file disappears or fn returns an error.
func (f *Follower) Start(ctx context.Context, fn LineFunc) error {
	file, err := os.Open(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Wrap(errors.ErrFileNotFound, f.path)
		}
		return errors.Wrapf(err, "unable to open %s", f.path)
	}
	defer file.Close()

	fd := int(file.Fd())
	defer f.reader.Forget(fd)

	if !f.fromStart {
		if _, err := file.Seek(0, io.SeekEnd); err != nil {
			return errors.Wrapf(err, "unable to seek %s", f.path)
		}
	}

	watcher, err := fsnotify.NewWatcher()
	if err == nil {
		defer watcher.Close()
		if werr := watcher.Add(f.path); werr != nil {
			dlog.WithField("path", f.path).
				Warn("Unable to watch file, falling back to polling: ", werr)
		}
	} else {
		dlog.Warn("Unable to create watcher, falling back to polling: ", err)
		watcher = &fsnotify.Watcher{}
	}

	f.running.Set()
	lastSize := f.size(file)

	for f.running.IsSet() {
		if err := f.drain(fd, fn); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			f.running.UnSet()
		case event, ok := <-watcher.Events:
			if ok && event.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
				dlog.WithField("path", f.path).Info("Followed file disappeared")
				f.running.UnSet()
			}
		case werr, ok := <-watcher.Errors:
			if ok {
				dlog.WithField("path", f.path).Warn("Watcher error: ", werr)
			}
		case <-time.After(constants.FollowPollInterval):
		}

		if size := f.size(file); size < lastSize {
			dlog.WithField("path", f.path).Info("File truncated, restarting from offset 0")
			if _, err := file.Seek(0, io.SeekStart); err != nil {
				return errors.Wrapf(err, "unable to seek %s", f.path)
			}
			f.reader.Forget(fd)
			f.pending = ""
			lastSize = 0
		} else {
			lastSize = size
		}
		f.reader.Reset(fd)
	}

	// Hand over a trailing unterminated line before shutting down.
	if f.pending != "" {
		line := f.pending
		f.pending = ""
		return fn(line)
	}
	return nil
}

// drain reads lines until end-of-stream, holding back an unterminated
// trailing line.
func (f *Follower) drain(fd int, fn LineFunc) error {
	for f.running.IsSet() {
		line, err := f.reader.ReadLine(fd)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if f.pending != "" {
			line = f.pending + line
			f.pending = ""
		}
		if !strings.HasSuffix(line, "\n") {
			f.pending = line
			continue
		}
		if err := fn(line); err != nil {
			return err
		}
	}
	return nil
}

func (f *Follower) size(file *os.File) int64 {
	info, err := file.Stat()
	if err != nil {
		return 0
	}
	return info.Size()
}
