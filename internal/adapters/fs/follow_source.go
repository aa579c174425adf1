package fs

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/prt-labs/prtdecode/internal/ports"
)

// FollowSource tails a file that a producer is still appending to, in the
// manner of tail -f. It keeps a partial trailing line buffered until the
// terminator arrives, wakes up on fsnotify events for the file, and reports
// ErrNoLine after a quiet period so the caller can apply its own polling
// and idle policy. Removal or rename of the file ends the stream: the
// remaining buffered data is drained, then ErrExhausted is returned.
//
// If the watcher cannot be created the source degrades to pure polling and
// reports ErrNoLine immediately whenever the file has no complete line.
type FollowSource struct {
	path   string
	wait   time.Duration
	logger ports.Logger

	file    *os.File
	reader  *bufio.Reader
	pending []byte
	watcher *fsnotify.Watcher
	removed bool
}

// NewFollowSource creates a tailing source for the file at path. wait is
// the quiet period without file events before Next concedes ErrNoLine.
func NewFollowSource(path string, wait time.Duration, logger ports.Logger) *FollowSource {
	return &FollowSource{
		path:   filepath.Clean(path),
		wait:   wait,
		logger: logger,
	}
}

// Open opens the file and starts watching its directory. The file must
// already exist; followers of a yet-unwritten stream should create it
// empty first.
func (s *FollowSource) Open(ctx context.Context) error {
	f, err := os.Open(s.path)
	if err != nil {
		return err
	}
	s.file = f
	s.reader = bufio.NewReaderSize(f, 64*1024)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		s.logger.Warn("file watcher unavailable, falling back to polling", ports.Err(err))
		return nil
	}
	// Watch the directory, not the file: rename and recreate events for
	// the file itself only surface on the parent.
	if err := watcher.Add(filepath.Dir(s.path)); err != nil {
		s.logger.Warn("cannot watch input directory, falling back to polling",
			ports.String("dir", filepath.Dir(s.path)),
			ports.Err(err),
		)
		watcher.Close()
		return nil
	}
	s.watcher = watcher
	return nil
}

// Next returns the next complete line. While the producer is quiet it
// blocks up to the configured wait, then returns ErrNoLine.
func (s *FollowSource) Next(ctx context.Context) (string, error) {
	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		line, ok, err := s.readLine()
		if err != nil {
			return "", err
		}
		if ok {
			return line, nil
		}

		if s.removed {
			if len(s.pending) > 0 {
				// Final line never got its terminator.
				rest := trimLine(string(s.pending))
				s.pending = nil
				return rest, nil
			}
			return "", ports.ErrExhausted
		}

		if s.watcher == nil {
			return "", ports.ErrNoLine
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()

		case event, ok := <-s.watcher.Events:
			if !ok {
				s.watcher = nil
				continue
			}
			if filepath.Clean(event.Name) != s.path {
				continue
			}
			if event.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
				s.logger.Info("followed file removed, draining remaining lines",
					ports.String("path", s.path),
				)
				s.removed = true
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			// New data may be available, retry the read.

		case err, ok := <-s.watcher.Errors:
			if !ok {
				s.watcher = nil
				continue
			}
			s.logger.Warn("file watcher error", ports.Err(err))

		case <-time.After(s.wait):
			return "", ports.ErrNoLine
		}
	}
}

// readLine attempts to assemble one complete line. It returns ok=false
// when the file currently ends mid-line or exactly at a line boundary.
func (s *FollowSource) readLine() (string, bool, error) {
	chunk, err := s.reader.ReadString('\n')
	if len(chunk) > 0 {
		s.pending = append(s.pending, chunk...)
	}
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", false, nil
		}
		return "", false, err
	}

	line := trimLine(string(s.pending))
	s.pending = s.pending[:0]
	return line, true, nil
}

// Close stops the watcher and closes the file.
func (s *FollowSource) Close() error {
	var errs []error
	if s.watcher != nil {
		if err := s.watcher.Close(); err != nil {
			errs = append(errs, err)
		}
		s.watcher = nil
	}
	if s.file != nil {
		if err := s.file.Close(); err != nil {
			errs = append(errs, err)
		}
		s.file = nil
	}
	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}

// trimLine strips one trailing LF and an optional CR before it.
func trimLine(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
