// Package fs provides file-backed line sources: one-shot file reads and
// tail-style following of files that are still being written.
package fs

import (
	"context"
	"fmt"
	"os"

	"github.com/prt-labs/prtdecode/internal/adapters/stream"
	"github.com/prt-labs/prtdecode/internal/ports"
)

// FileSource reads a file from start to end as a line source. The file is
// opened lazily in Open and owned by the source until Close.
type FileSource struct {
	path  string
	file  *os.File
	lines *stream.ReaderSource
}

// NewFileSource creates a source for the file at path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Open opens the underlying file.
func (s *FileSource) Open(ctx context.Context) error {
	f, err := os.Open(s.path)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	s.file = f
	s.lines = stream.NewReaderSource(f)
	return nil
}

// Next returns the next line of the file, then ErrExhausted at the end.
func (s *FileSource) Next(ctx context.Context) (string, error) {
	if s.lines == nil {
		return "", ports.ErrExhausted
	}
	return s.lines.Next(ctx)
}

// Close closes the underlying file.
func (s *FileSource) Close() error {
	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	s.lines = nil
	return err
}
