// Package stream adapts in-memory readers to the line source port.
package stream

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"

	"github.com/prt-labs/prtdecode/internal/ports"
)

// ReaderSource reads wire lines from an io.Reader, typically stdin or an
// in-memory buffer. EOF from the reader is permanent, so the source reports
// exhaustion rather than asking the caller to poll. The source does not own
// the reader; Close releases nothing.
type ReaderSource struct {
	reader *bufio.Reader
	done   bool
}

// NewReaderSource creates a line source over r.
func NewReaderSource(r io.Reader) *ReaderSource {
	return &ReaderSource{reader: bufio.NewReaderSize(r, 64*1024)}
}

// Open implements ports.LineSource. The reader is ready as-is.
func (s *ReaderSource) Open(ctx context.Context) error {
	return nil
}

// Next returns the next line with its terminator stripped. A trailing chunk
// without a terminator counts as the final line.
func (s *ReaderSource) Next(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	if s.done {
		return "", ports.ErrExhausted
	}

	line, err := s.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			s.done = true
			if line == "" {
				return "", ports.ErrExhausted
			}
			return trimLine(line), nil
		}
		return "", err
	}
	return trimLine(line), nil
}

// Close implements ports.LineSource.
func (s *ReaderSource) Close() error {
	return nil
}

// trimLine strips one trailing LF and an optional CR before it.
func trimLine(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
