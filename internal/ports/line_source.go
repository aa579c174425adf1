package ports

import (
	"context"
	"errors"
	"io"
)

// LineSource provides raw PRT-7 wire lines, one line per call.
// Implementations read from an in-memory stream, a file, or a file that is
// still being appended to.
type LineSource interface {
	// Open prepares the source for reading.
	Open(ctx context.Context) error

	// Next returns the next line with its terminator stripped.
	// Returns ErrNoLine when no line is available yet (should poll and retry).
	// Returns ErrExhausted when the source can never produce another line.
	// Returns other errors for unrecoverable issues.
	Next(ctx context.Context) (string, error)

	// Close releases all resources held by the source.
	Close() error
}

// ErrNoLine indicates that no line is available right now.
// The caller should poll and retry after a delay.
var ErrNoLine = io.EOF

// ErrExhausted indicates that the source has permanently run out of lines.
// Decoding finishes with whatever the transcript holds.
var ErrExhausted = errors.New("prtdecode: line source exhausted")
