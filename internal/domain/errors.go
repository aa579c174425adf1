package domain

import "errors"

// Domain errors represent error conditions in the prtdecode domain.
// These errors are returned by the public API and can be checked with errors.Is.
var (
	// ErrAlreadyRunning is returned when Start() is called on a running decoder.
	ErrAlreadyRunning = errors.New("prtdecode: already running")

	// ErrNotRunning is returned when Stop() is called on a stopped decoder.
	ErrNotRunning = errors.New("prtdecode: not running")

	// ErrShutdownTimeout is returned when graceful shutdown times out.
	ErrShutdownTimeout = errors.New("prtdecode: shutdown timeout")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("prtdecode: invalid configuration")

	// ErrMalformedFrame is returned when an input line does not parse as a
	// PRT-7 frame. It is recoverable: the line is skipped and decoding
	// continues with the next one.
	ErrMalformedFrame = errors.New("prtdecode: malformed frame")
)
