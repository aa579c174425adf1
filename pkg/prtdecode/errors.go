package prtdecode

import "github.com/prt-labs/prtdecode/internal/domain"

// Sentinel errors returned by the public API, re-exported from the domain
// layer so callers can match them with errors.Is.
var (
	// ErrAlreadyRunning is returned when Start() is called on a running decoder.
	ErrAlreadyRunning = domain.ErrAlreadyRunning

	// ErrNotRunning is returned when Stop() is called on a stopped decoder.
	ErrNotRunning = domain.ErrNotRunning

	// ErrShutdownTimeout is returned when graceful shutdown times out.
	ErrShutdownTimeout = domain.ErrShutdownTimeout

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = domain.ErrInvalidConfig

	// ErrMalformedFrame is the cause surfaced when strict mode aborts on a
	// malformed line.
	ErrMalformedFrame = domain.ErrMalformedFrame
)
