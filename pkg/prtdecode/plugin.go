package prtdecode

import (
	"context"
	"time"
)

// Stats is a snapshot of decoding progress counters. It is safe to take a
// snapshot from any goroutine while decoding is in progress.
type Stats struct {
	// Frames is the number of frames applied, the terminator included.
	Frames int64

	// Rejected is the number of malformed lines skipped.
	Rejected int64

	// LastFrameAt is when the most recent frame was applied. Zero until
	// the first frame.
	LastFrameAt time.Time
}

// PluginConfig carries the decoder context handed to each plugin during
// initialization.
type PluginConfig struct {
	// InputPath is the configured input, or empty for an injected source.
	InputPath string

	// SessionID identifies this decode session in logs and events.
	SessionID string

	// Logger is the decoder's logger, for the plugin's own output.
	Logger Logger

	// Stats returns a live snapshot of the decoding progress counters.
	Stats func() Stats
}

// Plugin extends a Decoder with optional background functionality.
// Plugins are initialized in registration order when the decoder starts
// and shut down in reverse order when it stops.
type Plugin interface {
	// Name returns the plugin identifier used in logs.
	Name() string

	// Initialize sets up the plugin. Returning an error aborts startup.
	// The context is canceled when the decoder stops.
	Initialize(ctx context.Context, cfg PluginConfig) error

	// Shutdown releases the plugin's resources.
	Shutdown(ctx context.Context) error
}
