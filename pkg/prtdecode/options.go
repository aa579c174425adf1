package prtdecode

import (
	"github.com/prt-labs/prtdecode/internal/ports"
	"github.com/prt-labs/prtdecode/pkg/log"
)

// Logger is the interface for structured logging.
// It is the Logger interface from pkg/log.
type Logger = log.Logger

// LogField represents a structured log field.
type LogField = log.Field

// LineSource supplies raw PRT-7 wire lines to the decoder, one per call.
// Implement it to decode from a custom transport and inject it with
// WithSource.
type LineSource = ports.LineSource

// Sentinel errors for LineSource implementations.
var (
	// ErrNoLine tells the decoder no line is available yet; it will poll
	// again after the configured interval. Equal to io.EOF.
	ErrNoLine = ports.ErrNoLine

	// ErrExhausted tells the decoder the source can never produce another
	// line; decoding finishes with whatever the transcript holds.
	ErrExhausted = ports.ErrExhausted
)

// Option configures optional behavior of a Decoder.
type Option func(*options)

// options holds the optional configuration for a Decoder instance.
type options struct {
	logger       Logger
	eventHandler EventHandler
	source       LineSource
	plugins      []Plugin
}

// defaultOptions returns options with sensible defaults.
func defaultOptions() options {
	return options{
		logger:       log.NewNoopLogger(),
		eventHandler: nil,
		source:       nil,
		plugins:      nil,
	}
}

// WithLogger sets a custom logger for structured logging.
// If not provided, a no-op logger is used (no output).
func WithLogger(logger Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithEventHandler sets a handler for decoder events.
// Events are called synchronously from the decoding goroutine.
// If not provided, no events are emitted.
func WithEventHandler(handler EventHandler) Option {
	return func(o *options) {
		o.eventHandler = handler
	}
}

// WithSource injects a custom line source, overriding Config.InputPath.
// Use this to decode from transports the built-in adapters do not cover.
func WithSource(source LineSource) Option {
	return func(o *options) {
		o.source = source
	}
}

// WithPlugin registers a plugin to be initialized when the decoder starts.
// Plugins are initialized in registration order and shut down in reverse
// order. For built-in plugins, prefer their specific options, like
// stallwatch.WithStallWatch().
func WithPlugin(plugin Plugin) Option {
	return func(o *options) {
		o.plugins = append(o.plugins, plugin)
	}
}
