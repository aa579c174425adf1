package app

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/prt-labs/prtdecode/internal/domain"
	"github.com/prt-labs/prtdecode/internal/ports"
)

// DecoderConfig contains configuration for the decode loop.
type DecoderConfig struct {
	// PollInterval is how long to wait after the source reports no line.
	PollInterval time.Duration

	// IdleLimit bounds consecutive empty polls. Zero means poll forever.
	// When the limit is reached the source is treated as exhausted.
	IdleLimit int

	// Strict makes a malformed line fatal instead of skipped.
	Strict bool

	// SessionID identifies this decode session in logs and events.
	SessionID string
}

// Stats is a snapshot of decode progress counters.
type Stats struct {
	// Frames is the number of frames applied, the terminator included.
	Frames int64

	// Rejected is the number of malformed lines skipped.
	Rejected int64

	// LastFrameAt is when the most recent frame was applied. Zero until
	// the first frame.
	LastFrameAt time.Time
}

// Decoder orchestrates the PRT-7 decode loop. It owns the rotor and the
// transcript and drives them from a single goroutine; the progress counters
// and the final message are safe to read from other goroutines.
type Decoder struct {
	config      DecoderConfig
	source      ports.LineSource
	interpreter *Interpreter
	rotor       *domain.Rotor
	transcript  *domain.Transcript
	logger      ports.Logger
	presenter   ports.Presenter

	frames    atomic.Int64
	rejected  atomic.Int64
	lastFrame atomic.Int64

	mu      sync.Mutex
	message string
}

// NewDecoder creates a decoder with the given dependencies. The presenter
// may be nil.
func NewDecoder(
	config DecoderConfig,
	source ports.LineSource,
	logger ports.Logger,
	presenter ports.Presenter,
) *Decoder {
	return &Decoder{
		config:      config,
		source:      source,
		interpreter: NewInterpreter(config.Strict, logger, presenter),
		rotor:       domain.NewRotor(),
		transcript:  domain.NewTranscript(),
		logger:      logger,
		presenter:   presenter,
	}
}

// Run executes the main decode loop. It reads lines, applies frames, and
// returns when the terminator arrives, the source is exhausted, the context
// is canceled, or an unrecoverable error occurs. Once the source has been
// opened, the transcript is rendered and the presenter's OnFinished fires
// exactly once before Run returns; on failure or cancellation the message
// is partial.
func (d *Decoder) Run(ctx context.Context) error {
	d.logger.Info("decoder starting",
		ports.String("session_id", d.config.SessionID),
		ports.Duration("poll_interval", d.config.PollInterval),
		ports.Bool("strict", d.config.Strict),
	)

	if err := d.source.Open(ctx); err != nil {
		d.logger.Error("failed to open line source", ports.Err(err))
		return err
	}
	defer d.source.Close()

	idle := 0

	for {
		select {
		case <-ctx.Done():
			return d.finish(ctx.Err())
		default:
		}

		line, err := d.source.Next(ctx)
		if err != nil {
			if errors.Is(err, ports.ErrNoLine) {
				idle++
				if d.config.IdleLimit > 0 && idle >= d.config.IdleLimit {
					d.logger.Warn("idle limit reached, treating source as exhausted",
						ports.Int("polls", idle),
					)
					return d.finish(nil)
				}

				select {
				case <-ctx.Done():
					return d.finish(ctx.Err())
				case <-time.After(d.config.PollInterval):
					continue
				}
			}

			if errors.Is(err, ports.ErrExhausted) {
				d.logger.Info("line source exhausted")
				return d.finish(nil)
			}

			// Unrecoverable read error, finish with the partial transcript
			d.logger.Error("read error", ports.Err(err))
			return d.finish(err)
		}
		idle = 0

		frame, cont, perr := d.interpreter.Process(line, d.rotor, d.transcript)
		if perr != nil {
			d.rejected.Add(1)
			if !cont {
				return d.finish(perr)
			}
			continue
		}

		d.frames.Add(1)
		d.lastFrame.Store(time.Now().UnixNano())

		if !cont {
			d.logger.Info("terminator received",
				ports.String("frame", frame.String()),
			)
			return d.finish(nil)
		}
	}
}

// finish renders the transcript, notifies the presenter, and passes the
// cause through as Run's return value.
func (d *Decoder) finish(cause error) error {
	message := d.transcript.Render()

	d.mu.Lock()
	d.message = message
	d.mu.Unlock()

	d.logger.Info("decoding finished",
		ports.String("session_id", d.config.SessionID),
		ports.Int64("frames", d.frames.Load()),
		ports.Int64("rejected", d.rejected.Load()),
		ports.Int("length", len(message)),
	)

	if d.presenter != nil {
		d.presenter.OnFinished(message)
	}
	return cause
}

// Message returns the rendered transcript from the most recent finished
// run. It is empty while a run is still in progress.
func (d *Decoder) Message() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.message
}

// Stats returns a snapshot of the progress counters. It is safe to call
// while Run is in progress.
func (d *Decoder) Stats() Stats {
	var last time.Time
	if ns := d.lastFrame.Load(); ns > 0 {
		last = time.Unix(0, ns)
	}
	return Stats{
		Frames:      d.frames.Load(),
		Rejected:    d.rejected.Load(),
		LastFrameAt: last,
	}
}
