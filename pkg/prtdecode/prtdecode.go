package prtdecode

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"

	"github.com/prt-labs/prtdecode/internal/adapters/fs"
	"github.com/prt-labs/prtdecode/internal/adapters/stream"
	"github.com/prt-labs/prtdecode/internal/app"
	"github.com/prt-labs/prtdecode/internal/domain"
	"github.com/prt-labs/prtdecode/internal/ports"
	"github.com/prt-labs/prtdecode/pkg/log"
)

// Decoder is a PRT-7 stream decoder that can be embedded in other
// applications. Use New() to create an instance, then Start() to begin
// decoding in the background, or use the package-level one-shot helpers in
// the repository root package for the blocking case.
type Decoder struct {
	config    Config
	opts      options
	lifecycle *app.Lifecycle
	decoder   *app.Decoder
	source    ports.LineSource
	logger    ports.Logger
	sessionID string

	plugins []Plugin

	mu     sync.RWMutex
	ctx    context.Context
	cancel context.CancelFunc
}

// New creates a new Decoder instance with the given configuration.
// The instance is created in StateStopped; call Start() to begin decoding.
// Returns an error if configuration is invalid.
func New(cfg Config, opts ...Option) (*Decoder, error) {
	// Set defaults
	cfg.SetDefaults()

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Validate module version compatibility
	if err := validateModuleVersions(); err != nil {
		return nil, err
	}

	// Apply options
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	logger := o.logger
	if logger == nil {
		logger = log.NewNoopLogger()
	}

	// Create event emitter wrapper
	emitter := &eventEmitterWrapper{handler: o.eventHandler}

	// Create lifecycle manager
	lifecycle := app.NewLifecycle(logger, emitter)

	// Resolve the line source: injected source wins, then stdin, then a
	// follow or one-shot file source depending on configuration.
	source := o.source
	if source == nil {
		switch {
		case cfg.InputPath == "":
			return nil, fmt.Errorf("%w: input path is required when no source is injected", domain.ErrInvalidConfig)
		case cfg.InputPath == StdinInput:
			source = stream.NewReaderSource(os.Stdin)
		case cfg.Follow:
			source = fs.NewFollowSource(cfg.InputPath, cfg.PollInterval, logger)
		default:
			source = fs.NewFileSource(cfg.InputPath)
		}
	}

	sessionID := uuid.NewString()

	decoderCfg := app.DecoderConfig{
		PollInterval: cfg.PollInterval,
		IdleLimit:    cfg.IdleLimit,
		Strict:       cfg.Strict,
		SessionID:    sessionID,
	}
	decoder := app.NewDecoder(decoderCfg, source, logger, emitter)

	return &Decoder{
		config:    cfg,
		opts:      o,
		lifecycle: lifecycle,
		decoder:   decoder,
		source:    source,
		logger:    logger,
		sessionID: sessionID,
		plugins:   o.plugins,
	}, nil
}

// Start begins decoding in the background.
// Returns immediately after starting the decoding goroutine.
// Returns an error if already running or if startup fails.
// The provided context is used for the lifetime of the decode operation.
func (d *Decoder) Start(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.lifecycle.CanStart() {
		return domain.ErrAlreadyRunning
	}

	// Transition to starting
	if err := d.lifecycle.TransitionTo(app.StateStarting, "Start() called"); err != nil {
		return err
	}

	// Create cancellable context
	runCtx, cancel := context.WithCancel(ctx)
	d.ctx = runCtx
	d.cancel = cancel
	d.lifecycle.SetCancel(cancel)

	// Initialize plugins
	pluginCfg := PluginConfig{
		InputPath: d.config.InputPath,
		SessionID: d.sessionID,
		Logger:    d.logger,
		Stats:     d.Stats,
	}
	for _, p := range d.plugins {
		if err := p.Initialize(runCtx, pluginCfg); err != nil {
			d.logger.Error("plugin initialization failed",
				ports.String("plugin", p.Name()),
				ports.Err(err))
			cancel()
			_ = d.lifecycle.TransitionTo(app.StateCrashed, "plugin init failed: "+p.Name())
			return err
		}
		d.logger.Info("plugin initialized", ports.String("plugin", p.Name()))
	}

	// Start the decode loop in a goroutine
	d.lifecycle.AddWorker()
	go func() {
		defer d.lifecycle.WorkerDone()

		// Transition to running
		if err := d.lifecycle.TransitionTo(app.StateRunning, "decoder starting"); err != nil {
			d.logger.Error("failed to transition to running", ports.Err(err))
			return
		}

		// Run the decode loop
		err := d.decoder.Run(runCtx)

		// Handle completion
		switch {
		case err != nil && !errors.Is(err, context.Canceled):
			d.logger.Error("decoder error", ports.Err(err))
			_ = d.lifecycle.TransitionTo(app.StateCrashed, err.Error())
		default:
			// Terminator or exhausted source; Stop() handles the
			// transitions when the context was canceled instead.
			if d.lifecycle.State() == app.StateRunning {
				_ = d.lifecycle.TransitionTo(app.StateStopping, "decode complete")
				_ = d.lifecycle.TransitionTo(app.StateStopped, "decode complete")
			}
		}
	}()

	return nil
}

// Stop gracefully shuts down the decoder.
// Waits up to 30 seconds before forcing shutdown.
// Returns nil on graceful shutdown, ErrShutdownTimeout if forced.
func (d *Decoder) Stop() error {
	d.mu.Lock()

	if !d.lifecycle.CanStop() {
		d.mu.Unlock()
		return domain.ErrNotRunning
	}

	// Transition to stopping
	if err := d.lifecycle.TransitionTo(app.StateStopping, "Stop() called"); err != nil {
		d.mu.Unlock()
		return err
	}

	// Cancel the context
	if d.cancel != nil {
		d.cancel()
	}

	d.mu.Unlock()

	// Wait for workers with timeout
	err := d.lifecycle.WaitWithTimeout(app.ShutdownTimeout)

	// Shutdown plugins (in reverse order)
	shutdownCtx := context.Background()
	for i := len(d.plugins) - 1; i >= 0; i-- {
		p := d.plugins[i]
		if shutdownErr := p.Shutdown(shutdownCtx); shutdownErr != nil {
			d.logger.Error("plugin shutdown failed",
				ports.String("plugin", p.Name()),
				ports.Err(shutdownErr))
		} else {
			d.logger.Info("plugin shutdown complete", ports.String("plugin", p.Name()))
		}
	}

	// Transition to stopped
	if err != nil {
		_ = d.lifecycle.TransitionTo(app.StateCrashed, "shutdown timeout")
	} else {
		_ = d.lifecycle.TransitionTo(app.StateStopped, "graceful shutdown")
	}

	return err
}

// Status returns the current lifecycle state.
// Safe to call concurrently from any goroutine.
func (d *Decoder) Status() State {
	return convertState(d.lifecycle.State())
}

// Result returns the decoded message from the most recent finished run.
// It is empty while a run is still in progress.
func (d *Decoder) Result() string {
	return d.decoder.Message()
}

// Stats returns a snapshot of the decoding progress counters.
// Safe to call concurrently from any goroutine.
func (d *Decoder) Stats() Stats {
	s := d.decoder.Stats()
	return Stats{
		Frames:      s.Frames,
		Rejected:    s.Rejected,
		LastFrameAt: s.LastFrameAt,
	}
}

// SessionID returns the identifier of this decoder's decode session.
func (d *Decoder) SessionID() string {
	return d.sessionID
}

// eventEmitterWrapper adapts EventHandler to the internal emitter and
// presenter interfaces.
type eventEmitterWrapper struct {
	handler EventHandler
}

func (e *eventEmitterWrapper) OnStateChange(previous, current app.State, reason string) {
	if e.handler == nil {
		return
	}
	e.handler.OnStateChange(StateChangeEvent{
		Previous: convertState(previous),
		Current:  convertState(current),
		Reason:   reason,
	})
}

func (e *eventEmitterWrapper) OnFrameProcessed(frame domain.Frame, shift int, transcript string) {
	if e.handler == nil {
		return
	}
	e.handler.OnFrameDecoded(FrameDecodedEvent{
		Frame:      frame.String(),
		Shift:      shift,
		Transcript: transcript,
	})
}

func (e *eventEmitterWrapper) OnLineRejected(line string, err error) {
	if e.handler == nil {
		return
	}
	e.handler.OnLineRejected(LineRejectedEvent{
		Line: line,
		Err:  err,
	})
}

func (e *eventEmitterWrapper) OnFinished(message string) {
	if e.handler == nil {
		return
	}
	e.handler.OnFinished(FinishedEvent{
		Message: message,
	})
}

func convertState(s app.State) State {
	switch s {
	case app.StateStopped:
		return StateStopped
	case app.StateStarting:
		return StateStarting
	case app.StateRunning:
		return StateRunning
	case app.StateStopping:
		return StateStopping
	case app.StateCrashed:
		return StateCrashed
	default:
		return StateStopped
	}
}

// validateModuleVersions checks that all module versions are compatible.
// Returns an error if any module version is below its minimum compatible version.
func validateModuleVersions() error {
	modules := map[string]struct {
		version    string
		minVersion string
	}{
		"log": {log.Version, log.MinCompatibleVersion},
	}

	for name, m := range modules {
		if !isVersionCompatible(m.version, m.minVersion) {
			return fmt.Errorf("module %s version %s is below minimum compatible version %s",
				name, m.version, m.minVersion)
		}
	}

	return nil
}

// isVersionCompatible checks if version >= minVersion using semantic versioning.
// Assumes versions are in format "major.minor.patch".
func isVersionCompatible(version, minVersion string) bool {
	// Parse versions (simplified semver comparison)
	var vMajor, vMinor, vPatch int
	var mMajor, mMinor, mPatch int

	_, _ = fmt.Sscanf(version, "%d.%d.%d", &vMajor, &vMinor, &vPatch)
	_, _ = fmt.Sscanf(minVersion, "%d.%d.%d", &mMajor, &mMinor, &mPatch)

	if vMajor != mMajor {
		return vMajor > mMajor
	}
	if vMinor != mMinor {
		return vMinor > mMinor
	}
	return vPatch >= mPatch
}
