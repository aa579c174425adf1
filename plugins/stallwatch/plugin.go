// Package stallwatch provides a stall watchdog plugin for prtdecode.
// When enabled, it periodically checks the decoder's progress counters and
// warns through the decoder's logger when no frame has been decoded for a
// configured window. A stalled decode usually means the capture stopped
// mid-stream or the transport wedged.
package stallwatch

import (
	"context"
	"sync"
	"time"

	"github.com/prt-labs/prtdecode/pkg/log"
	"github.com/prt-labs/prtdecode/pkg/prtdecode"
)

// Plugin implements the stall watchdog.
type Plugin struct {
	mu sync.Mutex

	// Configuration
	checkInterval time.Duration
	stallWindow   time.Duration

	// Runtime state
	sessionID string
	logger    log.Logger
	stats     func() prtdecode.Stats
	cancel    context.CancelFunc
	wg        sync.WaitGroup
}

// Config holds configuration options for the stall watchdog plugin.
type Config struct {
	// CheckInterval is how often to check the progress counters.
	// Default: 5 seconds
	CheckInterval time.Duration

	// StallWindow is how long decoding may go without a new frame before
	// the watchdog warns.
	// Default: 30 seconds
	StallWindow time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		CheckInterval: 5 * time.Second,
		StallWindow:   30 * time.Second,
	}
}

// New creates a new stall watchdog plugin with the given configuration.
func New(cfg Config) *Plugin {
	if cfg.CheckInterval <= 0 {
		cfg.CheckInterval = 5 * time.Second
	}
	if cfg.StallWindow <= 0 {
		cfg.StallWindow = 30 * time.Second
	}

	return &Plugin{
		checkInterval: cfg.CheckInterval,
		stallWindow:   cfg.StallWindow,
	}
}

// Name returns the plugin identifier.
func (p *Plugin) Name() string {
	return "stallwatch"
}

// Initialize sets up the plugin and starts the watchdog goroutine.
func (p *Plugin) Initialize(ctx context.Context, cfg prtdecode.PluginConfig) error {
	p.mu.Lock()
	p.sessionID = cfg.SessionID
	p.logger = cfg.Logger
	p.stats = cfg.Stats
	p.mu.Unlock()

	if p.stats == nil {
		p.logger.Warn("stall watchdog disabled: no stats accessor configured")
		return nil
	}

	watchCtx, cancel := context.WithCancel(ctx)
	p.mu.Lock()
	p.cancel = cancel
	p.mu.Unlock()

	p.wg.Add(1)
	go p.watch(watchCtx)

	p.logger.Info("stall watchdog started",
		log.Duration("check_interval", p.checkInterval),
		log.Duration("stall_window", p.stallWindow),
	)
	return nil
}

// Shutdown stops the watchdog goroutine.
func (p *Plugin) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	p.wg.Wait()
	return nil
}

// watch ticks at the check interval and warns when the frame counter has not
// moved within the stall window. A decode that has produced no frame at all
// is measured from the watchdog's start.
func (p *Plugin) watch(ctx context.Context) {
	defer p.wg.Done()

	ticker := time.NewTicker(p.checkInterval)
	defer ticker.Stop()

	started := time.Now()
	var lastWarned int64 = -1

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		stats := p.stats()

		lastProgress := stats.LastFrameAt
		if lastProgress.IsZero() {
			lastProgress = started
		}

		idle := time.Since(lastProgress)
		if idle < p.stallWindow {
			continue
		}

		// One warning per stalled frame count, not one per tick.
		if stats.Frames == lastWarned {
			continue
		}
		lastWarned = stats.Frames

		p.logger.Warn("decoding appears stalled",
			log.String("session_id", p.sessionID),
			log.Int64("frames", stats.Frames),
			log.Duration("idle", idle),
			log.Duration("stall_window", p.stallWindow),
		)
	}
}
