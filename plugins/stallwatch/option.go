package stallwatch

import "github.com/prt-labs/prtdecode/pkg/prtdecode"

// WithStallWatch returns a prtdecode Option that enables the stall watchdog.
// When enabled, the plugin warns through the decoder's logger when no frame
// has been decoded for the configured window.
//
// Usage:
//
//	dec, err := prtdecode.New(cfg,
//	    stallwatch.WithStallWatch(stallwatch.Config{
//	        CheckInterval: 5 * time.Second,
//	        StallWindow:   time.Minute,
//	    }),
//	)
func WithStallWatch(cfg Config) prtdecode.Option {
	plugin := New(cfg)
	return prtdecode.WithPlugin(plugin)
}

// WithDefaultStallWatch returns a prtdecode Option that enables the stall
// watchdog with default settings (check every 5s, warn after 30s idle).
//
// Usage:
//
//	dec, err := prtdecode.New(cfg, stallwatch.WithDefaultStallWatch())
func WithDefaultStallWatch() prtdecode.Option {
	return WithStallWatch(DefaultConfig())
}
