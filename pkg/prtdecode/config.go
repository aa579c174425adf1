package prtdecode

import (
	"fmt"
	"time"

	"github.com/prt-labs/prtdecode/internal/domain"
)

// StdinInput is the InputPath value that selects standard input.
const StdinInput = "-"

// Config holds the configuration for a Decoder instance.
// Use SetDefaults() to fill in defaults for zero-valued fields.
type Config struct {
	// InputPath is the PRT-7 capture to decode: a file path, or "-" for
	// standard input. It may be empty only when a custom line source is
	// injected with WithSource.
	InputPath string

	// Follow tails InputPath as it grows instead of reading it once.
	// Requires a file path; following stdin is not supported.
	Follow bool

	// PollInterval is the wait between polls when the source has no
	// complete line available yet. Default: 500ms.
	PollInterval time.Duration

	// IdleLimit stops decoding after this many consecutive empty polls.
	// Zero means poll until the source reports exhaustion. Default: 0.
	IdleLimit int

	// Strict aborts decoding on the first malformed line instead of
	// skipping it. Default: false.
	Strict bool
}

// SetDefaults fills in default values for zero-valued fields.
func (c *Config) SetDefaults() {
	if c.PollInterval <= 0 {
		c.PollInterval = 500 * time.Millisecond
	}
}

// Validate checks the configuration for errors.
// Call SetDefaults() first to fill in defaults.
func (c *Config) Validate() error {
	if c.PollInterval <= 0 {
		return fmt.Errorf("%w: poll interval must be positive", domain.ErrInvalidConfig)
	}
	if c.IdleLimit < 0 {
		return fmt.Errorf("%w: idle limit must not be negative", domain.ErrInvalidConfig)
	}
	if c.Follow && (c.InputPath == "" || c.InputPath == StdinInput) {
		return fmt.Errorf("%w: follow requires a file path", domain.ErrInvalidConfig)
	}
	return nil
}
