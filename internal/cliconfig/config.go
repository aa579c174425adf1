package cliconfig

import (
	"fmt"
	"strconv"
	"time"
)

// StdinInput is the input value that selects standard input.
const StdinInput = "-"

// Config holds CLI configuration for prtdecode.
type Config struct {
	// Input is the path of the PRT-7 stream, or "-" for stdin.
	Input string

	// Follow tails the input file instead of reading it once.
	Follow bool

	// PollInterval is the wait between polls when the source has no line.
	PollInterval time.Duration

	// IdleLimit stops decoding after this many consecutive empty polls.
	// Zero polls forever.
	IdleLimit int

	// Strict aborts on the first malformed line instead of skipping it.
	Strict bool

	// Trace enables debug-level logging of every frame.
	Trace bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Input:        StdinInput,
		PollInterval: 500 * time.Millisecond,
		IdleLimit:    0,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("input is required")
	}
	if c.Follow && c.Input == StdinInput {
		return fmt.Errorf("cannot follow stdin, follow requires a file path")
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("poll interval must be positive")
	}
	if c.IdleLimit < 0 {
		return fmt.Errorf("idle limit must not be negative")
	}
	return nil
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if positive and flag not changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses a string to int and sets the destination if valid.
// Used for environment variables that come as strings.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if i <= 0 {
		return nil
	}
	*dst = i
	return nil
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
// Used for environment variables that come as strings.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
