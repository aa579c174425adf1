package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (PRTDECODE_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("input", os.Getenv("PRTDECODE_INPUT"), &cfg.Input)

	if err := s.setDuration("poll", os.Getenv("PRTDECODE_POLL_INTERVAL"), &cfg.PollInterval); err != nil {
		return err
	}

	if err := s.setIntFromString("idle-limit", os.Getenv("PRTDECODE_IDLE_LIMIT"), &cfg.IdleLimit); err != nil {
		return err
	}

	s.setBoolFromString("follow", os.Getenv("PRTDECODE_FOLLOW"), &cfg.Follow)
	s.setBoolFromString("strict", os.Getenv("PRTDECODE_STRICT"), &cfg.Strict)
	s.setBoolFromString("trace", os.Getenv("PRTDECODE_TRACE"), &cfg.Trace)

	return nil
}
