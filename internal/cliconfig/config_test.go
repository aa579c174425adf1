package cliconfig

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Input != StdinInput {
		t.Errorf("Input = %v, want %v", cfg.Input, StdinInput)
	}
	if cfg.PollInterval != 500*time.Millisecond {
		t.Errorf("PollInterval = %v, want 500ms", cfg.PollInterval)
	}
	if cfg.IdleLimit != 0 {
		t.Errorf("IdleLimit = %v, want 0", cfg.IdleLimit)
	}
	if cfg.Follow || cfg.Strict || cfg.Trace {
		t.Error("Follow, Strict, and Trace should default to false")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid stdin config",
			config: Config{
				Input:        StdinInput,
				PollInterval: time.Second,
			},
			wantErr: false,
		},
		{
			name: "valid file config",
			config: Config{
				Input:        "/tmp/stream.prt",
				PollInterval: time.Second,
			},
			wantErr: false,
		},
		{
			name: "valid follow config",
			config: Config{
				Input:        "/tmp/stream.prt",
				Follow:       true,
				PollInterval: time.Second,
				IdleLimit:    10,
			},
			wantErr: false,
		},
		{
			name: "missing input",
			config: Config{
				PollInterval: time.Second,
			},
			wantErr: true,
		},
		{
			name: "follow stdin",
			config: Config{
				Input:        StdinInput,
				Follow:       true,
				PollInterval: time.Second,
			},
			wantErr: true,
		},
		{
			name: "invalid poll interval",
			config: Config{
				Input:        StdinInput,
				PollInterval: -1,
			},
			wantErr: true,
		},
		{
			name: "zero poll interval",
			config: Config{
				Input: StdinInput,
			},
			wantErr: true,
		},
		{
			name: "negative idle limit",
			config: Config{
				Input:        StdinInput,
				PollInterval: time.Second,
				IdleLimit:    -5,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
