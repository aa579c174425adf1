package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/prt-labs/prtdecode/internal/cliconfig"
	logpkg "github.com/prt-labs/prtdecode/pkg/log"
	"github.com/prt-labs/prtdecode/pkg/prtdecode"
	"github.com/prt-labs/prtdecode/plugins/stallwatch"
)

const helpBanner = `
 ____  ____ _____       _____
|  _ \|  _ \_   _| ___ |___  |
| |_) | |_) || |  |___|   / /
|  __/|  _ < | |         / /
|_|   |_| \_\|_|        /_/
`

const helpDescription = `
Reconstruct the hidden message from a PRT-7 frame capture.

Highlights:
  - Decodes data frames through the rotating substitution rotor, honoring
    remap frames exactly where they appear in the stream.
  - Reads a capture file, stdin, or follows a file that is still growing.
  - Skips malformed lines by default; --strict aborts on the first one.
  - Configure via file, env (PRTDECODE_*), or flags.
`

var longHelp = strings.TrimSpace(helpBanner) + "\n\n" + strings.TrimSpace(helpDescription)

var exampleUsage = strings.TrimSpace(`
  prtdecode --input capture.prt
  cat capture.prt | prtdecode
  prtdecode --input /var/log/serial/drop.prt --follow --idle-limit 20
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	log := cliconfig.Logger()

	root := &cobra.Command{
		Use:     "prtdecode",
		Short:   "Reconstruct the hidden message from a PRT-7 frame capture",
		Long:    longHelp,
		Example: exampleUsage,
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Load config file first (default $HOME/.prtdecode/config.toml),
			// then apply env and flag overrides
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			// Build set of changed flags
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}

			// Apply environment variables (PRTDECODE_*)
			// These override file config but are overridden by flags (checked via changed map)
			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			// Validate and set derived defaults
			if err := cfg.Validate(); err != nil {
				return err
			}

			if cfg.Trace {
				log = log.Level(zerolog.DebugLevel)
			} else {
				log = log.Level(zerolog.InfoLevel)
			}

			log.Info().Interface("config", cfg).Msg("configuration")

			// Convert cliconfig.Config to prtdecode.Config
			libCfg := prtdecode.Config{
				InputPath:    cfg.Input,
				Follow:       cfg.Follow,
				PollInterval: cfg.PollInterval,
				IdleLimit:    cfg.IdleLimit,
				Strict:       cfg.Strict,
			}

			// Create zerolog adapter for the library
			zerologAdapter := logpkg.NewZerologAdapterWithLogger(log)

			// Create decoder with the stall watchdog enabled by default
			dec, err := prtdecode.New(libCfg,
				prtdecode.WithLogger(zerologAdapter),
				stallwatch.WithDefaultStallWatch(),
			)
			if err != nil {
				return fmt.Errorf("create decoder: %w", err)
			}

			// Setup signal handling for graceful shutdown
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(sigCh)

			// Start decoding
			if err := dec.Start(ctx); err != nil {
				return fmt.Errorf("start decoder: %w", err)
			}

			// Create done channel to detect completion
			doneCh := make(chan struct{})
			go func() {
				// Poll for completion (terminator, exhaustion, or crash)
				ticker := time.NewTicker(100 * time.Millisecond)
				defer ticker.Stop()
				for {
					select {
					case <-ctx.Done():
						return
					case <-ticker.C:
						status := dec.Status()
						if status == prtdecode.StateStopped || status == prtdecode.StateCrashed {
							close(doneCh)
							return
						}
					}
				}
			}()

			// Wait for signal or completion
			crashed := false
			select {
			case <-sigCh:
				log.Info().Msg("received signal, stopping...")
				if err := dec.Stop(); err != nil {
					return fmt.Errorf("stop decoder: %w", err)
				}
			case <-doneCh:
				if dec.Status() == prtdecode.StateCrashed {
					crashed = true
					log.Error().Msg("decoding failed")
				}
			}

			// Print whatever was decoded, even on failure
			fmt.Println(dec.Result())

			if crashed {
				return fmt.Errorf("decoding failed, output is partial")
			}
			return nil
		},
	}

	// Flags
	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.prtdecode/config.toml)")
	root.Flags().StringVar(&cfg.Input, "input", cfg.Input, "PRT-7 capture file, or - for stdin")
	root.Flags().BoolVar(&cfg.Follow, "follow", cfg.Follow, "tail the input file as it grows")
	root.Flags().DurationVar(&cfg.PollInterval, "poll", cfg.PollInterval, "poll interval when the source has no line")
	root.Flags().IntVar(&cfg.IdleLimit, "idle-limit", cfg.IdleLimit, "stop after this many consecutive empty polls (0 = unlimited)")
	root.Flags().BoolVar(&cfg.Strict, "strict", cfg.Strict, "abort on the first malformed line")
	root.Flags().BoolVar(&cfg.Trace, "trace", cfg.Trace, "log every frame at debug level")

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("prtdecode")
		os.Exit(1)
	}
}
