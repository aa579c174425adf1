// Package prtdecode provides an embeddable PRT-7 frame-stream decoder.
//
// PRT-7 is a line-oriented instruction protocol: each line is a data frame
// carrying one symbol, a remap frame rotating the substitution rotor, or the
// END terminator. The decoder substitutes each data symbol through the rotor
// position in effect when the frame arrives and assembles the results into
// the hidden message. It can be used as a standalone CLI application or
// embedded as a library in other Go programs.
//
// # Basic Usage
//
// To embed the decoder in your application:
//
//	cfg := prtdecode.Config{
//	    InputPath: "/path/to/capture.prt",
//	}
//
//	dec, err := prtdecode.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	if err := dec.Start(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
//	// ... wait for completion or a shutdown signal ...
//
//	if err := dec.Stop(); err != nil {
//	    log.Printf("shutdown error: %v", err)
//	}
//	fmt.Println(dec.Result())
//
// For the common blocking case, the repository root package offers one-shot
// helpers that decode an io.Reader or a string without lifecycle management.
//
// # Configuration
//
// Create a [Config] with at minimum InputPath (or inject a custom transport
// with [WithSource]). All other fields have sensible defaults set via
// [Config.SetDefaults].
//
// # Event Handling
//
// To receive notifications about decoding progress, implement [EventHandler]
// and pass it via [WithEventHandler]:
//
//	handler := &myEventHandler{}
//	dec, err := prtdecode.New(cfg, prtdecode.WithEventHandler(handler))
//
// Events are called synchronously from the decoding goroutine. Implementations
// should return quickly to avoid blocking decoding. Embed [BaseEventHandler]
// to implement only the events you care about.
//
// # Dependency Injection
//
// For testing, you can inject custom implementations of external dependencies:
//
//	dec, err := prtdecode.New(cfg,
//	    prtdecode.WithSource(customSource),
//	    prtdecode.WithLogger(customLogger),
//	)
//
// # Lifecycle States
//
// A Decoder instance can be in one of five states: [StateStopped],
// [StateStarting], [StateRunning], [StateStopping], or [StateCrashed]. Use
// [Decoder.Status] to query the current state. A decoder that reaches the
// END terminator or exhausts its source transitions to [StateStopped] on its
// own; poll Status to detect completion.
//
// # Plugins
//
// The decoder supports optional plugins for extended functionality:
//
//	import "github.com/prt-labs/prtdecode/plugins/stallwatch"
//
//	dec, err := prtdecode.New(cfg,
//	    stallwatch.WithStallWatch(stallwatch.DefaultConfig()),
//	)
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
//
// Use [ModuleVersions] to get versions of all sub-modules and
// [CompatibilityMatrix] to check minimum compatible versions.
package prtdecode
