package prtdecode_test

import (
	"context"
	"fmt"
	"time"

	"github.com/prt-labs/prtdecode/pkg/prtdecode"
)

// ExampleNew demonstrates how to embed the decoder in your application.
func ExampleNew() {
	// Create configuration
	cfg := prtdecode.Config{
		InputPath: "/path/to/capture.prt",
	}

	// Create decoder instance
	dec, err := prtdecode.New(cfg)
	if err != nil {
		fmt.Printf("failed to create decoder: %v\n", err)
		return
	}

	// Start decoding (non-blocking)
	ctx := context.Background()
	if err := dec.Start(ctx); err != nil {
		fmt.Printf("failed to start: %v\n", err)
		return
	}

	// Check status (may vary depending on timing; the bogus path above
	// crashes the decoder once the source fails to open)
	status := dec.Status()
	fmt.Printf("Status is valid: %v\n", status != prtdecode.StateStopping)

	// Stop gracefully (a no-op if the decoder already crashed)
	_ = dec.Stop()

	// Output: Status is valid: true
}

// Example_withEventHandler demonstrates how to receive decoder events.
func Example_withEventHandler() {
	handler := &exampleEventHandler{}

	dec, err := prtdecode.New(
		prtdecode.Config{PollInterval: time.Millisecond},
		prtdecode.WithSource(newScriptSource("L,H", "L,I", "END")),
		prtdecode.WithEventHandler(handler),
	)
	if err != nil {
		fmt.Printf("failed to create decoder: %v\n", err)
		return
	}

	if err := dec.Start(context.Background()); err != nil {
		fmt.Printf("failed to start: %v\n", err)
		return
	}

	// Poll until the terminator frame stops the decoder.
	for dec.Status() != prtdecode.StateStopped {
		time.Sleep(5 * time.Millisecond)
	}

	// Output: decoded message: HI
}

// exampleEventHandler implements prtdecode.EventHandler via BaseEventHandler.
type exampleEventHandler struct {
	prtdecode.BaseEventHandler
}

func (h *exampleEventHandler) OnFinished(e prtdecode.FinishedEvent) {
	fmt.Printf("decoded message: %s\n", e.Message)
}
