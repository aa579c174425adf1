// Package prtdecode provides one-shot helpers for decoding PRT-7 frame
// streams.
//
// PRT-7 is a line-oriented instruction protocol: each line carries one data
// symbol, a signed rotor rotation, or the END terminator. Data symbols are
// substituted through the rotor position in effect when they arrive and
// assembled, in order, into the hidden message.
//
// Example usage:
//
//	message, err := prtdecode.DecodeString(context.Background(),
//	    "L,H\nL,I\nEND\n")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(message) // HI
//
// For background decoding with lifecycle management, event handlers, and
// plugins, use the embeddable library in pkg/prtdecode instead.
package prtdecode

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/prt-labs/prtdecode/internal/adapters/stream"
	"github.com/prt-labs/prtdecode/internal/app"
	"github.com/prt-labs/prtdecode/pkg/log"
)

// Decode reads a PRT-7 frame stream from r until the END terminator or the
// end of input and returns the decoded message. It blocks until decoding
// finishes or the context is canceled. Malformed lines are skipped; on error
// the returned message holds whatever was decoded before the failure.
func Decode(ctx context.Context, r io.Reader) (string, error) {
	cfg := app.DecoderConfig{
		PollInterval: 10 * time.Millisecond,
		SessionID:    "oneshot",
	}
	decoder := app.NewDecoder(cfg, stream.NewReaderSource(r), log.NewNoopLogger(), nil)
	err := decoder.Run(ctx)
	return decoder.Message(), err
}

// DecodeString decodes a PRT-7 frame stream held in a string.
// See Decode for the exact semantics.
func DecodeString(ctx context.Context, s string) (string, error) {
	return Decode(ctx, strings.NewReader(s))
}
