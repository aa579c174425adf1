package ports

import "github.com/prt-labs/prtdecode/internal/domain"

// Presenter receives decoding progress as it happens. The decoder calls it
// synchronously from its own goroutine, so implementations should return
// quickly. All methods are notifications; none can influence decoding.
type Presenter interface {
	// OnFrameProcessed is called after a frame has been applied. shift is
	// the rotor position after the frame, transcript the message so far.
	OnFrameProcessed(frame domain.Frame, shift int, transcript string)

	// OnLineRejected is called when a line fails to parse and is skipped.
	OnLineRejected(line string, err error)

	// OnFinished is called exactly once when decoding ends, with the final
	// rendered message. It fires on clean termination, source exhaustion,
	// and decode failure alike; on failure the message is partial.
	OnFinished(message string)
}
