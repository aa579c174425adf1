package prtdecode

// State represents the lifecycle state of a Decoder instance.
type State int

const (
	StateStopped State = iota
	StateStarting
	StateRunning
	StateStopping
	StateCrashed
)

// String returns a human-readable representation of the state.
func (s State) String() string {
	switch s {
	case StateStopped:
		return "Stopped"
	case StateStarting:
		return "Starting"
	case StateRunning:
		return "Running"
	case StateStopping:
		return "Stopping"
	case StateCrashed:
		return "Crashed"
	default:
		return "Unknown"
	}
}

// StateChangeEvent is emitted when the decoder's lifecycle state changes.
type StateChangeEvent struct {
	Previous State
	Current  State
	Reason   string
}

// FrameDecodedEvent is emitted after a frame has been applied.
type FrameDecodedEvent struct {
	// Frame is a compact description of the applied frame, e.g. data('H').
	Frame string

	// Shift is the rotor position after the frame was applied.
	Shift int

	// Transcript is the decoded message so far.
	Transcript string
}

// LineRejectedEvent is emitted when a malformed line is skipped.
type LineRejectedEvent struct {
	Line string
	Err  error
}

// FinishedEvent is emitted exactly once when decoding ends.
type FinishedEvent struct {
	// Message is the final rendered transcript. On failure it is partial.
	Message string
}

// EventHandler receives notifications about decoder operations.
// All methods are called synchronously from the decoding goroutine;
// implementations should return quickly to avoid blocking decoding.
//
// Embed BaseEventHandler to implement only the events you care about.
type EventHandler interface {
	// OnStateChange is called when the lifecycle state changes.
	OnStateChange(event StateChangeEvent)

	// OnFrameDecoded is called after each frame is applied.
	OnFrameDecoded(event FrameDecodedEvent)

	// OnLineRejected is called when a malformed line is skipped.
	OnLineRejected(event LineRejectedEvent)

	// OnFinished is called once with the final decoded message.
	OnFinished(event FinishedEvent)
}

// BaseEventHandler provides no-op implementations of all EventHandler
// methods. Embed it to override only the events you need.
type BaseEventHandler struct{}

func (BaseEventHandler) OnStateChange(event StateChangeEvent)   {}
func (BaseEventHandler) OnFrameDecoded(event FrameDecodedEvent) {}
func (BaseEventHandler) OnLineRejected(event LineRejectedEvent) {}
func (BaseEventHandler) OnFinished(event FinishedEvent)         {}
