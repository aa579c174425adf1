package app

import (
	"github.com/prt-labs/prtdecode/internal/domain"
	"github.com/prt-labs/prtdecode/internal/ports"
)

// Interpreter applies parsed frames to the rotor and transcript. It holds
// no decoding state of its own; the caller owns both collaborators and
// passes them in, which keeps the dispatch logic trivially testable.
type Interpreter struct {
	strict    bool
	logger    ports.Logger
	presenter ports.Presenter
}

// NewInterpreter creates an interpreter. In strict mode a malformed line is
// fatal; otherwise it is reported and skipped.
func NewInterpreter(strict bool, logger ports.Logger, presenter ports.Presenter) *Interpreter {
	return &Interpreter{
		strict:    strict,
		logger:    logger,
		presenter: presenter,
	}
}

// Process parses one wire line and applies its instruction.
//
// The returned values follow one contract:
//   - err == nil, cont == true: frame applied, keep reading
//   - err == nil, cont == false: terminator applied, stop cleanly
//   - err != nil, cont == true: malformed line reported and skipped
//   - err != nil, cont == false: malformed line in strict mode, stop
//
// A malformed line never touches the rotor or the transcript.
func (in *Interpreter) Process(line string, rotor *domain.Rotor, tr *domain.Transcript) (domain.Frame, bool, error) {
	frame, err := domain.ParseFrame(line)
	if err != nil {
		in.logger.Warn("rejected malformed line",
			ports.String("line", line),
			ports.Err(err),
		)
		if in.presenter != nil {
			in.presenter.OnLineRejected(line, err)
		}
		return frame, !in.strict, err
	}

	cont := true
	switch frame.Kind {
	case domain.FrameData:
		tr.Append(rotor.Map(frame.Symbol))
	case domain.FrameRemap:
		rotor.Rotate(frame.Delta)
	case domain.FrameTerminate:
		cont = false
	}

	in.logger.Debug("frame applied",
		ports.String("frame", frame.String()),
		ports.Int("shift", rotor.Shift()),
		ports.Int("transcript_len", tr.Len()),
	)
	if in.presenter != nil {
		in.presenter.OnFrameProcessed(frame, rotor.Shift(), tr.Render())
	}
	return frame, cont, nil
}
