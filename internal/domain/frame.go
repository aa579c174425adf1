package domain

import "fmt"

// Wire tokens of the PRT-7 line grammar.
const (
	prefixData     = "L,"
	prefixRemap    = "M,"
	terminatorLine = "END"
	spaceLiteral   = "Space"
)

// FrameKind identifies which instruction a Frame carries. The set is closed:
// every consumer switches over it exhaustively and treats FrameInvalid as
// the only non-instruction kind.
type FrameKind int

const (
	// FrameInvalid marks a line that failed to parse. It carries no
	// instruction and must never reach the rotor or the transcript.
	FrameInvalid FrameKind = iota

	// FrameData carries one symbol to substitute and append.
	FrameData

	// FrameRemap carries a signed rotation for the rotor.
	FrameRemap

	// FrameTerminate ends the stream; the transcript is complete.
	FrameTerminate
)

// String returns a human-readable name for the frame kind.
func (k FrameKind) String() string {
	switch k {
	case FrameData:
		return "data"
	case FrameRemap:
		return "remap"
	case FrameTerminate:
		return "terminate"
	default:
		return "invalid"
	}
}

// Frame is one decoded PRT-7 instruction. Exactly one payload field is
// meaningful per kind: Symbol for FrameData, Delta for FrameRemap, neither
// for FrameTerminate. Raw always preserves the wire line the frame was
// parsed from.
//
// Delta is stored reduced modulo the alphabet size, so it is always in
// (-26, 26) regardless of the magnitude written on the wire; Raw keeps the
// original text for reporting.
type Frame struct {
	Kind   FrameKind
	Symbol byte
	Delta  int
	Raw    string
}

// String returns a compact description of the frame for logs.
func (f Frame) String() string {
	switch f.Kind {
	case FrameData:
		return fmt.Sprintf("data(%q)", f.Symbol)
	case FrameRemap:
		return fmt.Sprintf("remap(%+d)", f.Delta)
	case FrameTerminate:
		return "terminate"
	default:
		return fmt.Sprintf("invalid(%q)", f.Raw)
	}
}

// ParseFrame decodes a single wire line into a Frame.
//
// The PRT-7 line grammar:
//
//	L,<c>    data frame carrying the single character <c>
//	L,Space  data frame carrying one space character
//	M,<n>    remap frame rotating the rotor by the signed decimal integer <n>
//	END      terminator frame
//
// Lines matching none of these forms yield a FrameInvalid frame and an
// error wrapping ErrMalformedFrame. A malformed line is recoverable: it
// carries no instruction, so skipping it leaves decoding state untouched.
func ParseFrame(line string) (Frame, error) {
	switch {
	case line == terminatorLine:
		return Frame{Kind: FrameTerminate, Raw: line}, nil

	case len(line) >= len(prefixData) && line[:len(prefixData)] == prefixData:
		return parseData(line)

	case len(line) >= len(prefixRemap) && line[:len(prefixRemap)] == prefixRemap:
		return parseRemap(line)

	case line == "":
		return Frame{Kind: FrameInvalid, Raw: line}, fmt.Errorf("%w: empty line", ErrMalformedFrame)

	default:
		return Frame{Kind: FrameInvalid, Raw: line}, fmt.Errorf("%w: unknown frame type in %q", ErrMalformedFrame, line)
	}
}

// parseData handles the L, form. The payload must be exactly one character,
// or the literal keyword Space standing in for ' '. The keyword is
// case-sensitive: "space" is a five-character payload, hence malformed.
func parseData(line string) (Frame, error) {
	payload := line[len(prefixData):]
	switch {
	case payload == spaceLiteral:
		return Frame{Kind: FrameData, Symbol: ' ', Raw: line}, nil
	case len(payload) == 1:
		return Frame{Kind: FrameData, Symbol: payload[0], Raw: line}, nil
	case payload == "":
		return Frame{Kind: FrameInvalid, Raw: line}, fmt.Errorf("%w: data frame %q has no payload", ErrMalformedFrame, line)
	default:
		return Frame{Kind: FrameInvalid, Raw: line}, fmt.Errorf("%w: data payload in %q must be one character or %q", ErrMalformedFrame, line, spaceLiteral)
	}
}

// parseRemap handles the M, form. The payload is a decimal integer with an
// optional leading minus; an explicit plus is not part of the grammar. The
// value accumulates modulo the alphabet size digit by digit, so deltas of
// any written magnitude reduce without overflow.
func parseRemap(line string) (Frame, error) {
	payload := line[len(prefixRemap):]
	digits := payload
	negative := false
	if len(digits) > 0 && digits[0] == '-' {
		negative = true
		digits = digits[1:]
	}
	if digits == "" {
		return Frame{Kind: FrameInvalid, Raw: line}, fmt.Errorf("%w: remap frame %q has no delta", ErrMalformedFrame, line)
	}

	delta := 0
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		if c < '0' || c > '9' {
			return Frame{Kind: FrameInvalid, Raw: line}, fmt.Errorf("%w: remap delta in %q is not a decimal integer", ErrMalformedFrame, line)
		}
		delta = (delta*10 + int(c-'0')) % alphabetSize
	}
	if negative {
		delta = -delta
	}
	return Frame{Kind: FrameRemap, Delta: delta, Raw: line}, nil
}
