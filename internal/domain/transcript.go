package domain

// Transcript is the append-only buffer the decoded message assembles in.
// Symbols arrive one at a time, already substituted through the rotor, and
// are kept in arrival order. Nothing ever removes or reorders a symbol;
// Reset discards the whole transcript at once for reuse across sessions.
//
// A Transcript is not safe for concurrent use.
type Transcript struct {
	symbols []byte
}

// NewTranscript returns an empty transcript.
func NewTranscript() *Transcript {
	return &Transcript{symbols: make([]byte, 0, 64)}
}

// Append adds one decoded symbol to the end of the transcript.
func (t *Transcript) Append(b byte) {
	t.symbols = append(t.symbols, b)
}

// Render returns the assembled message: every appended symbol, in order.
func (t *Transcript) Render() string {
	return string(t.symbols)
}

// Len reports how many symbols have been appended.
func (t *Transcript) Len() int {
	return len(t.symbols)
}

// Empty reports whether no symbols have been appended yet.
func (t *Transcript) Empty() bool {
	return len(t.symbols) == 0
}

// Reset discards all accumulated symbols, keeping the underlying capacity.
func (t *Transcript) Reset() {
	t.symbols = t.symbols[:0]
}
