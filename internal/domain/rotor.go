package domain

// alphabet is the cyclic symbol ring the rotor substitutes over. Its order
// is fixed for the lifetime of the process; rotation never reorders it.
const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// alphabetSize is the modulus for all rotor arithmetic.
const alphabetSize = len(alphabet)

// Rotor is the rotating substitution wheel at the heart of PRT-7 decoding.
// It maps each letter to the letter a fixed number of positions ahead on the
// ring. The mapping is total over A-Z and case-insensitive on input; bytes
// outside the alphabet pass through unchanged.
//
// A Rotor is a value with a single piece of state, the current shift. It is
// not safe for concurrent use; the decoder owns exactly one and drives it
// from a single goroutine.
type Rotor struct {
	shift int
}

// NewRotor returns a rotor at the neutral position: every letter maps to
// itself until the first Rotate.
func NewRotor() *Rotor {
	return &Rotor{}
}

// Rotate advances the rotor by delta positions. Negative deltas rotate
// backwards. The ring is cyclic, so any delta lands on one of the
// alphabetSize positions; a full revolution is the identity.
func (r *Rotor) Rotate(delta int) {
	r.shift = ((r.shift+delta)%alphabetSize + alphabetSize) % alphabetSize
}

// Map substitutes a single byte through the rotor at its current position.
// Letters are folded to uppercase before substitution, so the output
// alphabet is A-Z. Any byte outside A-Z and a-z is returned as-is.
func (r *Rotor) Map(b byte) byte {
	var pos int
	switch {
	case b >= 'A' && b <= 'Z':
		pos = int(b - 'A')
	case b >= 'a' && b <= 'z':
		pos = int(b - 'a')
	default:
		return b
	}
	return alphabet[(pos+r.shift)%alphabetSize]
}

// Shift reports the rotor's current offset in [0, alphabetSize).
func (r *Rotor) Shift() int {
	return r.shift
}
