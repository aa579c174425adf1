package domain

import "testing"

func TestNewRotor(t *testing.T) {
	r := NewRotor()

	if r == nil {
		t.Fatal("NewRotor returned nil")
	}
	if r.Shift() != 0 {
		t.Errorf("initial shift = %d, want 0", r.Shift())
	}
}

func TestRotor_Map_NeutralIsIdentity(t *testing.T) {
	r := NewRotor()

	for i := 0; i < len(alphabet); i++ {
		if got := r.Map(alphabet[i]); got != alphabet[i] {
			t.Errorf("Map(%q) at shift 0 = %q, want %q", alphabet[i], got, alphabet[i])
		}
	}
}

func TestRotor_Map_AfterRotate(t *testing.T) {
	tests := []struct {
		name  string
		delta int
		in    byte
		want  byte
	}{
		{"shift two maps A to C", 2, 'A', 'C'},
		{"shift two maps W to Y", 2, 'W', 'Y'},
		{"shift two wraps Y to A", 2, 'Y', 'A'},
		{"shift two wraps Z to B", 2, 'Z', 'B'},
		{"shift one maps Z to A", 1, 'Z', 'A'},
		{"negative shift maps A to Z", -1, 'A', 'Z'},
		{"negative shift maps C to A", -2, 'C', 'A'},
		{"large delta reduces modulo ring", 28, 'A', 'C'},
		{"large negative delta reduces modulo ring", -27, 'B', 'A'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRotor()
			r.Rotate(tt.delta)

			if got := r.Map(tt.in); got != tt.want {
				t.Errorf("Map(%q) after Rotate(%d) = %q, want %q", tt.in, tt.delta, got, tt.want)
			}
		})
	}
}

func TestRotor_Map_FoldsLowercase(t *testing.T) {
	r := NewRotor()

	if got := r.Map('h'); got != 'H' {
		t.Errorf("Map('h') at shift 0 = %q, want 'H'", got)
	}

	r.Rotate(2)
	if got := r.Map('h'); got != 'J' {
		t.Errorf("Map('h') at shift 2 = %q, want 'J'", got)
	}
}

func TestRotor_Map_PassesNonLettersThrough(t *testing.T) {
	r := NewRotor()
	r.Rotate(13)

	for _, b := range []byte{' ', '0', '9', ',', '!', '.', '\t'} {
		if got := r.Map(b); got != b {
			t.Errorf("Map(%q) = %q, want %q unchanged", b, got, b)
		}
	}
}

func TestRotor_Rotate_Accumulates(t *testing.T) {
	r := NewRotor()

	r.Rotate(2)
	r.Rotate(3)
	if r.Shift() != 5 {
		t.Errorf("shift after Rotate(2)+Rotate(3) = %d, want 5", r.Shift())
	}

	r.Rotate(-5)
	if r.Shift() != 0 {
		t.Errorf("shift after rotating back = %d, want 0", r.Shift())
	}
}

func TestRotor_Rotate_FullRevolutionIsIdentity(t *testing.T) {
	tests := []struct {
		name  string
		delta int
	}{
		{"one revolution forward", 26},
		{"two revolutions forward", 52},
		{"one revolution backward", -26},
		{"many revolutions backward", -260},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRotor()
			r.Rotate(tt.delta)

			if r.Shift() != 0 {
				t.Errorf("shift after Rotate(%d) = %d, want 0", tt.delta, r.Shift())
			}
			if got := r.Map('A'); got != 'A' {
				t.Errorf("Map('A') after Rotate(%d) = %q, want 'A'", tt.delta, got)
			}
		})
	}
}

func TestRotor_Shift_StaysInRange(t *testing.T) {
	r := NewRotor()

	for _, delta := range []int{7, -20, 55, -3, -100, 1} {
		r.Rotate(delta)
		if s := r.Shift(); s < 0 || s >= alphabetSize {
			t.Fatalf("shift = %d after Rotate(%d), want value in [0, %d)", s, delta, alphabetSize)
		}
	}
}
