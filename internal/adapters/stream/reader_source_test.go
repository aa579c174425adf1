package stream

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/prt-labs/prtdecode/internal/ports"
)

func readAll(t *testing.T, s *ReaderSource) []string {
	t.Helper()

	var lines []string
	for {
		line, err := s.Next(context.Background())
		if errors.Is(err, ports.ErrExhausted) {
			return lines
		}
		if err != nil {
			t.Fatalf("Next returned error: %v", err)
		}
		lines = append(lines, line)
	}
}

func TestReaderSource_Next(t *testing.T) {
	s := NewReaderSource(strings.NewReader("L,H\nM,2\nEND\n"))

	got := readAll(t, s)

	want := []string{"L,H", "M,2", "END"}
	if len(got) != len(want) {
		t.Fatalf("got %d lines %v, want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestReaderSource_Next_CRLF(t *testing.T) {
	s := NewReaderSource(strings.NewReader("L,H\r\nEND\r\n"))

	got := readAll(t, s)

	if len(got) != 2 || got[0] != "L,H" || got[1] != "END" {
		t.Errorf("lines = %v, want [L,H END]", got)
	}
}

func TestReaderSource_Next_UnterminatedFinalLine(t *testing.T) {
	s := NewReaderSource(strings.NewReader("L,H\nEND"))

	got := readAll(t, s)

	if len(got) != 2 || got[1] != "END" {
		t.Errorf("lines = %v, want trailing chunk as final line", got)
	}
}

func TestReaderSource_Next_EmptyInput(t *testing.T) {
	s := NewReaderSource(strings.NewReader(""))

	if _, err := s.Next(context.Background()); !errors.Is(err, ports.ErrExhausted) {
		t.Errorf("Next on empty input = %v, want ErrExhausted", err)
	}
}

func TestReaderSource_Next_ExhaustionIsSticky(t *testing.T) {
	s := NewReaderSource(strings.NewReader("L,A"))

	readAll(t, s)

	for i := 0; i < 3; i++ {
		if _, err := s.Next(context.Background()); !errors.Is(err, ports.ErrExhausted) {
			t.Fatalf("Next after exhaustion = %v, want ErrExhausted", err)
		}
	}
}

func TestReaderSource_Next_PreservesInteriorBlankLines(t *testing.T) {
	s := NewReaderSource(strings.NewReader("L,A\n\nL,B\n"))

	got := readAll(t, s)

	if len(got) != 3 || got[1] != "" {
		t.Errorf("lines = %v, want the blank line preserved", got)
	}
}

func TestReaderSource_Next_ContextCanceled(t *testing.T) {
	s := NewReaderSource(strings.NewReader("L,A\n"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.Next(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Next with canceled context = %v, want context.Canceled", err)
	}
}

func TestReaderSource_OpenClose(t *testing.T) {
	s := NewReaderSource(strings.NewReader("L,A\n"))

	if err := s.Open(context.Background()); err != nil {
		t.Errorf("Open returned error: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("Close returned error: %v", err)
	}
}
