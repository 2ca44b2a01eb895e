package dft

import (
	"errors"
	"strings"
	"testing"

	"github.com/cwbudde/algo-dft/internal/testutil"
)

func TestParseRepresentation(t *testing.T) {
	tests := []struct {
		in   string
		want Representation
	}{
		{in: "AMPLITUDE", want: Amplitude},
		{in: "amplitude_db", want: AmplitudeDB},
		{in: " Phase ", want: Phase},
	}

	for _, tt := range tests {
		got, err := ParseRepresentation(tt.in)
		if err != nil {
			t.Fatalf("ParseRepresentation(%q) error = %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseRepresentation(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	for _, r := range Representations() {
		got, err := ParseRepresentation(r.String())
		if err != nil || got != r {
			t.Fatalf("round trip of %v = %v, %v", r, got, err)
		}
	}
}

func TestParseRepresentationInvalid(t *testing.T) {
	_, err := ParseRepresentation("SPECTROGRAM")
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("error = %v, want ErrInvalidArgument", err)
	}
	msg := err.Error()
	for _, want := range []string{"SPECTROGRAM", "AMPLITUDE", "AMPLITUDE_DB", "PHASE"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("error %q does not mention %s", msg, want)
		}
	}
}

func TestValues(t *testing.T) {
	tr := newTransformer(t, testutil.DeterministicNoise(9, 1, 16), 16)

	tests := []struct {
		rep  Representation
		want []float64
	}{
		{rep: Amplitude, want: tr.Amplitudes()},
		{rep: AmplitudeDB, want: tr.AmplitudesDB()},
		{rep: Phase, want: tr.Phases()},
	}
	for _, tt := range tests {
		got, err := tr.Values(tt.rep)
		if err != nil {
			t.Fatalf("Values(%v) error = %v", tt.rep, err)
		}
		testutil.RequireBitIdentical(t, got, tt.want)
	}
}

func TestValuesInvalidSelector(t *testing.T) {
	tr := newTransformer(t, []float64{1, 2}, 2)

	got, err := tr.Values(Representation(42))
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("error = %v, want ErrInvalidArgument", err)
	}
	if got != nil {
		t.Fatalf("Values() = %v, want nil", got)
	}
	if msg := err.Error(); !strings.Contains(msg, "Representation(42)") || !strings.Contains(msg, validRepresentations) {
		t.Fatalf("error %q should name the selector and the valid set", msg)
	}
}
