package dft

import (
	"fmt"
	"strings"
)

// Representation selects one of the per-bin sequences handed to a plot.
// The bin frequencies are always the x-axis.
type Representation int

const (
	// Amplitude selects [Transformer.Amplitudes].
	Amplitude Representation = iota
	// AmplitudeDB selects [Transformer.AmplitudesDB].
	AmplitudeDB
	// Phase selects [Transformer.Phases].
	Phase
)

const validRepresentations = "AMPLITUDE, AMPLITUDE_DB, PHASE"

// Representations lists every valid Representation.
func Representations() []Representation {
	return []Representation{Amplitude, AmplitudeDB, Phase}
}

func (r Representation) String() string {
	switch r {
	case Amplitude:
		return "AMPLITUDE"
	case AmplitudeDB:
		return "AMPLITUDE_DB"
	case Phase:
		return "PHASE"
	default:
		return fmt.Sprintf("Representation(%d)", int(r))
	}
}

// ParseRepresentation parses AMPLITUDE, AMPLITUDE_DB or PHASE, ignoring case.
func ParseRepresentation(s string) (Representation, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "AMPLITUDE":
		return Amplitude, nil
	case "AMPLITUDE_DB":
		return AmplitudeDB, nil
	case "PHASE":
		return Phase, nil
	default:
		return 0, fmt.Errorf("%w: representation must be one of %s: %q", ErrInvalidArgument, validRepresentations, s)
	}
}

// Values returns the sequence selected by rep.
func (t *Transformer) Values(rep Representation) ([]float64, error) {
	switch rep {
	case Amplitude:
		return t.Amplitudes(), nil
	case AmplitudeDB:
		return t.AmplitudesDB(), nil
	case Phase:
		return t.Phases(), nil
	default:
		return nil, fmt.Errorf("%w: representation must be one of %s: %s", ErrInvalidArgument, validRepresentations, rep)
	}
}
