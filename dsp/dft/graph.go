package dft

import (
	"gonum.org/v1/gonum/floats"
)

// Graph is a spectrum on the centred frequency axis ]-SampleRate/2, SampleRate/2].
type Graph struct {
	Representation Representation
	Frequencies    []float64
	Values         []float64
}

// Graph folds the sequence selected by rep onto the centred axis.
//
// For i in [-N/2, N/2] (integer division) the point is
// (i*SampleRate/N, values[|i|]). Negative offsets read the positive bin of
// the same magnitude, which is exact for the amplitude of a real signal.
// For [Phase] the negative-frequency points repeat the positive bin's phase
// rather than its negation, so the phase graph is mirrored, not odd.
func (t *Transformer) Graph(rep Representation) (Graph, error) {
	values, err := t.Values(rep)
	if err != nil {
		return Graph{}, err
	}

	n := t.sig.NumberOfSamples()
	fs := t.sig.SampleRate()
	half := n / 2

	g := Graph{
		Representation: rep,
		Frequencies:    make([]float64, 0, 2*half+1),
		Values:         make([]float64, 0, 2*half+1),
	}
	for i := -half; i <= half; i++ {
		idx := i
		if idx < 0 {
			idx = -idx
		}
		g.Frequencies = append(g.Frequencies, float64(i)*fs/float64(n))
		g.Values = append(g.Values, values[idx])
	}
	return g, nil
}

// Peak describes the strongest bin of the one-sided spectrum.
type Peak struct {
	Bin       int
	Frequency float64
	Amplitude float64
}

// Peak returns the bin with the largest amplitude among bins 0..N/2. Ties
// resolve to the lowest bin.
func (t *Transformer) Peak() Peak {
	amps := t.amplitudeValues()
	half := amps[:len(amps)/2+1]
	bin := floats.MaxIdx(half)

	return Peak{
		Bin:       bin,
		Frequency: t.frequencyValues()[bin],
		Amplitude: amps[bin],
	}
}
