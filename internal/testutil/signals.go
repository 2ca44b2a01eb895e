package testutil

import (
	"math/rand"
	"testing"

	"github.com/cwbudde/algo-dft/dsp/signal"
)

// MustSignal builds a Signal or fails t.
func MustSignal(t testing.TB, samples []float64, sampleRate float64) *signal.Signal {
	t.Helper()
	s, err := signal.New(samples, sampleRate)
	if err != nil {
		t.Fatalf("signal.New: %v", err)
	}
	return s
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}
