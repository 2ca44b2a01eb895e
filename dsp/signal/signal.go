// Package signal holds finite, uniformly sampled real signals and
// deterministic generators for them.
package signal

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidArgument is wrapped by every construction error in this package.
var ErrInvalidArgument = errors.New("signal: invalid argument")

// Signal is an immutable sequence of real time-domain samples taken at a
// fixed sample rate.
type Signal struct {
	samples    []float64
	sampleRate float64
}

// New creates a Signal from samples taken at sampleRate Hz.
//
// The samples are copied. samples must not be empty and sampleRate must be
// finite and > 0.
func New(samples []float64, sampleRate float64) (*Signal, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("%w: samples must not be empty", ErrInvalidArgument)
	}
	if err := validateSampleRate(sampleRate); err != nil {
		return nil, err
	}

	return &Signal{
		samples:    append([]float64(nil), samples...),
		sampleRate: sampleRate,
	}, nil
}

func validateSampleRate(sampleRate float64) error {
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return fmt.Errorf("%w: sample rate must be > 0: %v", ErrInvalidArgument, sampleRate)
	}
	return nil
}

// Samples returns a copy of the time-domain samples.
func (s *Signal) Samples() []float64 {
	return append([]float64(nil), s.samples...)
}

// At returns the sample at index i.
func (s *Signal) At(i int) float64 { return s.samples[i] }

// SampleRate returns the sample rate in Hz.
func (s *Signal) SampleRate() float64 { return s.sampleRate }

// NumberOfSamples returns the sample count. It is always >= 1.
func (s *Signal) NumberOfSamples() int { return len(s.samples) }

// Duration returns the covered time span in seconds, NumberOfSamples/SampleRate.
func (s *Signal) Duration() float64 {
	return float64(len(s.samples)) / s.sampleRate
}

// Times returns the sample instants i/SampleRate in seconds.
func (s *Signal) Times() []float64 {
	out := make([]float64, len(s.samples))
	for i := range out {
		out[i] = float64(i) / s.sampleRate
	}
	return out
}
