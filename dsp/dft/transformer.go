package dft

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-dft/dsp/core"
	"github.com/cwbudde/algo-dft/dsp/signal"
	"github.com/cwbudde/algo-vecmath"
	"go.uber.org/zap"
)

// ErrInvalidArgument is wrapped by every argument error in this package.
var ErrInvalidArgument = errors.New("dft: invalid argument")

// Transformer computes the DFT of one Signal and the per-bin sequences
// derived from it. Each sequence is computed on first access and cached.
//
// A Transformer must not be copied after first use.
type Transformer struct {
	sig *signal.Signal
	cfg config

	transform    lazy[[]complex128]
	amplitudes   lazy[[]float64]
	amplitudesDB lazy[[]float64]
	phases       lazy[[]float64]
	frequencies  lazy[[]float64]
}

// New creates a Transformer for sig. Nothing is computed until an accessor
// is called. The signal is referenced, not copied; Signal values are immutable.
func New(sig *signal.Signal, opts ...Option) (*Transformer, error) {
	if sig == nil {
		return nil, fmt.Errorf("%w: signal must not be nil", ErrInvalidArgument)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return &Transformer{sig: sig, cfg: cfg}, nil
}

// Signal returns the transformed signal.
func (t *Transformer) Signal() *signal.Signal { return t.sig }

// Method returns the configured evaluation method.
func (t *Transformer) Method() Method { return t.cfg.method }

// PhaseMode returns the configured phase formula.
func (t *Transformer) PhaseMode() PhaseMode { return t.cfg.phaseMode }

// Len returns the number of frequency bins, equal to the number of samples.
func (t *Transformer) Len() int { return t.sig.NumberOfSamples() }

// Transform returns the N complex frequency bins X[0..N-1].
func (t *Transformer) Transform() []complex128 {
	return append([]complex128(nil), t.bins()...)
}

// Amplitudes returns |X[k]| = sqrt(Re^2 + Im^2) for every bin.
func (t *Transformer) Amplitudes() []float64 {
	return clone(t.amplitudeValues())
}

// AmplitudesDB returns 20*log10(|X[k]|) for every bin. Bins with zero
// amplitude are -Inf.
func (t *Transformer) AmplitudesDB() []float64 {
	return clone(t.amplitudeDBValues())
}

// Phases returns the phase of every bin in degrees using the configured
// [PhaseMode]. See the package documentation for the limits of [PhaseRatio].
func (t *Transformer) Phases() []float64 {
	return clone(t.phaseValues())
}

// Frequencies returns the bin frequencies k*SampleRate/N in Hz.
//
// Bins above N/2 are the negative-frequency aliases of a real signal.
func (t *Transformer) Frequencies() []float64 {
	return clone(t.frequencyValues())
}

func (t *Transformer) bins() []complex128 {
	return t.transform.get(func() []complex128 {
		var (
			out     []complex128
			backend string
		)
		switch t.cfg.method {
		case MethodFFT:
			out, backend = fastTransform(t.sig.Samples(), t.cfg.logger)
		default:
			out, backend = naiveTransform(t.sig), MethodNaive.String()
		}
		t.logComputed("transform", zap.String("backend", backend))
		return out
	})
}

func (t *Transformer) amplitudeValues() []float64 {
	return t.amplitudes.get(func() []float64 {
		bins := t.bins()
		re := make([]float64, len(bins))
		im := make([]float64, len(bins))
		for i, c := range bins {
			re[i] = real(c)
			im[i] = imag(c)
		}

		out := make([]float64, len(bins))
		vecmath.Magnitude(out, re, im)
		t.logComputed("amplitudes")
		return out
	})
}

func (t *Transformer) amplitudeDBValues() []float64 {
	return t.amplitudesDB.get(func() []float64 {
		amps := t.amplitudeValues()
		out := make([]float64, len(amps))
		for i, a := range amps {
			out[i] = core.AmplitudeToDB(a)
		}
		t.logComputed("amplitudes_db")
		return out
	})
}

func (t *Transformer) phaseValues() []float64 {
	return t.phases.get(func() []float64 {
		bins := t.bins()
		out := make([]float64, len(bins))
		for i, c := range bins {
			out[i] = phaseDegrees(c, t.cfg.phaseMode)
		}
		t.logComputed("phases", zap.Stringer("phase_mode", t.cfg.phaseMode))
		return out
	})
}

func (t *Transformer) frequencyValues() []float64 {
	return t.frequencies.get(func() []float64 {
		n := t.sig.NumberOfSamples()
		fs := t.sig.SampleRate()
		out := make([]float64, n)
		for k := range out {
			out[k] = float64(k) * fs / float64(n)
		}
		t.logComputed("frequencies")
		return out
	})
}

func (t *Transformer) logComputed(quantity string, fields ...zap.Field) {
	if ce := t.cfg.logger.Check(zap.DebugLevel, "dft computed"); ce != nil {
		ce.Write(append([]zap.Field{
			zap.String("quantity", quantity),
			zap.Int("n", t.sig.NumberOfSamples()),
			zap.Stringer("method", t.cfg.method),
		}, fields...)...)
	}
}

// phaseDegrees returns the phase of c in degrees.
func phaseDegrees(c complex128, mode PhaseMode) float64 {
	if mode == PhaseQuadrant {
		return math.Atan2(imag(c), real(c)) * 180 / math.Pi
	}
	// Division by a zero real part yields +/-Inf (+/-90 degrees) or NaN.
	return math.Atan(imag(c)/real(c)) * 180 / math.Pi
}

func clone(in []float64) []float64 {
	return append([]float64(nil), in...)
}
