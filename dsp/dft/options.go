package dft

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Method selects how the transform is evaluated.
type Method int

const (
	// MethodNaive evaluates the direct O(N^2) summation.
	MethodNaive Method = iota
	// MethodFFT evaluates the transform with an FFT backend.
	MethodFFT
)

func (m Method) String() string {
	switch m {
	case MethodNaive:
		return "naive"
	case MethodFFT:
		return "fft"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod parses "naive" or "fft", ignoring case.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "naive":
		return MethodNaive, nil
	case "fft":
		return MethodFFT, nil
	default:
		return 0, fmt.Errorf("%w: method must be one of naive, fft: %q", ErrInvalidArgument, s)
	}
}

// PhaseMode selects the phase formula.
type PhaseMode int

const (
	// PhaseRatio computes atan(Im/Re) in degrees.
	PhaseRatio PhaseMode = iota
	// PhaseQuadrant computes atan2(Im, Re) in degrees.
	PhaseQuadrant
)

func (p PhaseMode) String() string {
	switch p {
	case PhaseRatio:
		return "ratio"
	case PhaseQuadrant:
		return "quadrant"
	default:
		return fmt.Sprintf("PhaseMode(%d)", int(p))
	}
}

// Option configures a Transformer.
type Option func(*config)

type config struct {
	method    Method
	phaseMode PhaseMode
	logger    *zap.Logger
}

func defaultConfig() config {
	return config{
		method:    MethodNaive,
		phaseMode: PhaseRatio,
		logger:    zap.NewNop(),
	}
}

// WithMethod selects the transform evaluation method. Unknown methods are ignored.
func WithMethod(m Method) Option {
	return func(cfg *config) {
		if m == MethodNaive || m == MethodFFT {
			cfg.method = m
		}
	}
}

// WithPhaseMode selects the phase formula. Unknown modes are ignored.
func WithPhaseMode(p PhaseMode) Option {
	return func(cfg *config) {
		if p == PhaseRatio || p == PhaseQuadrant {
			cfg.phaseMode = p
		}
	}
}

// WithLogger sets the logger used to report computed quantities.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}
