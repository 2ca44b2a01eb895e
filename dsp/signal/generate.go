package signal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-dft/dsp/core"
)

// Generator creates deterministic signals from a shared configuration.
type Generator struct {
	cfg  core.ProcessorConfig
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return &Generator{
		cfg:  core.ApplyProcessorOptions(opts...),
		seed: 1,
	}
}

// NewGeneratorWithOptions creates a configured signal generator with signal-specific options.
func NewGeneratorWithOptions(coreOpts []core.ProcessorOption, opts ...Option) *Generator {
	g := NewGenerator(coreOpts...)
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// Seed returns the noise seed.
func (g *Generator) Seed() int64 { return g.seed }

// Cosine generates cos(2*pi*freqHz*t) sampled at t = i/SampleRate.
func (g *Generator) Cosine(freqHz float64, samples int) (*Signal, error) {
	return g.periodic("cosine", math.Cos, freqHz, samples)
}

// Sine generates sin(2*pi*freqHz*t) sampled at t = i/SampleRate.
func (g *Generator) Sine(freqHz float64, samples int) (*Signal, error) {
	return g.periodic("sine", math.Sin, freqHz, samples)
}

func (g *Generator) periodic(name string, fn func(float64) float64, freqHz float64, samples int) (*Signal, error) {
	if err := g.validate(name, samples); err != nil {
		return nil, err
	}
	out := make([]float64, samples)
	for i := range out {
		t := float64(i) / g.cfg.SampleRate
		out[i] = fn(2 * math.Pi * freqHz * t)
	}
	return New(out, g.cfg.SampleRate)
}

// Step generates a unit step that is 1 for start <= t < start+duration and 0
// elsewhere, with t = i/SampleRate in seconds.
func (g *Generator) Step(start, duration float64, samples int) (*Signal, error) {
	if err := g.validate("step", samples); err != nil {
		return nil, err
	}
	if duration < 0 || math.IsNaN(duration) {
		return nil, fmt.Errorf("%w: step duration must be >= 0: %v", ErrInvalidArgument, duration)
	}
	out := make([]float64, samples)
	end := start + duration
	for i := range out {
		t := float64(i) / g.cfg.SampleRate
		if t >= start && t < end {
			out[i] = 1
		}
	}
	return New(out, g.cfg.SampleRate)
}

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) (*Signal, error) {
	if err := g.validate("noise", samples); err != nil {
		return nil, err
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("%w: noise amplitude must be >= 0: %v", ErrInvalidArgument, amplitude)
	}
	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return New(out, g.cfg.SampleRate)
}

func (g *Generator) validate(name string, samples int) error {
	if samples <= 0 {
		return fmt.Errorf("%w: %s samples must be > 0: %d", ErrInvalidArgument, name, samples)
	}
	if err := g.cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %s %v", ErrInvalidArgument, name, err)
	}
	return nil
}
