// Command dftinfo generates a test signal, computes its DFT by direct
// summation and prints the spectrum on the centred frequency axis.
//
// Usage:
//
//	dftinfo [flags]
//
// Defaults come from DFT_* environment variables; flags override them.
//
// Examples:
//
//	dftinfo -signal cos -freq 15 -samples 32 -rate 120
//	dftinfo -signal step -start 0.5 -duration 1 -samples 200 -rate 100
//	dftinfo -graph amplitude_db -method fft
//	dftinfo -graph phase -quadrant
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-dft/dsp/core"
	"github.com/cwbudde/algo-dft/dsp/dft"
	"github.com/cwbudde/algo-dft/dsp/signal"
	"github.com/cwbudde/algo-dft/internal/config"
	"github.com/cwbudde/algo-dft/internal/logging"
	"go.uber.org/zap"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg := config.Load()

	fs := flag.NewFlagSet("dftinfo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.Signal, "signal", cfg.Signal, "signal type: cos, sin, step or noise")
	fs.Float64Var(&cfg.Frequency, "freq", cfg.Frequency, "cos/sin frequency in Hz")
	fs.IntVar(&cfg.Samples, "samples", cfg.Samples, "number of samples")
	fs.Float64Var(&cfg.SampleRate, "rate", cfg.SampleRate, "sample rate in Hz")
	fs.Float64Var(&cfg.StepStart, "start", cfg.StepStart, "step start in seconds")
	fs.Float64Var(&cfg.StepLength, "duration", cfg.StepLength, "step duration in seconds")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "noise seed")
	fs.StringVar(&cfg.Graph, "graph", cfg.Graph, "representation: amplitude, amplitude_db or phase")
	fs.StringVar(&cfg.Method, "method", cfg.Method, "transform method: naive or fft")
	fs.BoolVar(&cfg.Quadrant, "quadrant", cfg.Quadrant, "use quadrant-aware atan2 phases")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: dftinfo [flags]\n\n")
		fmt.Fprintf(stderr, "Prints the direct DFT of a generated signal on the centred frequency axis.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  dftinfo -signal cos -freq 15 -samples 32 -rate 120\n")
		fmt.Fprintf(stderr, "  dftinfo -signal step -start 0.5 -duration 1 -samples 200 -rate 100\n")
		fmt.Fprintf(stderr, "  dftinfo -graph phase -quadrant\n")
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogDev)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	rep, err := dft.ParseRepresentation(cfg.Graph)
	if err != nil {
		return err
	}
	method, err := dft.ParseMethod(cfg.Method)
	if err != nil {
		return err
	}

	sig, err := generate(cfg)
	if err != nil {
		return err
	}
	logger.Info("signal generated",
		zap.String("signal", cfg.Signal),
		zap.Int("samples", sig.NumberOfSamples()),
		zap.Float64("sample_rate", sig.SampleRate()),
	)

	phaseMode := dft.PhaseRatio
	if cfg.Quadrant {
		phaseMode = dft.PhaseQuadrant
	}
	tr, err := dft.New(sig,
		dft.WithMethod(method),
		dft.WithPhaseMode(phaseMode),
		dft.WithLogger(logger.Named("dft")),
	)
	if err != nil {
		return err
	}

	graph, err := tr.Graph(rep)
	if err != nil {
		return err
	}

	return printReport(stdout, tr, graph)
}

func generate(cfg config.Config) (*signal.Signal, error) {
	g := signal.NewGeneratorWithOptions(
		[]core.ProcessorOption{core.WithSampleRate(cfg.SampleRate)},
		signal.WithSeed(cfg.Seed),
	)

	switch strings.ToLower(strings.TrimSpace(cfg.Signal)) {
	case "cos", "cosine":
		return g.Cosine(cfg.Frequency, cfg.Samples)
	case "sin", "sine":
		return g.Sine(cfg.Frequency, cfg.Samples)
	case "step":
		return g.Step(cfg.StepStart, cfg.StepLength, cfg.Samples)
	case "noise":
		return g.WhiteNoise(1, cfg.Samples)
	default:
		return nil, fmt.Errorf("%w: signal must be one of cos, sin, step, noise: %q", signal.ErrInvalidArgument, cfg.Signal)
	}
}

func printReport(w io.Writer, tr *dft.Transformer, graph dft.Graph) error {
	sig := tr.Signal()
	peak := tr.Peak()

	if _, err := fmt.Fprintf(w, "samples=%d rate=%g Hz resolution=%g Hz method=%s phase=%s\n",
		sig.NumberOfSamples(), sig.SampleRate(), sig.SampleRate()/float64(sig.NumberOfSamples()),
		tr.Method(), tr.PhaseMode()); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	if _, err := fmt.Fprintf(w, "peak: bin %d at %.4f Hz, amplitude %.6f\n\n",
		peak.Bin, peak.Frequency, peak.Amplitude); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Frequency [Hz]\t%s\n--------------\t%s\n",
		graph.Representation, strings.Repeat("-", len(graph.Representation.String()))); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i := range graph.Values {
		if _, err := fmt.Fprintf(tw, "%.4f\t%.6f\n", graph.Frequencies[i], graph.Values[i]); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	return tw.Flush()
}
