package dft

import (
	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/mjibson/go-dsp/fft"
	"go.uber.org/zap"
)

const (
	backendAlgoFFT = "algo-fft"
	backendGoDSP   = "go-dsp"
)

// fastTransform evaluates the DFT of samples with an FFT. Power-of-two
// lengths use an algo-fft plan; every other length, and any plan failure,
// falls back to go-dsp which handles arbitrary sizes.
func fastTransform(samples []float64, logger *zap.Logger) ([]complex128, string) {
	n := len(samples)
	if isPowerOf2(n) {
		out, err := planTransform(samples)
		if err == nil {
			return out, backendAlgoFFT
		}
		logger.Debug("algo-fft plan failed, using go-dsp", zap.Int("n", n), zap.Error(err))
	}

	return fft.FFTReal(samples), backendGoDSP
}

func planTransform(samples []float64) ([]complex128, error) {
	plan, err := algofft.NewPlan64(len(samples))
	if err != nil {
		return nil, err
	}

	in := make([]complex128, len(samples))
	for i, v := range samples {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, len(samples))
	if err := plan.Forward(out, in); err != nil {
		return nil, err
	}
	return out, nil
}

func isPowerOf2(n int) bool {
	return n > 1 && n&(n-1) == 0
}
