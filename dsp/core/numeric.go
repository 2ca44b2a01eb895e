package core

import "math"

const defaultEpsilon = 1e-12

// NearlyEqual reports whether a and b are equal within eps.
//
// The comparison is absolute for values near zero and relative otherwise.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// AmplitudeToDB converts a linear amplitude to dB (20*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func AmplitudeToDB(amplitude float64) float64 {
	if amplitude < 0 {
		return math.NaN()
	}

	if amplitude == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(amplitude)
}

// DBToAmplitude converts dB to a linear amplitude (20*log10 convention).
// DBToAmplitude(math.Inf(-1)) is 0.
func DBToAmplitude(db float64) float64 {
	return math.Pow(10, db/20)
}
