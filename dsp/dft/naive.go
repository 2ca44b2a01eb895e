package dft

import (
	"math"

	"github.com/cwbudde/algo-dft/dsp/signal"
)

// naiveTransform evaluates the DFT of sig by direct summation.
func naiveTransform(sig *signal.Signal) []complex128 {
	n := sig.NumberOfSamples()
	out := make([]complex128, n)
	fn := float64(n)

	for k := range n {
		var sumRe, sumIm float64
		fk := float64(k)
		for i := range n {
			sin, cos := math.Sincos(-2 * math.Pi * fk * float64(i) / fn)
			x := sig.At(i)
			sumRe += x * cos
			sumIm += x * sin
		}
		out[k] = complex(sumRe, sumIm)
	}

	return out
}
