package dft

import (
	"testing"

	"github.com/cwbudde/algo-dft/internal/testutil"
)

func BenchmarkTransform(b *testing.B) {
	sizes := []struct {
		name string
		size int
	}{
		{"64", 64},
		{"256", 256},
		{"1K", 1024},
	}

	methods := []Method{MethodNaive, MethodFFT}

	for _, testCase := range sizes {
		sig := testutil.MustSignal(b, testutil.DeterministicNoise(1, 1, testCase.size), 48000)
		for _, m := range methods {
			b.Run(testCase.name+"/"+m.String(), func(b *testing.B) {
				b.SetBytes(int64(testCase.size * 8))
				b.ResetTimer()

				for range b.N {
					tr, err := New(sig, WithMethod(m))
					if err != nil {
						b.Fatal(err)
					}
					_ = tr.Transform()
				}
			})
		}
	}
}
