// Package dft computes the Discrete Fourier Transform of a real signal by
// direct summation and derives per-bin amplitude, amplitude in dB, phase and
// frequency sequences from it.
//
// The transform is the textbook O(N^2) definition
//
//	X[k] = sum_{n=0}^{N-1} x[n] * (cos(-2*pi*k*n/N) + i*sin(-2*pi*k*n/N))
//
// evaluated with k in the outer loop and n increasing in the inner loop.
// [WithMethod] with [MethodFFT] selects an FFT backend instead; its output
// matches the direct sum within floating-point tolerance.
//
// Every derived sequence is computed on first access and cached for the
// lifetime of the [Transformer]. Accessors are safe for concurrent use.
//
// # Numeric edge cases
//
// A bin with zero amplitude has an amplitude of -Inf dB. This is a value,
// not an error. Amplitudes are evaluated as sqrt(Re*Re + Im*Im), so a bin
// whose components are both below roughly 1.5e-162, such as 3e-170+4e-170i,
// underflows to an amplitude of exactly 0 and therefore also reports -Inf dB.
//
// [PhaseRatio], the default phase mode, evaluates atan(Im/Re). It cannot tell
// quadrants apart, so results are confined to [-90, 90] degrees: a bin at
// -1+1i reports -45 instead of 135. Re == 0 yields +/-90 degrees and a bin
// that is exactly zero yields NaN. [PhaseQuadrant] uses atan2(Im, Re) and
// reports the full (-180, 180] range.
package dft
