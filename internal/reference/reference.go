// Package reference provides a double-precision FFT used to bound the
// fixed-point engine's error in tests and diagnostic tooling. It is not
// part of the transform path.
package reference

import (
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
)

// FFT computes the unscaled DFT of a complex frame in double precision
// using gonum. The input slices must have equal length.
func FFT(re, im []float64) []complex128 {
	n := len(re)

	samples := make([]complex128, n)
	for i := range samples {
		samples[i] = complex(re[i], im[i])
	}

	return fourier.NewCmplxFFT(n).Coefficients(nil, samples)
}

// Magnitudes returns the per-bin magnitudes of a spectrum.
func Magnitudes(coeffs []complex128) []float64 {
	mags := make([]float64, len(coeffs))
	for i, c := range coeffs {
		mags[i] = cmplx.Abs(c)
	}

	return mags
}

// Peak returns the largest magnitude in mags and its bin index.
func Peak(mags []float64) (bin int, mag float64) {
	for i, m := range mags {
		if m > mag {
			bin, mag = i, m
		}
	}

	return bin, mag
}
