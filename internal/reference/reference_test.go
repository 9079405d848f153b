package reference

import (
	"math"
	"testing"
)

func TestFFTImpulse(t *testing.T) {
	t.Parallel()

	const n = 256

	re := make([]float64, n)
	im := make([]float64, n)
	re[0] = 1

	coeffs := FFT(re, im)

	for k, c := range coeffs {
		if math.Abs(real(c)-1) > 1e-12 || math.Abs(imag(c)) > 1e-12 {
			t.Fatalf("bin %d = %v, want 1+0i", k, c)
		}
	}
}

func TestFFTTonePeak(t *testing.T) {
	t.Parallel()

	const (
		n   = 256
		bin = 10
	)

	re := make([]float64, n)
	im := make([]float64, n)
	for i := range re {
		re[i] = math.Sin(2 * math.Pi * bin * float64(i) / n)
	}

	mags := Magnitudes(FFT(re, im))

	peakBin, peakMag := Peak(mags)
	if peakBin != bin && peakBin != n-bin {
		t.Fatalf("peak at bin %d, want %d or %d", peakBin, bin, n-bin)
	}

	if math.Abs(peakMag-n/2) > 1e-9 {
		t.Fatalf("peak magnitude %v, want %v", peakMag, float64(n)/2)
	}
}
