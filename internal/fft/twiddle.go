package fft

import (
	"math"

	"github.com/cwbudde/streamfft/internal/fixed"
)

// Twiddle ROM: W_256^k = cos(-2*pi*k/256) + j*sin(-2*pi*k/256) for
// k = 0..127, converted to Q16.16 by truncation toward zero. The tables
// are read-only for the lifetime of the process; ComputeTwiddleFactors
// regenerates identical values and a test pins the bit-for-bit match.
var twReal = [Half]int32{
	65536, 65516, 65457, 65358, 65220, 65043, 64826, 64571,
	64276, 63943, 63571, 63162, 62714, 62228, 61705, 61144,
	60547, 59913, 59243, 58538, 57797, 57022, 56212, 55368,
	54491, 53581, 52639, 51665, 50660, 49624, 48558, 47464,
	46340, 45189, 44011, 42806, 41575, 40319, 39039, 37736,
	36409, 35061, 33692, 32302, 30893, 29465, 28020, 26557,
	25079, 23586, 22078, 20557, 19024, 17479, 15923, 14359,
	12785, 11204, 9616, 8022, 6423, 4821, 3215, 1608,
	0, -1608, -3215, -4821, -6423, -8022, -9616, -11204,
	-12785, -14359, -15923, -17479, -19024, -20557, -22078, -23586,
	-25079, -26557, -28020, -29465, -30893, -32302, -33692, -35061,
	-36409, -37736, -39039, -40319, -41575, -42806, -44011, -45189,
	-46340, -47464, -48558, -49624, -50660, -51665, -52639, -53581,
	-54491, -55368, -56212, -57022, -57797, -58538, -59243, -59913,
	-60547, -61144, -61705, -62228, -62714, -63162, -63571, -63943,
	-64276, -64571, -64826, -65043, -65220, -65358, -65457, -65516,
}

var twImag = [Half]int32{
	0, -1608, -3215, -4821, -6423, -8022, -9616, -11204,
	-12785, -14359, -15923, -17479, -19024, -20557, -22078, -23586,
	-25079, -26557, -28020, -29465, -30893, -32302, -33692, -35061,
	-36409, -37736, -39039, -40319, -41575, -42806, -44011, -45189,
	-46340, -47464, -48558, -49624, -50660, -51665, -52639, -53581,
	-54491, -55368, -56212, -57022, -57797, -58538, -59243, -59913,
	-60547, -61144, -61705, -62228, -62714, -63162, -63571, -63943,
	-64276, -64571, -64826, -65043, -65220, -65358, -65457, -65516,
	-65536, -65516, -65457, -65358, -65220, -65043, -64826, -64571,
	-64276, -63943, -63571, -63162, -62714, -62228, -61705, -61144,
	-60547, -59913, -59243, -58538, -57797, -57022, -56212, -55368,
	-54491, -53581, -52639, -51665, -50660, -49624, -48558, -47464,
	-46340, -45189, -44011, -42806, -41575, -40319, -39039, -37736,
	-36409, -35061, -33692, -32302, -30893, -29465, -28020, -26557,
	-25079, -23586, -22078, -20557, -19024, -17479, -15923, -14359,
	-12785, -11204, -9616, -8022, -6423, -4821, -3215, -1608,
}

// Twiddle returns the ROM entry for index k in [0, Half).
func Twiddle(k int) (re, im int32) {
	return twReal[k], twImag[k]
}

// ComputeTwiddleFactors regenerates the twiddle tables from the
// analytical formula. The engine never calls this at runtime; it exists
// so the embedded ROM's provenance stays checkable.
func ComputeTwiddleFactors() (re, im [Half]int32) {
	for k := 0; k < Half; k++ {
		angle := -2.0 * math.Pi * float64(k) / float64(Size)
		re[k] = fixed.FromFloat64(math.Cos(angle))
		im[k] = fixed.FromFloat64(math.Sin(angle))
	}

	return re, im
}
