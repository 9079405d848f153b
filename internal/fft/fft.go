// Package fft implements the 256-point radix-2 decimation-in-time FFT
// kernel over Q16.16 fixed-point samples: the bit-reversal permutation,
// the eight in-place butterfly stages, and the precomputed twiddle ROM.
package fft

import "github.com/cwbudde/streamfft/internal/fixed"

const (
	// Size is the transform length.
	Size = 256

	// Log2Size is the number of butterfly stages.
	Log2Size = 8

	// Half is the number of butterflies per stage and the twiddle ROM length.
	Half = Size / 2
)

// bitrev holds the bit-reversal permutation for 8-bit indices,
// built once at package load. bitrev[bitrev[i]] == i.
var bitrev = computeBitReversalIndices()

func computeBitReversalIndices() [Size]int {
	var table [Size]int
	for i := 0; i < Size; i++ {
		table[i] = reverseBits(i, Log2Size)
	}

	return table
}

// reverseBits reverses the lower 'bits' bits of x.
// Example: reverseBits(6, 3) = reverseBits(0b110, 3) = 0b011 = 3.
func reverseBits(x, bits int) int {
	result := 0
	for n := 0; n < bits; n++ {
		result = (result << 1) | (x & 1)
		x >>= 1
	}

	return result
}

// ReverseIndex returns the bit-reversed image of an 8-bit index.
func ReverseIndex(i int) int {
	return bitrev[i]
}

// Permute writes the bit-reversal permutation of src into dst:
// dst[bitrev(i)] = src[i] for both component buffers. All four slices
// must have length Size, and dst must not alias src.
func Permute(dstRe, dstIm, srcRe, srcIm []int32) {
	_ = dstRe[Size-1]
	_ = dstIm[Size-1]

	for i, rev := range bitrev {
		dstRe[rev] = srcRe[i]
		dstIm[rev] = srcIm[i]
	}
}

// Stages runs the eight radix-2 DIT butterfly stages in place over a
// bit-reversed buffer pair. Both slices must have length Size.
//
// Stage s pairs elements half = 1<<s apart and steps the twiddle ROM by
// Half>>s. The complex multiply is two Q16.16 products per component,
// each truncated independently before the wrap add/sub; the transform is
// unscaled and cannot fail.
func Stages(re, im []int32) {
	_ = re[Size-1]
	_ = im[Size-1]

	for stage := 0; stage < Log2Size; stage++ {
		half := 1 << stage
		twStride := Half >> stage

		for k := 0; k < Half; k++ {
			j := k & (half - 1)
			group := (k >> stage) << (stage + 1)
			top := group + j
			bot := group + j + half

			twIdx := j * twStride
			twr := twReal[twIdx]
			twi := twImag[twIdx]

			ar, ai := re[top], im[top]
			br, bi := re[bot], im[bot]

			tr := fixed.Sub(fixed.Mul(br, twr), fixed.Mul(bi, twi))
			ti := fixed.Add(fixed.Mul(br, twi), fixed.Mul(bi, twr))

			re[top] = fixed.Add(ar, tr)
			im[top] = fixed.Add(ai, ti)
			re[bot] = fixed.Sub(ar, tr)
			im[bot] = fixed.Sub(ai, ti)
		}
	}
}
