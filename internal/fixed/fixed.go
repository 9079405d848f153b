// Package fixed implements Q16.16 fixed-point arithmetic: signed 32-bit
// values with 16 integer bits (sign included) and 16 fractional bits.
//
// All operations wrap in two's complement on overflow; nothing here
// saturates, rounds, or panics.
package fixed

// FracBits is the number of fractional bits in a Q16.16 value.
const FracBits = 16

// One is the Q16.16 representation of 1.0.
const One = 1 << FracBits

// Add returns a+b with 32-bit wrap.
func Add(a, b int32) int32 {
	return a + b
}

// Sub returns a-b with 32-bit wrap.
func Sub(a, b int32) int32 {
	return a - b
}

// Mul returns the Q16.16 product of a and b. The operands are widened to
// 64 bits, multiplied, arithmetic-shifted right by 16 (truncating toward
// negative infinity on the bit pattern), and narrowed back to 32 bits with
// wrap. No rounding is applied.
func Mul(a, b int32) int32 {
	return int32((int64(a) * int64(b)) >> FracBits)
}

// FromFloat64 converts x to Q16.16 by scaling by 2^16 and truncating
// toward zero. Values outside the representable range wrap. Intended for
// table initialization and test stimuli, not the transform path.
func FromFloat64(x float64) int32 {
	return int32(int64(x * float64(One)))
}

// Float64 converts x to a float64 for inspection.
func Float64(x int32) float64 {
	return float64(x) / float64(One)
}
