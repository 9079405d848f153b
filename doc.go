// Package streamfft implements a fixed-size, fixed-point, radix-2
// decimation-in-time FFT engine over a framed streaming transport.
//
// One frame is exactly 256 packed 64-bit words (Q16.16 real in bits
// 63:32, Q16.16 imaginary in bits 31:0) with an end-of-frame marker on
// the 256th word. Engine.Transform consumes one input frame and emits
// one unscaled 256-bin output frame:
//
//	eng := streamfft.NewEngine()
//	if err := eng.Transform(src, dst); err != nil {
//	    // ErrFraming or ErrTransport; no output frame was written.
//	}
//
// All arithmetic is Q16.16 with two's-complement wrap; overflow is
// defined behavior, not an error. The twiddle ROM is read-only and
// shared, so any number of engines may run concurrently, but a single
// Engine handles one frame at a time.
package streamfft
