package streamfft

// Word is one transport word of the framed stream: 64 bits of packed
// complex data, one keep/strb bit per byte lane, and the end-of-frame
// marker. The engine ignores Keep and Strb on input and sets both to
// KeepAll on output.
type Word struct {
	Data uint64
	Keep uint8
	Strb uint8
	Last bool
}

// KeepAll marks all eight byte lanes of a 64-bit word valid.
const KeepAll = 0xFF

// PackSample packs a Q16.16 complex sample into a transport word's data
// field: the real raw bit pattern in bits 63:32, imaginary in bits 31:0.
func PackSample(re, im int32) uint64 {
	return uint64(uint32(re))<<32 | uint64(uint32(im))
}

// UnpackSample splits a packed data word back into its Q16.16 real and
// imaginary raw bit patterns.
func UnpackSample(data uint64) (re, im int32) {
	return int32(uint32(data >> 32)), int32(uint32(data))
}

// Source is the read side of the transport: an ordered, blocking queue
// of words. ReadWord blocks until a word is available and returns io.EOF
// once the stream is cleanly exhausted. Any other error is classified by
// the engine as a transport failure.
type Source interface {
	ReadWord() (Word, error)
}

// Sink is the write side of the transport. WriteWord blocks until the
// word is accepted.
type Sink interface {
	WriteWord(Word) error
}
