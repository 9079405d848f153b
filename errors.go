package streamfft

import "errors"

// Sentinel errors returned by the engine.
var (
	// ErrFraming is returned when a frame boundary is violated: the
	// end-of-frame marker appears before word 255 or is missing on it.
	// No output is produced for the offending frame.
	ErrFraming = errors.New("streamfft: frame boundary violated")

	// ErrTransport is returned when the underlying channel fails or
	// times out mid-frame. Surface behavior matches ErrFraming: the
	// frame's output is discarded and the caller decides whether to
	// re-synchronize and retry.
	ErrTransport = errors.New("streamfft: transport failure")
)
