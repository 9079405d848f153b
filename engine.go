package streamfft

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/cwbudde/streamfft/internal/fft"
)

// FrameSize is the number of words per frame and bins per spectrum.
const FrameSize = fft.Size

// Engine runs one 256-point transform per Transform call. The working
// buffers live in the struct, so an Engine must not be shared between
// concurrent transforms; run one Engine per goroutine instead. The
// twiddle ROM is read-only and shared by all engines.
type Engine struct {
	inRe, inIm     [fft.Size]int32
	workRe, workIm [fft.Size]int32

	metrics *Metrics
}

// NewEngine returns a ready Engine.
func NewEngine() *Engine {
	return &Engine{}
}

// SetMetrics attaches an optional metrics sink. Pass nil to detach.
func (e *Engine) SetMetrics(m *Metrics) {
	e.metrics = m
}

// Transform consumes exactly one frame from src, runs the bit-reversal
// permutation and the eight butterfly stages, and emits exactly one
// frame to dst with Last set on word 255 only.
//
// Errors: io.EOF when src ends cleanly before the frame's first word,
// ErrFraming on a misplaced end-of-frame marker, ErrTransport on any
// other read or write failure. The writer only starts after the full
// input frame has validated, so a rejected frame produces no output.
func (e *Engine) Transform(src Source, dst Sink) error {
	start := time.Now()

	if err := e.readFrame(src); err != nil {
		e.countError(err)
		return err
	}

	fft.Permute(e.workRe[:], e.workIm[:], e.inRe[:], e.inIm[:])
	fft.Stages(e.workRe[:], e.workIm[:])

	if err := e.writeFrame(dst); err != nil {
		e.countError(err)
		return err
	}

	elapsed := time.Since(start)
	if e.metrics != nil {
		e.metrics.framesTotal.Inc()
		e.metrics.transformSeconds.Observe(elapsed.Seconds())
	}

	logger().Debug("frame transformed", "elapsed", elapsed)

	return nil
}

// TransformChan is Transform over bare channels.
func (e *Engine) TransformChan(in <-chan Word, out chan<- Word) error {
	return e.Transform(NewChanSource(in), NewChanSink(out))
}

// Process transforms frames from src until it is cleanly exhausted,
// preserving input order. It returns the number of complete frames
// written. An input that ends exactly on a frame boundary is a clean
// stop; ending mid-frame is a transport failure.
func (e *Engine) Process(src Source, dst Sink) (int, error) {
	frames := 0

	for {
		if err := e.Transform(src, dst); err != nil {
			if errors.Is(err, io.EOF) && !errors.Is(err, ErrTransport) {
				return frames, nil
			}

			return frames, err
		}

		frames++
	}
}

func (e *Engine) readFrame(src Source) error {
	for n := 0; n < fft.Size; n++ {
		w, err := src.ReadWord()
		if err != nil {
			if errors.Is(err, io.EOF) {
				if n == 0 {
					return io.EOF
				}

				return fmt.Errorf("%w: word %d: %w", ErrTransport, n, io.ErrUnexpectedEOF)
			}

			return fmt.Errorf("%w: word %d: %w", ErrTransport, n, err)
		}

		if w.Last != (n == fft.Size-1) {
			return fmt.Errorf("%w: last flag %t on word %d", ErrFraming, w.Last, n)
		}

		e.inRe[n], e.inIm[n] = UnpackSample(w.Data)
	}

	return nil
}

func (e *Engine) writeFrame(dst Sink) error {
	for n := 0; n < fft.Size; n++ {
		w := Word{
			Data: PackSample(e.workRe[n], e.workIm[n]),
			Keep: KeepAll,
			Strb: KeepAll,
			Last: n == fft.Size-1,
		}

		if err := dst.WriteWord(w); err != nil {
			return fmt.Errorf("%w: word %d: %w", ErrTransport, n, err)
		}
	}

	return nil
}

func (e *Engine) countError(err error) {
	switch {
	case errors.Is(err, ErrFraming):
		logger().Warn("framing violation", "err", err)

		if e.metrics != nil {
			e.metrics.framingErrors.Inc()
		}
	case errors.Is(err, ErrTransport):
		logger().Warn("transport failure", "err", err)

		if e.metrics != nil {
			e.metrics.transportErrors.Inc()
		}
	}
}
