package main

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/cwbudde/streamfft"
	"github.com/cwbudde/streamfft/internal/fixed"
)

func TestTransformFrameImpulse(t *testing.T) {
	t.Parallel()

	payload := make([]byte, frameBytes)
	binary.BigEndian.PutUint64(payload[0:], streamfft.PackSample(fixed.One, 0))

	mags, err := transformFrame(streamfft.NewEngine(), payload)
	if err != nil {
		t.Fatalf("transformFrame: %v", err)
	}

	if len(mags) != streamfft.FrameSize*4 {
		t.Fatalf("response has %d bytes, want %d", len(mags), streamfft.FrameSize*4)
	}

	for n := 0; n < streamfft.FrameSize; n++ {
		mag := math.Float32frombits(binary.BigEndian.Uint32(mags[n*4:]))
		if mag != 1.0 {
			t.Fatalf("bin %d magnitude = %v, want 1.0", n, mag)
		}
	}
}

func TestTransformFrameTone(t *testing.T) {
	t.Parallel()

	payload := make([]byte, frameBytes)
	for n := 0; n < streamfft.FrameSize; n++ {
		v := math.Sin(2 * math.Pi * 10 * float64(n) / streamfft.FrameSize)
		binary.BigEndian.PutUint64(payload[n*8:], streamfft.PackSample(fixed.FromFloat64(v), 0))
	}

	mags, err := transformFrame(streamfft.NewEngine(), payload)
	if err != nil {
		t.Fatalf("transformFrame: %v", err)
	}

	peak := math.Float32frombits(binary.BigEndian.Uint32(mags[10*4:]))
	if peak < 100 {
		t.Fatalf("bin 10 magnitude = %v, want a peak near 128", peak)
	}
}
