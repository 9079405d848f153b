package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cwbudde/streamfft"
)

func TestParseTones(t *testing.T) {
	t.Parallel()

	cfg, err := ParseTones("10, 30")
	if err != nil {
		t.Fatalf("ParseTones: %v", err)
	}

	if len(cfg.Tones) != 2 || cfg.Tones[0].Bin != 10 || cfg.Tones[1].Bin != 30 {
		t.Fatalf("ParseTones = %+v, want bins 10 and 30", cfg.Tones)
	}

	for _, tone := range cfg.Tones {
		if tone.Amplitude != 1.0 {
			t.Errorf("bin %d amplitude = %v, want 1.0", tone.Bin, tone.Amplitude)
		}
	}

	if cfg.Threshold != DefaultThreshold {
		t.Errorf("threshold = %v, want %v", cfg.Threshold, DefaultThreshold)
	}
}

func TestParseTonesRejectsBadInput(t *testing.T) {
	t.Parallel()

	for _, list := range []string{"", "abc", "0", "128", "-3"} {
		if _, err := ParseTones(list); err == nil {
			t.Errorf("ParseTones(%q) succeeded, want error", list)
		}
	}
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "stimulus.yaml")
	data := []byte("tones:\n  - bin: 10\n  - bin: 30\n    amplitude: 0.5\nthreshold: 0.25\n")

	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if len(cfg.Tones) != 2 {
		t.Fatalf("got %d tones, want 2", len(cfg.Tones))
	}

	if cfg.Tones[0].Amplitude != 1.0 {
		t.Errorf("default amplitude = %v, want 1.0", cfg.Tones[0].Amplitude)
	}

	if cfg.Tones[1].Amplitude != 0.5 {
		t.Errorf("explicit amplitude = %v, want 0.5", cfg.Tones[1].Amplitude)
	}

	if cfg.Threshold != 0.25 {
		t.Errorf("threshold = %v, want 0.25", cfg.Threshold)
	}
}

func TestStimulusFrame(t *testing.T) {
	t.Parallel()

	cfg, err := ParseTones("10")
	if err != nil {
		t.Fatal(err)
	}

	words := stimulusFrame(cfg)
	if len(words) != streamfft.FrameSize {
		t.Fatalf("stimulus has %d words, want %d", len(words), streamfft.FrameSize)
	}

	for n, w := range words {
		if w.Last != (n == streamfft.FrameSize-1) {
			t.Fatalf("word %d: last flag %t", n, w.Last)
		}

		if _, im := streamfft.UnpackSample(w.Data); im != 0 {
			t.Fatalf("word %d: imaginary part %d, want 0", n, im)
		}
	}
}

func TestRunCheckDualTone(t *testing.T) {
	t.Parallel()

	cfg, err := ParseTones("10,30")
	if err != nil {
		t.Fatal(err)
	}

	if !runCheck(cfg, stimulusFrame(cfg)) {
		t.Fatal("dual-tone spectrum check failed")
	}
}
