// Command fftspectrum drives the streaming FFT engine with sinusoidal
// stimuli and verifies the magnitude spectrum: peaks must appear at the
// configured tone bins and their mirrors, and nowhere else above the
// detection threshold.
//
// The stimulus comes from -tones or from a YAML file:
//
//	tones:
//	  - bin: 10
//	  - bin: 30
//	    amplitude: 0.5
//	threshold: 0.3
//
// Exits nonzero when a check fails. With -bench it reports ns/frame
// instead of the spectrum table.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/cwbudde/streamfft"
	"github.com/cwbudde/streamfft/internal/fixed"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML stimulus file (overrides -tones)")
		tones      = flag.String("tones", "10,30", "comma-separated tone bins, unit amplitude")
		bench      = flag.Bool("bench", false, "benchmark instead of printing the spectrum")
		iters      = flag.Int("iters", 1000, "benchmark iterations")
		warmup     = flag.Int("warmup", 10, "benchmark warmup iterations")
	)
	flag.Parse()

	cfg, err := loadStimulus(*configPath, *tones)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	input := stimulusFrame(cfg)

	if *bench {
		runBench(input, *iters, *warmup)
		return
	}

	if !runCheck(cfg, input) {
		os.Exit(1)
	}
}

func loadStimulus(configPath, tones string) (*Config, error) {
	if configPath != "" {
		return LoadConfig(configPath)
	}

	return ParseTones(tones)
}

// stimulusFrame packs the configured tone mix into one input frame.
func stimulusFrame(cfg *Config) []streamfft.Word {
	words := make([]streamfft.Word, streamfft.FrameSize)
	for n := range words {
		v := 0.0
		for _, tone := range cfg.Tones {
			v += tone.Amplitude * math.Sin(2*math.Pi*float64(tone.Bin)*float64(n)/streamfft.FrameSize)
		}

		words[n] = streamfft.Word{
			Data: streamfft.PackSample(fixed.FromFloat64(v), 0),
			Keep: streamfft.KeepAll,
			Strb: streamfft.KeepAll,
			Last: n == streamfft.FrameSize-1,
		}
	}

	return words
}

func runCheck(cfg *Config, input []streamfft.Word) bool {
	fmt.Printf("=== 256-Point FFT Spectrum Check ===\n")
	fmt.Printf("Stimulus: %d tone(s)\n\n", len(cfg.Tones))

	var sink streamfft.SliceSink
	if err := streamfft.NewEngine().Transform(streamfft.NewSliceSource(input), &sink); err != nil {
		fmt.Fprintf(os.Stderr, "transform failed: %v\n", err)
		return false
	}

	mags := magnitudes(sink.Words)

	expected := make(map[int]bool)
	for _, tone := range cfg.Tones {
		expected[tone.Bin] = true
	}

	fmt.Printf("%-6s  %-14s\n", "Bin", "Magnitude")
	fmt.Printf("------  --------------\n")

	for k := 0; k < streamfft.FrameSize/2; k++ {
		fmt.Printf("[%3d]   %12.4f", k, mags[k])
		if expected[k] {
			fmt.Printf("  <-- expected peak")
		}
		fmt.Println()
	}

	maxMag := 0.0
	for _, m := range mags {
		if m > maxMag {
			maxMag = m
		}
	}

	threshold := cfg.Threshold * maxMag
	fmt.Printf("\nMax magnitude: %.4f\n", maxMag)
	fmt.Printf("Detection threshold (%.0f%%): %.4f\n\n", cfg.Threshold*100, threshold)

	pass := true

	for _, tone := range cfg.Tones {
		mirror := streamfft.FrameSize - tone.Bin

		if mags[tone.Bin] <= threshold {
			fmt.Printf("FAIL: no peak at bin %d (magnitude %.4f)\n", tone.Bin, mags[tone.Bin])
			pass = false
		}

		if mags[mirror] <= threshold {
			fmt.Printf("FAIL: no mirror peak at bin %d (magnitude %.4f)\n", mirror, mags[mirror])
			pass = false
		}
	}

	for k := 1; k < streamfft.FrameSize/2; k++ {
		if !expected[k] && mags[k] > threshold {
			fmt.Printf("FAIL: unexpected peak at bin %d (magnitude %.4f)\n", k, mags[k])
			pass = false
		}
	}

	if pass {
		fmt.Println("PASS")
	}

	return pass
}

func runBench(input []streamfft.Word, iters, warmup int) {
	eng := streamfft.NewEngine()
	sink := streamfft.SliceSink{Words: make([]streamfft.Word, 0, streamfft.FrameSize)}

	run := func() {
		sink.Words = sink.Words[:0]
		if err := eng.Transform(streamfft.NewSliceSource(input), &sink); err != nil {
			fmt.Fprintf(os.Stderr, "transform failed: %v\n", err)
			os.Exit(1)
		}
	}

	for n := 0; n < warmup; n++ {
		run()
	}

	start := time.Now()
	for n := 0; n < iters; n++ {
		run()
	}

	elapsed := time.Since(start)
	fmt.Printf("iters=%d warmup=%d\n", iters, warmup)
	fmt.Printf("%12.1f ns/frame\n", float64(elapsed.Nanoseconds())/float64(iters))
}

func magnitudes(words []streamfft.Word) []float64 {
	mags := make([]float64, len(words))
	for n, w := range words {
		re, im := streamfft.UnpackSample(w.Data)
		mags[n] = math.Hypot(fixed.Float64(re), fixed.Float64(im))
	}

	return mags
}
