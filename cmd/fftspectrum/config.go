package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Tone is one sinusoidal component of the stimulus frame.
type Tone struct {
	Bin       int     `yaml:"bin"`
	Amplitude float64 `yaml:"amplitude"`
}

// Config describes a stimulus and the peak-detection rule applied to
// the resulting spectrum.
type Config struct {
	Tones     []Tone  `yaml:"tones"`
	Threshold float64 `yaml:"threshold"`
}

// DefaultThreshold is the peak-detection threshold as a fraction of the
// global maximum magnitude.
const DefaultThreshold = 0.3

// LoadConfig reads a YAML stimulus description.
func LoadConfig(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ParseTones builds a unit-amplitude config from a comma-separated bin
// list such as "10,30".
func ParseTones(list string) (*Config, error) {
	cfg := &Config{Threshold: DefaultThreshold}

	for _, field := range strings.Split(list, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}

		bin, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("invalid tone bin %q", field)
		}

		cfg.Tones = append(cfg.Tones, Tone{Bin: bin, Amplitude: 1.0})
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if len(c.Tones) == 0 {
		return fmt.Errorf("no tones specified")
	}

	for i := range c.Tones {
		tone := &c.Tones[i]

		if tone.Bin < 1 || tone.Bin >= 128 {
			return fmt.Errorf("tone bin %d out of range [1, 128)", tone.Bin)
		}

		if tone.Amplitude == 0 {
			tone.Amplitude = 1.0
		}
	}

	if c.Threshold == 0 {
		c.Threshold = DefaultThreshold
	}

	if c.Threshold < 0 || c.Threshold > 1 {
		return fmt.Errorf("threshold %v out of range [0, 1]", c.Threshold)
	}

	return nil
}
