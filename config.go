package modem

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the transmission design constants. Both ends of a link must
// use identical values; DefaultConfig returns the nominal reference set.
type Config struct {
	// SampleRate is the nominal PCM sample rate in Hz.
	SampleRate int `yaml:"sample_rate"`

	// SymbolRate is the symbol (bit) rate in baud.
	SymbolRate int `yaml:"symbol_rate"`

	// Carriers is the ordered carrier frequency table in Hz, cycled by bit
	// index during modulation and demodulation.
	Carriers []float64 `yaml:"carriers"`
}

// DefaultConfig returns the nominal design constants: 19 kHz sample rate,
// 50 baud, carriers 1000-6000 Hz in 1000 Hz steps.
func DefaultConfig() *Config {
	return &Config{
		SampleRate: DefaultSampleRate,
		SymbolRate: DefaultSymbolRate,
		Carriers:   append([]float64(nil), defaultCarriers...),
	}
}

// Validate checks that the configuration describes a usable transmission.
func (c *Config) Validate() error {
	if c.SampleRate <= 0 || c.SymbolRate <= 0 {
		return fmt.Errorf("%w: rates must be positive", ErrInvalidConfig)
	}
	if c.SampleRate < c.SymbolRate {
		return fmt.Errorf("%w: sample rate %d Hz below symbol rate %d baud", ErrInvalidConfig, c.SampleRate, c.SymbolRate)
	}
	if len(c.Carriers) == 0 {
		return fmt.Errorf("%w: carrier table is empty", ErrInvalidConfig)
	}
	nyquist := float64(c.SampleRate) / nyquistDivisor
	for i, f := range c.Carriers {
		if f <= 0 {
			return fmt.Errorf("%w: carrier %d is %v Hz, must be positive", ErrInvalidConfig, i, f)
		}
		if f >= nyquist {
			return fmt.Errorf("%w: carrier %d is %v Hz, at or above Nyquist (%v Hz)", ErrInvalidConfig, i, f, nyquist)
		}
	}
	return nil
}

// LoadConfig reads a YAML configuration file at path. Fields absent from the
// file keep their nominal defaults; unknown fields are rejected.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("modem: open config %q: %w", path, err)
	}
	defer f.Close()

	cfg, err := loadConfigFrom(f)
	if err != nil {
		return nil, fmt.Errorf("modem: config %q: %w", path, err)
	}
	return cfg, nil
}

// loadConfigFrom decodes a YAML config from r over the defaults and validates
// the result. Split out so tests can feed string literals.
func loadConfigFrom(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
