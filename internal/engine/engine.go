// Package engine implements the modulation and demodulation core of the
// acoustic modem.
//
// Each bit becomes one symbol: a fixed-duration segment of a pure sine tone.
// The tone frequency is picked from the carrier table by bit index modulo the
// table length, and the bit value selects the waveform polarity (binary
// phase-shift keying). The demodulator recovers bits by correlating each
// received segment against the same reference tone and thresholding the dot
// product at zero — a matched-filter decision that needs no preamble or
// symbol synchronization because symbol boundaries are implied by position.
//
// Both directions are pure functions over in-memory buffers: no state is kept
// between calls, so concurrent encodes and decodes need no coordination.
package engine

// Params carries the design constants of a transmission. The same values must
// be used on both ends for the symbols to line up.
type Params struct {
	// SampleRate is the PCM sample rate in Hz. The demodulator must be given
	// the actual rate of the recording, which may differ from the nominal
	// design rate.
	SampleRate float64

	// SymbolRate is the symbol (bit) rate in baud.
	SymbolRate float64

	// Carriers is the ordered carrier frequency table in Hz, cycled by bit
	// index. Never mutated by the engine.
	Carriers []float64
}

// SamplesPerSymbol returns the number of PCM samples occupied by one symbol.
// Non-integer rate ratios truncate; the resulting timing drift over a long
// transmission is an accepted approximation.
func (p Params) SamplesPerSymbol() int {
	return int(p.SampleRate / p.SymbolRate)
}
