package engine

import (
	"github.com/tphakala/go-acoustic-modem/internal/simdops"
)

// Demodulate recovers one bit per full symbol in samples. Each segment of
// SamplesPerSymbol samples is correlated against the reference tone of its
// cycled carrier; the bit is 1 when the dot product is non-negative.
//
// p.SampleRate must be the actual rate of the recording — symbol boundaries
// are derived from it, so a rate mismatch shifts every decision window.
// Trailing samples that do not fill a full symbol are discarded.
func Demodulate(samples []int16, p Params) []bool {
	n := p.SamplesPerSymbol()
	if n <= 0 || len(samples) < n {
		return nil
	}
	tones := toneBank(p)
	ops := simdops.For[float64]()

	numSymbols := len(samples) / n
	bits := make([]bool, numSymbols)
	segment := make([]float64, n)
	for i := range bits {
		for k, s := range samples[i*n : (i+1)*n] {
			segment[k] = float64(s)
		}
		corr := ops.DotProductUnsafe(segment, tones[i%len(tones)])
		bits[i] = corr >= 0
	}
	return bits
}
