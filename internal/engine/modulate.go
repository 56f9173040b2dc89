package engine

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/tphakala/go-acoustic-modem/internal/simdops"
)

// maxInt16 is the full-scale amplitude of the 16-bit PCM output.
const maxInt16 = 32767

// Modulate maps framed bits onto a PCM sample buffer. Bit i occupies samples
// [i*n, (i+1)*n) where n = SamplesPerSymbol, carried on
// Carriers[i mod len(Carriers)]; a 1 keeps the reference tone, a 0 negates
// it. The concatenated signal is normalized by its global peak and scaled to
// the signed 16-bit range.
//
// An empty bit sequence yields an empty buffer; there are no other failure
// modes.
func Modulate(bits []bool, p Params) []int16 {
	n := p.SamplesPerSymbol()
	if n <= 0 || len(bits) == 0 {
		return []int16{}
	}
	tones := toneBank(p)

	signal := make([]float64, 0, len(bits)*n)
	for i, bit := range bits {
		tone := tones[i%len(tones)]
		if bit {
			signal = append(signal, tone...)
		} else {
			for _, s := range tone {
				signal = append(signal, -s)
			}
		}
	}

	// Peak-normalize to [-1, 1]. A zero peak only happens for an all-zero
	// signal, which is left untouched.
	if peak := floats.Norm(signal, math.Inf(1)); peak != 0 {
		simdops.Float64Ops().Scale(signal, signal, 1/peak)
	}

	samples := make([]int16, len(signal))
	for i, s := range signal {
		samples[i] = int16(s * maxInt16)
	}
	return samples
}
