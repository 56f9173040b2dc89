package engine

import "math"

// referenceTone synthesizes sin(2π·freq·t) over one symbol period, treated as
// the half-open interval [0, 1/symbolRate): n evenly spaced points with the
// right endpoint excluded. Both the modulator and the demodulator derive
// their waveforms from this function, which is what makes the zero-threshold
// correlation decision valid.
func referenceTone(freq, symbolRate float64, n int) []float64 {
	tone := make([]float64, n)
	step := 1.0 / (symbolRate * float64(n))
	for k := range tone {
		tone[k] = math.Sin(2 * math.Pi * freq * float64(k) * step)
	}
	return tone
}

// toneBank precomputes the reference tone for every carrier so the per-symbol
// loops only index, never synthesize.
func toneBank(p Params) [][]float64 {
	n := p.SamplesPerSymbol()
	tones := make([][]float64, len(p.Carriers))
	for i, f := range p.Carriers {
		tones[i] = referenceTone(f, p.SymbolRate, n)
	}
	return tones
}
