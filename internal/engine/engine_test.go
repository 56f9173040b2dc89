package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-acoustic-modem/internal/testutil"
)

// nominalParams is the reference design: 19 kHz, 50 baud, six carriers.
func nominalParams() Params {
	return Params{
		SampleRate: 19000,
		SymbolRate: 50,
		Carriers:   []float64{1000, 2000, 3000, 4000, 5000, 6000},
	}
}

func randomBits(n int, seed int64) []bool {
	rng := rand.New(rand.NewSource(seed))
	bits := make([]bool, n)
	for i := range bits {
		bits[i] = rng.Intn(2) == 1
	}
	return bits
}

// TestSamplesPerSymbol verifies the floor(sampleRate/symbolRate) contract,
// including the silent truncation for non-integer ratios.
func TestSamplesPerSymbol(t *testing.T) {
	tests := []struct {
		name       string
		sampleRate float64
		symbolRate float64
		expected   int
	}{
		{"Nominal", 19000, 50, 380},
		{"Integer ratio", 48000, 100, 480},
		{"Truncating ratio", 19001, 50, 380},
		{"Truncating ratio down", 18999, 50, 379},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Params{SampleRate: tt.sampleRate, SymbolRate: tt.symbolRate}
			assert.Equal(t, tt.expected, p.SamplesPerSymbol())
		})
	}
}

// TestReferenceTone_HalfOpenInterval verifies the symbol period is sampled as
// [0, 1/symbolRate): first point at phase zero, right endpoint excluded.
func TestReferenceTone_HalfOpenInterval(t *testing.T) {
	const n = 380
	tone := referenceTone(1000, 50, n)

	require.Len(t, tone, n)
	assert.Zero(t, tone[0], "first sample must sit at phase zero")

	// With the endpoint excluded the step is exactly 1/(S*n); the would-be
	// final point at t = 1/S is not emitted.
	last := tone[n-1]
	assert.NotZero(t, last)
}

// TestModulate_Length verifies output length = samplesPerSymbol * bit count.
func TestModulate_Length(t *testing.T) {
	p := nominalParams()
	n := p.SamplesPerSymbol()

	for _, bits := range []int{0, 1, 6, 7, 32, 100} {
		samples := Modulate(make([]bool, bits), p)
		assert.Len(t, samples, bits*n, "%d bits", bits)
	}
}

// TestModulate_Empty verifies an empty bit sequence yields an empty buffer.
func TestModulate_Empty(t *testing.T) {
	assert.Empty(t, Modulate(nil, nominalParams()))
	assert.Empty(t, Modulate([]bool{}, nominalParams()))
}

// TestModulate_Normalization verifies the scaled signal peaks at full 16-bit
// range and never exceeds it.
func TestModulate_Normalization(t *testing.T) {
	p := nominalParams()
	samples := Modulate(randomBits(60, 1), p)

	testutil.AssertSamplesInRange(t, samples, maxInt16)

	var peak int16
	for _, s := range samples {
		if s > peak {
			peak = s
		}
		if -s > peak {
			peak = -s
		}
	}
	assert.Equal(t, int16(maxInt16), peak, "global peak must hit full scale")
}

// TestModulate_Polarity verifies the waveform for bit 1 is the exact
// sample-by-sample negation of the waveform for bit 0 at the same position.
func TestModulate_Polarity(t *testing.T) {
	p := nominalParams()
	one := Modulate([]bool{true}, p)
	zero := Modulate([]bool{false}, p)

	require.Equal(t, len(one), len(zero))
	for i := range one {
		assert.Equal(t, one[i], -zero[i], "sample %d", i)
	}
}

// TestModulate_CarrierCycling verifies the carrier table wraps by bit index:
// symbol len(C) reuses the carrier of symbol 0.
func TestModulate_CarrierCycling(t *testing.T) {
	p := nominalParams()
	n := p.SamplesPerSymbol()
	numCarriers := len(p.Carriers)

	bits := make([]bool, numCarriers+1)
	for i := range bits {
		bits[i] = true
	}
	samples := Modulate(bits, p)

	first := samples[0:n]
	wrapped := samples[numCarriers*n : (numCarriers+1)*n]
	assert.Equal(t, first, wrapped, "cycle must wrap back to carrier 0")
}

// TestRoundTrip_Noiseless verifies Demodulate(Modulate(bits)) == bits for the
// nominal design and for off-nominal parameter sets.
func TestRoundTrip_Noiseless(t *testing.T) {
	tests := []struct {
		name string
		p    Params
		bits int
	}{
		{"Nominal", nominalParams(), 512},
		{"Single bit", nominalParams(), 1},
		{"Long", nominalParams(), 4000},
		{"Single carrier", Params{SampleRate: 19000, SymbolRate: 50, Carriers: []float64{2000}}, 200},
		{"High baud", Params{SampleRate: 48000, SymbolRate: 200, Carriers: []float64{2000, 4000, 6000, 8000}}, 300},
		{"Truncating ratio", Params{SampleRate: 19001, SymbolRate: 50, Carriers: []float64{1000, 2000, 3000}}, 128},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bits := randomBits(tt.bits, int64(tt.bits))
			got := Demodulate(Modulate(bits, tt.p), tt.p)
			testutil.AssertBitsEqual(t, bits, got)
		})
	}
}

// TestDemodulate_TrailingSamplesDiscarded verifies samples that do not fill a
// full symbol contribute no bit.
func TestDemodulate_TrailingSamplesDiscarded(t *testing.T) {
	p := nominalParams()
	n := p.SamplesPerSymbol()
	bits := randomBits(20, 7)

	samples := Modulate(bits, p)
	padded := append(samples, make([]int16, n-1)...)

	got := Demodulate(padded, p)
	testutil.AssertBitsEqual(t, bits, got, "partial trailing symbol must be dropped")
}

// TestDemodulate_ShortInput verifies less than one symbol of input yields no
// bits.
func TestDemodulate_ShortInput(t *testing.T) {
	p := nominalParams()
	assert.Empty(t, Demodulate(nil, p))
	assert.Empty(t, Demodulate(make([]int16, p.SamplesPerSymbol()-1), p))
}

// TestDemodulate_AttenuatedSignal verifies the sign decision survives heavy
// amplitude loss, as happens in an acoustic recording.
func TestDemodulate_AttenuatedSignal(t *testing.T) {
	p := nominalParams()
	bits := randomBits(120, 42)

	samples := Modulate(bits, p)
	for i, s := range samples {
		samples[i] = s / 50
	}

	got := Demodulate(samples, p)
	testutil.AssertBitsEqual(t, bits, got)
}

func BenchmarkModulate(b *testing.B) {
	p := nominalParams()
	bits := randomBits(8192, 3)
	b.ReportAllocs()
	for b.Loop() {
		_ = Modulate(bits, p)
	}
}

func BenchmarkDemodulate(b *testing.B) {
	p := nominalParams()
	samples := Modulate(randomBits(8192, 3), p)
	b.ReportAllocs()
	for b.Loop() {
		_ = Demodulate(samples, p)
	}
}
