package modem

import (
	"fmt"

	"github.com/tphakala/go-acoustic-modem/internal/bitio"
	"github.com/tphakala/go-acoustic-modem/internal/engine"
	"github.com/tphakala/go-acoustic-modem/internal/frame"
)

// Modem encodes payloads into PCM sample buffers and decodes them back. It is
// immutable after New and safe for concurrent use.
type Modem struct {
	cfg Config
}

// New creates a Modem from cfg. A nil cfg selects DefaultConfig. The carrier
// table is copied, so later mutation of cfg does not affect the modem.
func New(cfg *Config) (*Modem, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	m := &Modem{cfg: *cfg}
	m.cfg.Carriers = append([]float64(nil), cfg.Carriers...)
	return m, nil
}

// Config returns a copy of the modem's configuration.
func (m *Modem) Config() Config {
	cfg := m.cfg
	cfg.Carriers = append([]float64(nil), m.cfg.Carriers...)
	return cfg
}

// SamplesPerSymbol returns the number of PCM samples one bit occupies at the
// nominal sample rate.
func (m *Modem) SamplesPerSymbol() int {
	return m.params(m.cfg.SampleRate).SamplesPerSymbol()
}

// Modulate converts framed bits into a 16-bit PCM sample buffer at the
// nominal sample rate. The input is normally produced by framing a packed
// payload; Modulate itself adds no header.
func (m *Modem) Modulate(bits []bool) []int16 {
	return engine.Modulate(bits, m.params(m.cfg.SampleRate))
}

// Demodulate converts a recorded sample buffer back into bits. sampleRate
// must be the actual rate of the recording; it is authoritative for symbol
// timing even when it differs from the nominal design rate.
func (m *Modem) Demodulate(samples []int16, sampleRate int) []bool {
	return engine.Demodulate(samples, m.params(sampleRate))
}

// EncodeBytes packs payload into bits, prepends the length header, and
// modulates the result. An empty payload still produces the 32 header
// symbols.
func (m *Modem) EncodeBytes(payload []byte) []int16 {
	return m.Modulate(frame.Build(bitio.Unpack(payload)))
}

// RateMismatch reports that a recording's sample rate differs from the
// modem's nominal design rate. It is a warning: decoding proceeds, but symbol
// timing will be off in proportion to the difference.
type RateMismatch struct {
	Nominal int // design sample rate in Hz
	Actual  int // rate read from the recording in Hz
}

func (w *RateMismatch) String() string {
	return fmt.Sprintf("sample rate %d Hz differs from nominal %d Hz", w.Actual, w.Nominal)
}

// DecodeResult carries the outcome of a successful decode.
type DecodeResult struct {
	// Payload is the recovered byte sequence.
	Payload []byte

	// PayloadBits is the number of payload bits recovered. When the recording
	// is shorter than the header declared, this is less than the declared
	// count (lenient truncation, part of the wire contract).
	PayloadBits int

	// RateMismatch is non-nil when the recording's sample rate differed from
	// the nominal design rate. Non-fatal.
	RateMismatch *RateMismatch
}

// DecodeSamples demodulates a recorded sample buffer, strips and validates
// the length header, and reassembles the payload bytes.
//
// Failure kinds: ErrTruncatedHeader when fewer than HeaderBits symbols were
// recovered, ErrUnalignedPayload when the payload bit count does not divide
// into whole bytes. A sample-rate mismatch is reported in the result, not as
// an error.
func (m *Modem) DecodeSamples(sampleRate int, samples []int16) (*DecodeResult, error) {
	res := &DecodeResult{}
	if sampleRate != m.cfg.SampleRate {
		res.RateMismatch = &RateMismatch{Nominal: m.cfg.SampleRate, Actual: sampleRate}
	}

	bits := m.Demodulate(samples, sampleRate)
	payload, _, err := frame.Parse(bits)
	if err != nil {
		return nil, err
	}
	res.PayloadBits = len(payload)

	data, err := bitio.Pack(payload)
	if err != nil {
		return nil, err
	}
	res.Payload = data
	return res, nil
}

func (m *Modem) params(sampleRate int) engine.Params {
	return engine.Params{
		SampleRate: float64(sampleRate),
		SymbolRate: float64(m.cfg.SymbolRate),
		Carriers:   m.cfg.Carriers,
	}
}
