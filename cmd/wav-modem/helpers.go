package main

import (
	"fmt"
	"os"
	"time"

	modem "github.com/tphakala/go-acoustic-modem"
	"github.com/tphakala/go-acoustic-modem/internal/bitio"
	"github.com/tphakala/go-acoustic-modem/internal/wavio"
)

// encodeStats summarizes one file-to-WAV encode.
type encodeStats struct {
	payloadBytes int
	frameBits    int
	samples      int
	sampleRate   int
}

// airTime returns the real-time duration of the transmission when played at
// the nominal rate.
func (s *encodeStats) airTime() time.Duration {
	if s.sampleRate == 0 {
		return 0
	}
	return time.Duration(float64(s.samples) / float64(s.sampleRate) * float64(time.Second))
}

// decodeStats summarizes one WAV-to-file decode.
type decodeStats struct {
	samples      int
	sampleRate   int
	payloadBits  int
	payloadBytes int
	rateMismatch *modem.RateMismatch
}

// encodeFile reads inPath, modulates its contents, and writes the
// transmission WAV to outPath.
func encodeFile(m *modem.Modem, inPath, outPath string) (*encodeStats, error) {
	payload, err := os.ReadFile(inPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", modem.ErrUnreadableFile, err)
	}

	samples := m.EncodeBytes(payload)
	rate := m.Config().SampleRate
	if err := wavio.WritePCM(outPath, rate, samples); err != nil {
		return nil, err
	}

	return &encodeStats{
		payloadBytes: len(payload),
		frameBits:    modem.HeaderBits + len(payload)*bitio.BitsPerByte,
		samples:      len(samples),
		sampleRate:   rate,
	}, nil
}

// decodeFile reads the transmission WAV at inPath, demodulates it, and writes
// the recovered payload to outPath.
func decodeFile(m *modem.Modem, inPath, outPath string) (*decodeStats, error) {
	rate, samples, err := wavio.ReadPCM(inPath)
	if err != nil {
		return nil, err
	}

	res, err := m.DecodeSamples(rate, samples)
	if err != nil {
		return nil, err
	}

	if err := os.WriteFile(outPath, res.Payload, 0o644); err != nil {
		return nil, fmt.Errorf("write %q: %w", outPath, err)
	}

	return &decodeStats{
		samples:      len(samples),
		sampleRate:   rate,
		payloadBits:  res.PayloadBits,
		payloadBytes: len(res.Payload),
		rateMismatch: res.RateMismatch,
	}, nil
}
