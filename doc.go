// Package modem encodes arbitrary binary payloads into audible waveforms and
// recovers them from recordings — an acoustic modem over 16-bit PCM.
//
// # Scheme
//
// The payload is expanded into bits (MSB first), prefixed with a 32-bit
// big-endian bit-count header, and modulated one bit per symbol. A symbol is
// a fixed-duration pure sine tone whose frequency cycles through a carrier
// table by bit index and whose polarity carries the bit value (BPSK). The
// demodulator correlates each received segment against the same reference
// tone and thresholds the dot product at zero.
//
// Tone cycling is deterministic pseudo-diversity, not frequency-division
// multiplexing — exactly one tone is active per symbol. There is no
// error-correction coding, no preamble detection, and no clock-drift
// recovery; a sample-rate mismatch between recording and design rate is
// surfaced as a warning and decoding proceeds.
//
// # Quick start
//
//	m, err := modem.New(nil) // nominal 19 kHz, 50 baud, 1-6 kHz carriers
//	if err != nil {
//	    log.Fatal(err)
//	}
//	samples := m.EncodeBytes(payload)
//	// ... write samples to a WAV, play it, record it, read it back ...
//	res, err := m.DecodeSamples(recordedRate, recorded)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if res.RateMismatch != nil {
//	    log.Println("warning:", res.RateMismatch)
//	}
//	use(res.Payload)
//
// # Thread safety
//
// A Modem is immutable after New; all working buffers are call-local, so any
// number of goroutines may encode and decode concurrently on the same
// instance without coordination. Time and memory scale linearly with payload
// size — callers needing bounded memory for very large payloads must chunk at
// a higher layer.
package modem
