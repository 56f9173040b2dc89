// Package frame implements the length-prefixed bit frame carried by the modem.
//
// A frame is a 32-bit unsigned big-endian header holding the payload bit
// count, followed immediately by that many payload bits. The header counts
// bits, not bytes, so payloads that do not originate from whole bytes remain
// representable.
package frame

import (
	"errors"
	"fmt"
)

// HeaderBits is the fixed width of the length header.
const HeaderBits = 32

// ErrTruncatedHeader indicates a frame buffer with fewer than HeaderBits bits.
var ErrTruncatedHeader = errors.New("frame shorter than 32-bit header")

// Build prepends the length header to payload and returns the framed bits.
// The header value is exactly len(payload).
func Build(payload []bool) []bool {
	framed := make([]bool, 0, HeaderBits+len(payload))
	n := uint32(len(payload))
	for i := HeaderBits - 1; i >= 0; i-- {
		framed = append(framed, n&(1<<i) != 0)
	}
	return append(framed, payload...)
}

// Parse reads the length header from framed and returns the payload bits it
// declares, plus any remaining bits past the declared payload.
//
// When the declared length overruns the buffer the payload is truncated to
// whatever is available rather than rejected. This lenient behavior is part
// of the wire contract; callers that need the full declared payload must
// compare len(payload) against their own expectations.
func Parse(framed []bool) (payload, rest []bool, err error) {
	if len(framed) < HeaderBits {
		return nil, nil, fmt.Errorf("%w: got %d bits", ErrTruncatedHeader, len(framed))
	}
	var n uint32
	for _, bit := range framed[:HeaderBits] {
		n <<= 1
		if bit {
			n |= 1
		}
	}
	end := HeaderBits + int(n)
	if end > len(framed) {
		end = len(framed)
	}
	return framed[HeaderBits:end], framed[end:], nil
}
