package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-acoustic-modem/internal/bitio"
	"github.com/tphakala/go-acoustic-modem/internal/testutil"
)

// TestBuild_Header verifies the 32-bit big-endian bit-count header.
func TestBuild_Header(t *testing.T) {
	tests := []struct {
		name        string
		payloadBits int
		header      string
	}{
		{"Empty payload", 0, "00000000000000000000000000000000"},
		{"One byte", 8, "00000000000000000000000000001000"},
		{"Single bit", 1, "00000000000000000000000000000001"},
		{"256 bits", 256, "00000000000000000000000100000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			framed := Build(make([]bool, tt.payloadBits))
			require.Len(t, framed, HeaderBits+tt.payloadBits)
			testutil.AssertBitsEqual(t, testutil.Bits(t, tt.header), framed[:HeaderBits])
		})
	}
}

// TestRoundTrip verifies parseFrame(buildFrame(P)) == P for byte-aligned P.
func TestRoundTrip(t *testing.T) {
	for _, n := range []int{0, 8, 16, 64, 8000} {
		payload := bitio.Unpack(testutil.RandomPayload(n / 8))
		got, rest, err := Parse(Build(payload))
		require.NoError(t, err)
		testutil.AssertBitsEqual(t, payload, got, "payload of %d bits", n)
		assert.Empty(t, rest)
	}
}

// TestParse_TruncatedHeader verifies frames under 32 bits are rejected.
func TestParse_TruncatedHeader(t *testing.T) {
	for _, n := range []int{0, 1, 16, 31} {
		_, _, err := Parse(make([]bool, n))
		require.ErrorIs(t, err, ErrTruncatedHeader, "%d bits", n)
	}
}

// TestParse_ExactHeader verifies a header-only frame yields an empty payload.
func TestParse_ExactHeader(t *testing.T) {
	payload, rest, err := Parse(make([]bool, HeaderBits))
	require.NoError(t, err)
	assert.Empty(t, payload)
	assert.Empty(t, rest)
}

// TestParse_LenientTruncation verifies that a declared length overrunning the
// buffer yields the available bits rather than an error. This behavior is
// part of the wire contract.
func TestParse_LenientTruncation(t *testing.T) {
	full := Build(bitio.Unpack([]byte{0xDE, 0xAD, 0xBE, 0xEF})) // declares 32 payload bits
	short := full[:HeaderBits+20]

	payload, rest, err := Parse(short)
	require.NoError(t, err)
	assert.Len(t, payload, 20, "payload truncated to what is available")
	assert.Empty(t, rest)
}

// TestParse_TrailingBits verifies bits past the declared payload are returned
// separately, as happens when a recording runs longer than the transmission.
func TestParse_TrailingBits(t *testing.T) {
	payload := bitio.Unpack([]byte{0x5A})
	framed := append(Build(payload), make([]bool, 13)...)

	got, rest, err := Parse(framed)
	require.NoError(t, err)
	testutil.AssertBitsEqual(t, payload, got)
	assert.Len(t, rest, 13)
}
