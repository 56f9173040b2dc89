// Package testutil provides reusable helpers for modem tests.
package testutil

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Bits parses a string of '0' and '1' runes into a bit slice. Any other rune
// fails the test; use it for literal bit patterns in test tables.
func Bits(t *testing.T, s string) []bool {
	t.Helper()
	bits := make([]bool, 0, len(s))
	for _, r := range s {
		switch r {
		case '0':
			bits = append(bits, false)
		case '1':
			bits = append(bits, true)
		default:
			require.Failf(t, "bad bit literal", "unexpected rune %q in %q", r, s)
		}
	}
	return bits
}

// BitString renders a bit slice as a string of '0' and '1' for readable
// failure messages.
func BitString(bits []bool) string {
	buf := make([]byte, len(bits))
	for i, b := range bits {
		if b {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}
	return string(buf)
}

// AssertBitsEqual compares two bit slices and reports differences as bit
// strings.
func AssertBitsEqual(t *testing.T, expected, actual []bool, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.Equal(t, len(expected), len(actual), "bit count mismatch: want %d, got %d", len(expected), len(actual)) {
		return false
	}
	return assert.Equal(t, BitString(expected), BitString(actual), msgAndArgs...)
}

// RandomPayload returns n deterministic pseudo-random bytes. The seed is
// fixed so failures reproduce.
func RandomPayload(n int) []byte {
	rng := rand.New(rand.NewSource(int64(n) + 1))
	payload := make([]byte, n)
	for i := range payload {
		payload[i] = byte(rng.Intn(256))
	}
	return payload
}

// AssertSamplesInRange verifies every PCM sample lies in [-limit, limit].
func AssertSamplesInRange(t *testing.T, samples []int16, limit int16, msgAndArgs ...any) bool {
	t.Helper()
	for i, s := range samples {
		if s < -limit || s > limit {
			return assert.Fail(t, "sample out of range",
				"samples[%d]=%d is outside [-%d, %d]", i, s, limit, limit)
		}
	}
	return true
}
