// Package bitio converts between byte slices and bit slices.
//
// Bits are ordered most-significant-bit first within each byte, matching the
// on-air bit order of the modem. A byte 0x41 expands to the bit sequence
// 0,1,0,0,0,0,0,1.
package bitio

import (
	"errors"
	"fmt"
)

// BitsPerByte is the expansion factor between bytes and bits.
const BitsPerByte = 8

// ErrUnalignedBits indicates a bit count that is not a multiple of 8 where
// whole bytes are required.
var ErrUnalignedBits = errors.New("bit count not a multiple of 8")

// Unpack expands bytes into bits, MSB first.
// The result always has exactly 8*len(data) elements.
func Unpack(data []byte) []bool {
	bits := make([]bool, 0, len(data)*BitsPerByte)
	for _, b := range data {
		for i := BitsPerByte - 1; i >= 0; i-- {
			bits = append(bits, b&(1<<i) != 0)
		}
	}
	return bits
}

// Pack reassembles bits into bytes, MSB first.
// Callers are expected to check alignment before byte reassembly, but Pack
// re-validates and returns ErrUnalignedBits when len(bits) is not a multiple
// of 8.
func Pack(bits []bool) ([]byte, error) {
	if len(bits)%BitsPerByte != 0 {
		return nil, fmt.Errorf("%w: %d bits", ErrUnalignedBits, len(bits))
	}
	data := make([]byte, len(bits)/BitsPerByte)
	for i, bit := range bits {
		if bit {
			data[i/BitsPerByte] |= 1 << (BitsPerByte - 1 - i%BitsPerByte)
		}
	}
	return data, nil
}
