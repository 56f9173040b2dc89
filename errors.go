package modem

import (
	"errors"

	"github.com/tphakala/go-acoustic-modem/internal/bitio"
	"github.com/tphakala/go-acoustic-modem/internal/frame"
)

// Error kinds surfaced by encode and decode calls. All are sentinel values
// suitable for errors.Is; detail is attached by wrapping.
var (
	// ErrInvalidConfig indicates invalid modem configuration parameters.
	ErrInvalidConfig = errors.New("invalid modem configuration")

	// ErrTruncatedHeader indicates fewer than HeaderBits decoded bits were
	// available when parsing a frame. Fatal to the decode call.
	ErrTruncatedHeader = frame.ErrTruncatedHeader

	// ErrUnalignedPayload indicates a payload bit count that is not a
	// multiple of 8 where byte reassembly is required. Fatal to the decode
	// call.
	ErrUnalignedPayload = bitio.ErrUnalignedBits

	// ErrUnreadableAudio indicates the underlying audio container could not
	// be parsed. It originates in the audio-I/O collaborator and is
	// propagated unchanged.
	ErrUnreadableAudio = errors.New("unreadable audio container")

	// ErrUnreadableFile indicates the source file for encoding could not be
	// read.
	ErrUnreadableFile = errors.New("unreadable input file")
)
