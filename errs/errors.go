// Package errs defines the sentinel errors returned across ustr packages.
//
// Callers should match them with errors.Is; most call sites wrap them with
// additional context using fmt.Errorf("%w: ...").
package errs

import "errors"

// Codec errors.
var (
	// ErrInvalidLeadByte is returned when a byte does not match any UTF-8 lead byte pattern.
	ErrInvalidLeadByte = errors.New("invalid lead byte")
	// ErrTruncated is returned when a lead byte announces more bytes than the input holds.
	ErrTruncated = errors.New("truncated character")
	// ErrInvalidContinuation is returned when a continuation byte does not match 10xxxxxx.
	ErrInvalidContinuation = errors.New("invalid continuation byte")
	// ErrCodePointOutOfRange is returned for code points above U+10FFFF.
	ErrCodePointOutOfRange = errors.New("code point out of range")
)

// Sequence errors.
var (
	// ErrNotDecoded is returned when appending a character that is not a decoded character.
	ErrNotDecoded = errors.New("character is not decoded")
	// ErrInvalidCapacity is returned for negative capacities.
	ErrInvalidCapacity = errors.New("invalid capacity")
	// ErrCapacityExceeded is returned when a sequence would grow beyond its maximum capacity.
	ErrCapacityExceeded = errors.New("capacity exceeded")
	// ErrInvalidPolicy is returned for unknown invalid-byte policies.
	ErrInvalidPolicy = errors.New("invalid policy")
	// ErrIndexOutOfRange is returned when slicing outside of a sequence.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Blob errors.
var (
	ErrInvalidHeaderSize  = errors.New("invalid header size")
	ErrInvalidHeaderFlags = errors.New("invalid header flags")
	ErrInvalidPayloadSize = errors.New("invalid payload size")
	ErrChecksumMismatch   = errors.New("checksum mismatch")
	ErrInvalidCompression = errors.New("invalid compression type")
	ErrCharCountMismatch  = errors.New("character count mismatch")
)
