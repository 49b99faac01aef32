// Package ustr provides UTF-8 character sequences with per-character access.
//
// A string is decoded into a Sequence of fixed-size characters, so indexing,
// slicing and iteration work on characters instead of bytes. A Sequence can be
// compressed back to its significant UTF-8 octets, and framed into a checksummed
// binary blob for storage or transmission.
//
// # Core Features
//
//   - Decoding with a configurable policy for invalid bytes (stop, skip, replace, escape)
//   - O(1) character indexing with amortized append and concatenation
//   - Exact-size compressed form for writing to disk or network
//   - Framed blobs with optional compression (None, Zstd, S2, LZ4) and xxHash64 checksums
//   - CBOR marshaling of sequences
//
// # Basic Usage
//
//	import "github.com/arloliu/ustr"
//
//	s, err := ustr.DecodeString("Привет, 😀")
//	if err != nil {
//	    return err
//	}
//
//	for i, c := range s.All() {
//	    fmt.Printf("%d: U+%04X (%d bytes)\n", i, ustr.CodePoint(c), c.Width())
//	}
//
//	_ = s.AppendCodePoint('!')
//	compressed := ustr.Compress(s)  // "Привет, 😀!"
//
// Packing into a blob and back:
//
//	data, err := ustr.Pack(s, blob.WithCompression(format.CompressionZstd))
//	restored, err := ustr.Unpack(data)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the codec, sequence
// and blob packages. For fine-grained control, use those packages directly.
package ustr

import (
	"github.com/arloliu/ustr/blob"
	"github.com/arloliu/ustr/codec"
	"github.com/arloliu/ustr/internal/hash"
	"github.com/arloliu/ustr/sequence"
)

// Decode decodes data into a new character sequence.
//
// Parameters:
//   - data: UTF-8 input, not retained
//   - opts: Optional decode configuration (see sequence.DecodeOption)
//
// Available options:
//   - sequence.WithInvalidPolicy(format.PolicyStop|PolicySkip|PolicyReplace|PolicyEscape)
//   - sequence.WithNULTerminator(true|false)
//   - sequence.WithStrictContinuation(true|false)
//
// With the default format.PolicyStop, decoding halts at the first invalid byte and
// returns the characters decoded so far together with a *codec.DecodeError.
//
// Example:
//
//	s, err := ustr.Decode(data, sequence.WithInvalidPolicy(format.PolicyReplace))
func Decode(data []byte, opts ...sequence.DecodeOption) (*sequence.Sequence, error) {
	return sequence.Decode(data, opts...)
}

// DecodeString decodes str into a new character sequence. See Decode.
func DecodeString(str string, opts ...sequence.DecodeOption) (*sequence.Sequence, error) {
	return sequence.DecodeString(str, opts...)
}

// New creates an empty sequence with the default capacity of 16 characters.
func New() *sequence.Sequence {
	return sequence.New()
}

// Concat returns a new sequence holding the characters of a followed by those of b.
// Neither input is modified.
func Concat(a, b *sequence.Sequence) (*sequence.Sequence, error) {
	return sequence.Concat(a, b)
}

// Compress returns the significant octets of every character of s, contiguous and
// owned by the caller.
func Compress(s *sequence.Sequence) *sequence.Compressed {
	return sequence.Compress(s)
}

// Pack frames s into a blob and returns its bytes.
//
// Available options:
//   - blob.WithCompression(format.CompressionNone|Zstd|S2|LZ4)
//   - blob.WithLittleEndian() / blob.WithBigEndian() / blob.WithNativeEndian()
//   - blob.WithTerminator(true|false)
//
// Example:
//
//	data, err := ustr.Pack(s, blob.WithCompression(format.CompressionS2))
func Pack(s *sequence.Sequence, opts ...blob.EncoderOption) ([]byte, error) {
	encoder, err := blob.NewEncoder(opts...)
	if err != nil {
		return nil, err
	}

	b, err := encoder.Encode(s)
	if err != nil {
		return nil, err
	}

	return b.Bytes(), nil
}

// Unpack decodes a blob produced by Pack back into a sequence.
func Unpack(data []byte, opts ...sequence.DecodeOption) (*sequence.Sequence, error) {
	return blob.Decode(data, opts...)
}

// Validate reports every malformed position in data. See codec.Validate.
func Validate(data []byte) error {
	return codec.Validate(data)
}

// CodePoint returns the Unicode code point of c.
func CodePoint(c codec.Char) uint32 {
	return codec.CodePoint(c)
}

// FromCodePoint encodes cp as a character.
func FromCodePoint(cp uint32) (codec.Char, error) {
	return codec.FromCodePoint(cp)
}

// LeadByteWidth returns the width announced by lead byte b, or 0 when b cannot
// start a character.
func LeadByteWidth(b byte) int {
	return codec.LeadByteWidth(b)
}

// HashString returns the xxHash64 of str.
//
// For valid UTF-8 input it equals the Hash of the sequence decoded from str, so
// it can be used to look up sequences by their text without decoding.
func HashString(str string) uint64 {
	return hash.ID(str)
}
