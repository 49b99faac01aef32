package codec

import (
	"fmt"

	"github.com/arloliu/ustr/errs"
)

// Kind tags the outcome of a decode step.
type Kind uint8

const (
	// KindEndOfInput marks that nothing is left to read. It is the zero Kind.
	KindEndOfInput Kind = iota
	// KindDecoded marks a decoded character.
	KindDecoded
	// KindInvalidByte marks a byte that matches no lead byte pattern.
	KindInvalidByte
	// KindTruncated marks a lead byte whose character runs past the end of the input.
	KindTruncated
)

func (k Kind) String() string {
	switch k {
	case KindEndOfInput:
		return "EndOfInput"
	case KindDecoded:
		return "Decoded"
	case KindInvalidByte:
		return "InvalidByte"
	case KindTruncated:
		return "Truncated"
	default:
		return "Unknown"
	}
}

// Char is a single decoded character: up to four raw UTF-8 octets, the number of
// significant octets and a Kind tag.
//
// For KindDecoded with width n, octets[0:n] are exactly the encoded bytes and the
// remaining octets are zero. Other kinds have width 0; KindInvalidByte and
// KindTruncated keep the offending byte, see Byte.
//
// The zero Char is the end-of-input sentinel.
type Char struct {
	octets [UTFMax]byte
	width  uint8
	kind   Kind
}

func decodedChar(octets []byte) Char {
	c := Char{width: uint8(len(octets)), kind: KindDecoded} //nolint:gosec
	copy(c.octets[:], octets)

	return c
}

func failedChar(kind Kind, b byte) Char {
	return Char{octets: [UTFMax]byte{b}, kind: kind}
}

// Kind returns the decode outcome tag.
func (c Char) Kind() Kind {
	return c.kind
}

// Width returns the number of significant octets, 0 for non-decoded characters.
func (c Char) Width() int {
	return int(c.width)
}

// IsDecoded reports whether c holds a decoded character.
func (c Char) IsDecoded() bool {
	return c.kind == KindDecoded
}

// Octets returns all four octets, including the insignificant trailing zeros.
func (c Char) Octets() [UTFMax]byte {
	return c.octets
}

// Bytes returns a copy of the significant octets.
func (c Char) Bytes() []byte {
	return c.AppendTo(make([]byte, 0, c.width))
}

// AppendTo appends the significant octets of c to dst and returns the extended slice.
func (c Char) AppendTo(dst []byte) []byte {
	return append(dst, c.octets[:c.width]...)
}

// Byte returns the first octet: the lead byte of a decoded character or the
// offending byte of an invalid or truncated one.
func (c Char) Byte() byte {
	return c.octets[0]
}

// String returns the encoded character as a string, or "" for non-decoded characters.
func (c Char) String() string {
	return string(c.octets[:c.width])
}

// FirstInvalidContinuation returns the index of the first continuation octet of c
// that does not match 10xxxxxx, or -1 when all of them do.
func (c Char) FirstInvalidContinuation() int {
	for i := 1; i < int(c.width); i++ {
		if c.octets[i]&continuationMask != continuationHeader {
			return i
		}
	}

	return -1
}

// IsValid reports whether c is a well-formed UTF-8 character: it is decoded, its
// continuation bytes match 10xxxxxx, it uses the shortest encoding and its code
// point does not exceed MaxCodePoint.
func (c Char) IsValid() bool {
	if c.kind != KindDecoded || c.FirstInvalidContinuation() >= 0 {
		return false
	}

	cp := CodePoint(c)

	return cp >= minCodePoint[c.width-1] && cp <= MaxCodePoint
}

// DecodeError returns the error describing a non-decoded c read at offset, or nil
// when c is decoded.
func (c Char) DecodeError(offset int) *DecodeError {
	switch c.kind {
	case KindInvalidByte:
		return &DecodeError{Offset: offset, Byte: c.octets[0], Err: errs.ErrInvalidLeadByte}
	case KindTruncated:
		return &DecodeError{Offset: offset, Byte: c.octets[0], Err: errs.ErrTruncated}
	default:
		return nil
	}
}

// DecodeError describes a malformed position in an input buffer.
type DecodeError struct {
	// Offset is the byte offset of the offending byte.
	Offset int
	// Byte is the offending byte.
	Byte byte
	// Err is one of errs.ErrInvalidLeadByte, errs.ErrTruncated or errs.ErrInvalidContinuation.
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%v 0x%02x at offset %d", e.Err, e.Byte, e.Offset)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
