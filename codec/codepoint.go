package codec

import (
	"fmt"

	"github.com/arloliu/ustr/errs"
)

// CodePoint reassembles the code point of c from its significant octets.
// Non-decoded characters return 0.
func CodePoint(c Char) uint32 {
	if c.kind != KindDecoded || c.width == 0 {
		return 0
	}

	cp := uint32(c.octets[0] & payloadMask[c.width-1])
	for i := 1; i < int(c.width); i++ {
		cp = cp<<continuationBits | uint32(c.octets[i]&continuationPayload)
	}

	return cp
}

// FromCodePoint encodes cp into a Char.
//
// Code points are mapped by range: [0x00,0x7F] to 1 byte, [0x80,0x7FF] to 2,
// [0x800,0xFFFF] to 3 and [0x10000,0x10FFFF] to 4. Continuation bytes are filled
// least significant 6-bit chunk first; the remaining high bits go into the lead
// byte. Zero encodes as the one-byte U+0000. Surrogate code points are encoded
// bit-wise like any other 3-byte value.
//
// Returns:
//   - Char: The encoded character, the zero Char on error
//   - error: errs.ErrCodePointOutOfRange when cp exceeds MaxCodePoint
func FromCodePoint(cp uint32) (Char, error) {
	var width int
	switch {
	case cp <= maxOneOctet:
		width = 1
	case cp <= maxTwoOctet:
		width = 2
	case cp <= maxThreeOctet:
		width = 3
	case cp <= maxFourOctet:
		width = 4
	default:
		return Char{}, fmt.Errorf("%w: 0x%X", errs.ErrCodePointOutOfRange, cp)
	}

	c := Char{width: uint8(width), kind: KindDecoded} //nolint:gosec
	for i := width - 1; i > 0; i-- {
		c.octets[i] = continuationHeader | byte(cp&continuationPayload)
		cp >>= continuationBits
	}
	c.octets[0] = leadPatterns[width-1].header | byte(cp)

	return c, nil
}

// MustFromCodePoint is like FromCodePoint but panics when cp is out of range.
func MustFromCodePoint(cp uint32) Char {
	c, err := FromCodePoint(cp)
	if err != nil {
		panic(err)
	}

	return c
}
