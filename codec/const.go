package codec

const (
	// UTFMax is the maximum number of bytes of an encoded character.
	UTFMax = 4
	// MaxCodePoint is the largest code point the codec encodes.
	MaxCodePoint = 0x10FFFF
	// ReplacementCodePoint is U+FFFD REPLACEMENT CHARACTER.
	ReplacementCodePoint = 0xFFFD
)

// Lead byte masks and headers. A mask keeps only the width-defining bits of a byte.
const (
	oneOctetMask     = 0b1000_0000
	oneOctetHeader   = 0b0000_0000
	twoOctetMask     = 0b1110_0000
	twoOctetHeader   = 0b1100_0000
	threeOctetMask   = 0b1111_0000
	threeOctetHeader = 0b1110_0000
	fourOctetMask    = 0b1111_1000
	fourOctetHeader  = 0b1111_0000

	continuationMask    = 0b1100_0000
	continuationHeader  = 0b1000_0000
	continuationPayload = 0b0011_1111
	continuationBits    = 6
)

// Largest code point representable with 1, 2, 3 and 4 octets.
const (
	maxOneOctet   = 0x7F
	maxTwoOctet   = 0x7FF
	maxThreeOctet = 0xFFFF
	maxFourOctet  = MaxCodePoint
)

type leadPattern struct {
	mask   byte
	header byte
}

// leadPatterns is indexed by width-1 and must be matched in order.
var leadPatterns = [UTFMax]leadPattern{
	{mask: oneOctetMask, header: oneOctetHeader},
	{mask: twoOctetMask, header: twoOctetHeader},
	{mask: threeOctetMask, header: threeOctetHeader},
	{mask: fourOctetMask, header: fourOctetHeader},
}

// minCodePoint is the smallest code point that needs width-1 extra octets; used
// to reject overlong encodings.
var minCodePoint = [UTFMax]uint32{0, maxOneOctet + 1, maxTwoOctet + 1, maxThreeOctet + 1}

// payloadMask keeps the value bits of a lead byte, indexed by width-1.
var payloadMask = [UTFMax]byte{0x7F, 0x1F, 0x0F, 0x07}
