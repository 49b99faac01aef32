package section

import "math"

const (
	// Bit masks
	EndiannessMask   = 0x0001 // Mask for endianness bit (bit 0)
	TerminatedMask   = 0x0002 // Mask for NUL-terminated payload bit (bit 1)
	ReservedBitsMask = 0x000C // Mask for reserved bits (bits 2-3)
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)

	// MagicSequenceV1Opt is a version 1 magic number for the sequence blob format.
	MagicSequenceV1Opt = 0xC810
)

const (
	HeaderSize     = 24             // fixed header size in bytes
	PayloadOffset  = HeaderSize     // byte offset where the payload starts
	MaxPayloadSize = math.MaxUint32 // maximum payload size in bytes
)
