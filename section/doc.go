// Package section defines the fixed-size header that frames a ustr blob.
//
// A blob is a header followed by a single payload holding the compressed octets of
// a character sequence, optionally run through a general-purpose compressor:
//
//	┌──────────────────────────────────────────────┐
//	│ Header (24 bytes, fixed)                     │
//	├──────────────────────────────────────────────┤
//	│ Payload (PayloadSize bytes)                  │
//	│  - UTF-8 octets, optionally NUL-terminated   │
//	│  - compressed with Flag.Compression          │
//	└──────────────────────────────────────────────┘
//
// # Header Format
//
//	Bytes  | Field        | Type   | Description
//	-------|--------------|--------|------------------------------------------
//	0-1    | Options      | uint16 | Flags and magic number, always little-endian
//	2      | Compression  | uint8  | format.CompressionType of the payload
//	3      | Reserved     | uint8  | Must be zero
//	4-7    | CharCount    | uint32 | Number of characters encoded
//	8-11   | RawSize      | uint32 | Payload size before compression
//	12-15  | PayloadSize  | uint32 | Payload size as stored
//	16-23  | Checksum     | uint64 | xxHash64 of the uncompressed payload
//
// # Flag Format
//
//	Bit 0: Endianness (0=little-endian, 1=big-endian) of fields 4-23
//	Bit 1: Payload ends with a 0x00 terminator
//	Bits 2-3: Reserved (must be 0)
//	Bits 4-15: Magic number (0xC810)
//
// The Options field is always stored little-endian so the endianness bit can be
// read before the engine for the remaining fields is chosen.
package section
