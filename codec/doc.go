// Package codec converts between UTF-8 byte runs and single decoded characters.
//
// The package is the leaf of ustr: every function is pure, allocation free and
// safe for concurrent use. It works purely at the scalar value / byte level and
// carries no Unicode tables (no normalization, no grapheme segmentation).
//
// # Decoded Characters
//
// A Char keeps the original encoded octets (up to four) together with its width
// and a Kind tag. The tag separates the cases a C-style sentinel would conflate:
//
//	KindDecoded      a character, width 1-4
//	KindEndOfInput   nothing left to read (the zero Char)
//	KindInvalidByte  the byte at the read position is not a lead byte
//	KindTruncated    a lead byte announces more bytes than the input holds
//
// U+0000 is a regular one-byte character and never doubles as a terminator.
//
// # Lead Byte Classification
//
// LeadByteWidth matches a byte against four mask/header pairs in order:
//
//	0xxxxxxx  mask 0x80 header 0x00  1 byte
//	110xxxxx  mask 0xE0 header 0xC0  2 bytes
//	1110xxxx  mask 0xF0 header 0xE0  3 bytes
//	11110xxx  mask 0xF8 header 0xF0  4 bytes
//
// Continuation bytes (10xxxxxx) and 0xF8-0xFF classify as width 0.
//
// # Limitations
//
// DecodeOne copies the announced number of bytes verbatim and does not check
// that continuation bytes match 10xxxxxx. Use Char.IsValid or Validate when the
// input is untrusted.
package codec
