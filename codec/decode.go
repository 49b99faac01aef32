package codec

// LeadByteWidth returns the number of bytes of the character starting with b.
//
// The byte is matched against the 1, 2, 3 and 4 octet lead patterns in that
// order. Continuation bytes and bytes matching no pattern return 0.
func LeadByteWidth(b byte) int {
	for i, p := range leadPatterns {
		if b&p.mask == p.header {
			return i + 1
		}
	}

	return 0
}

// DecodeOne decodes the character starting at data[pos].
//
// The announced number of bytes is copied verbatim; continuation bytes are not
// checked (see Char.IsValid).
//
// Parameters:
//   - data: Input bytes
//   - pos: Byte offset of the lead byte
//
// Returns:
//   - Char: KindEndOfInput when pos is outside data, KindInvalidByte when data[pos]
//     is not a lead byte, KindTruncated when the character runs past the end of
//     data, KindDecoded otherwise
func DecodeOne(data []byte, pos int) Char {
	if pos < 0 || pos >= len(data) {
		return Char{}
	}

	lead := data[pos]
	width := LeadByteWidth(lead)
	if width == 0 {
		return failedChar(KindInvalidByte, lead)
	}

	if width > len(data)-pos {
		return failedChar(KindTruncated, lead)
	}

	return decodedChar(data[pos : pos+width])
}

// DecodeSkippingInvalid decodes the first character found at or after offset.
//
// Bytes that are not lead bytes are skipped, so an offset landing in the middle
// of a multi-byte character resumes at the next character. The scan never goes
// past the end of data.
//
// Parameters:
//   - data: Input bytes
//   - offset: Byte offset to start scanning from (negative offsets start at 0)
//
// Returns:
//   - Char: The character read at the returned position (KindDecoded or KindTruncated)
//   - int: Position of the lead byte, or -1 with a KindEndOfInput Char when no lead
//     byte exists between offset and the end of data
func DecodeSkippingInvalid(data []byte, offset int) (Char, int) {
	pos := max(offset, 0)
	for pos < len(data) && LeadByteWidth(data[pos]) == 0 {
		pos++
	}

	if pos >= len(data) {
		return Char{}, -1
	}

	return DecodeOne(data, pos), pos
}
