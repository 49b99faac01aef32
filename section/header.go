package section

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/ustr/endian"
	"github.com/arloliu/ustr/errs"
)

// Header represents the fixed-size header section of a blob.
// It is 24 bytes and describes the payload that follows it.
type Header struct {
	// Flag is a packed field for options, magic number (0xC810) and compression.
	Flag Flag // 3 bytes, offset 0-2

	Reserved uint8 // Reserved for future use, must be zero, offset 3

	// CharCount is the number of characters encoded by the payload.
	CharCount uint32 // 4 bytes, offset 4-7
	// RawSize is the uncompressed size of the payload in bytes, terminator included.
	RawSize uint32 // 4 bytes, offset 8-11
	// PayloadSize is the stored size of the payload in bytes.
	PayloadSize uint32 // 4 bytes, offset 12-15
	// Checksum is the xxHash64 of the uncompressed payload.
	Checksum uint64 // 8 bytes, offset 16-23
}

// NewHeader creates a new Header with default flags for a payload of charCount
// characters.
func NewHeader(charCount int) (*Header, error) {
	if charCount < 0 || uint64(charCount) > MaxPayloadSize {
		return nil, fmt.Errorf("%w: %d characters", errs.ErrInvalidPayloadSize, charCount)
	}

	return &Header{
		Flag:      NewFlag(),
		CharCount: uint32(charCount), //nolint: gosec
	}, nil
}

// Parse parses the header from a byte slice.
// It returns an error if the data is not exactly 24 bytes or if the flags are invalid.
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	// Options is always little-endian; it carries the endianness of the rest.
	h.Flag.Options = binary.LittleEndian.Uint16(data[0:2])
	h.Flag.Compression = data[2]
	h.Reserved = data[3]

	engine := h.GetEndianEngine()

	h.CharCount = engine.Uint32(data[4:8])
	h.RawSize = engine.Uint32(data[8:12])
	h.PayloadSize = engine.Uint32(data[12:16])
	h.Checksum = engine.Uint64(data[16:24])

	if err := h.Flag.Validate(); err != nil {
		return err
	}
	if h.Reserved != 0 {
		return errs.ErrInvalidHeaderFlags
	}

	return nil
}

// Bytes serializes the Header into a byte slice.
func (h *Header) Bytes() []byte {
	return h.AppendTo(make([]byte, 0, HeaderSize))
}

// AppendTo appends the serialized header to dst.
func (h *Header) AppendTo(dst []byte) []byte {
	engine := h.GetEndianEngine()

	dst = binary.LittleEndian.AppendUint16(dst, h.Flag.Options)
	dst = append(dst, h.Flag.Compression, h.Reserved)
	dst = engine.AppendUint32(dst, h.CharCount)
	dst = engine.AppendUint32(dst, h.RawSize)
	dst = engine.AppendUint32(dst, h.PayloadSize)
	dst = engine.AppendUint64(dst, h.Checksum)

	return dst
}

// GetEndianEngine returns the appropriate endian engine based on the header flags.
func (h *Header) GetEndianEngine() endian.EndianEngine {
	if h.Flag.IsBigEndian() {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}

// IsValidFlags checks if the header flags are valid.
func (h *Header) IsValidFlags() bool {
	return h.Flag.Validate() == nil
}
