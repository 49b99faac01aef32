package section

import (
	"github.com/arloliu/ustr/errs"
	"github.com/arloliu/ustr/format"
)

// Flag represents the packed options and the compression type of a blob header.
type Flag struct {
	// Options is a packed field for various options.
	// Bit 0 is endianness flag, 0 means little-endian, 1 means big-endian.
	// Bit 1 is terminator flag, 1 means the payload ends with a 0x00 byte.
	// Bits 2-3 are reserved for future use, must be set to 0.
	// Bits 4-15 are magic number to identify the blob format:
	//   - 0xC810 (0b1100_1000_0001_0000): sequence blob format v1
	Options uint16

	// Compression indicates the compression used for the payload.
	// Valid values: CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4
	Compression uint8
}

// NewFlag creates a new Flag with default settings: little-endian, no terminator
// and no compression.
func NewFlag() Flag {
	flag := Flag{
		Options:     MagicSequenceV1Opt,
		Compression: uint8(format.CompressionNone),
	}
	flag.WithLittleEndian()

	return flag
}

// IsLittleEndian returns whether the header fields are little-endian.
func (f Flag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// IsBigEndian returns whether the header fields are big-endian.
func (f Flag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithLittleEndian sets little-endian byte order.
func (f *Flag) WithLittleEndian() {
	f.Options &^= EndiannessMask
}

// WithBigEndian sets big-endian byte order.
func (f *Flag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// IsTerminated returns whether the payload ends with a 0x00 byte.
func (f Flag) IsTerminated() bool {
	return (f.Options & TerminatedMask) != 0
}

// SetTerminated enables or disables the payload terminator.
func (f *Flag) SetTerminated(enabled bool) {
	if enabled {
		f.Options |= TerminatedMask
	} else {
		f.Options &^= TerminatedMask
	}
}

// GetMagicNumber returns the magic number from the Options field.
func (f Flag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// SetCompression sets the payload compression type.
func (f *Flag) SetCompression(compression format.CompressionType) {
	f.Compression = uint8(compression)
}

// GetCompression returns the payload compression type.
func (f Flag) GetCompression() format.CompressionType {
	return format.CompressionType(f.Compression)
}

// Validate checks if the flag contains valid values.
func (f Flag) Validate() error {
	if f.GetMagicNumber() != MagicSequenceV1Opt {
		return errs.ErrInvalidHeaderFlags
	}

	if (f.Options & ReservedBitsMask) != 0 {
		return errs.ErrInvalidHeaderFlags
	}

	if !f.GetCompression().IsValid() {
		return errs.ErrInvalidCompression
	}

	return nil
}
