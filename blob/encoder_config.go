package blob

import (
	"fmt"

	"github.com/arloliu/ustr/compress"
	"github.com/arloliu/ustr/endian"
	"github.com/arloliu/ustr/errs"
	"github.com/arloliu/ustr/format"
	"github.com/arloliu/ustr/internal/options"
	"github.com/arloliu/ustr/section"
)

// EncoderConfig holds the header template and payload codec shared by every blob an
// Encoder produces.
type EncoderConfig struct {
	header *section.Header
	codec  compress.Codec
}

// NewEncoderConfig creates an EncoderConfig with default settings: little-endian,
// no terminator and no compression.
func NewEncoderConfig() *EncoderConfig {
	header, _ := section.NewHeader(0)

	return &EncoderConfig{header: header}
}

// setCompression sets the payload compression type.
func (c *EncoderConfig) setCompression(comp format.CompressionType) error {
	if !comp.IsValid() {
		return fmt.Errorf("%w: %d", errs.ErrInvalidCompression, comp)
	}
	c.header.Flag.SetCompression(comp)

	return nil
}

// setEndianess sets the endianness option.
func (c *EncoderConfig) setEndianess(endiness endianness) {
	switch endiness {
	case bigEndianOpt:
		c.header.Flag.WithBigEndian()
	case nativeEndianOpt:
		if endian.IsNativeBigEndian() {
			c.header.Flag.WithBigEndian()
		} else {
			c.header.Flag.WithLittleEndian()
		}
	default:
		c.header.Flag.WithLittleEndian()
	}
}

// setCodec initializes the payload codec from the header configuration.
func (c *EncoderConfig) setCodec() error {
	codec, err := compress.CreateCodec(c.header.Flag.GetCompression(), "payload")
	if err != nil {
		return fmt.Errorf("failed to create payload codec: %w", err)
	}
	c.codec = codec

	return nil
}

// Header returns a copy of the header template.
func (c *EncoderConfig) Header() section.Header {
	return *c.header
}

// endianness represents the byte order configuration option.
type endianness uint8

const (
	littleEndianOpt endianness = iota
	bigEndianOpt
	nativeEndianOpt
)

// EncoderOption represents a functional option for configuring the EncoderConfig.
type EncoderOption = options.Option[*EncoderConfig]

// WithCompression sets the payload compression. The default is format.CompressionNone.
func WithCompression(comp format.CompressionType) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		return c.setCompression(comp)
	})
}

// WithLittleEndian writes header fields in little-endian byte order. This is the default.
func WithLittleEndian() EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.setEndianess(littleEndianOpt)
	})
}

// WithBigEndian writes header fields in big-endian byte order.
func WithBigEndian() EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.setEndianess(bigEndianOpt)
	})
}

// WithNativeEndian writes header fields in the byte order of the host.
func WithNativeEndian() EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.setEndianess(nativeEndianOpt)
	})
}

// WithTerminator appends a 0x00 byte to the payload so it can be handed to C string
// consumers after decompression.
func WithTerminator(enabled bool) EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.header.Flag.SetTerminated(enabled)
	})
}
