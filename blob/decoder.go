package blob

import (
	"fmt"

	"github.com/arloliu/ustr/compress"
	"github.com/arloliu/ustr/errs"
	"github.com/arloliu/ustr/internal/hash"
	"github.com/arloliu/ustr/section"
	"github.com/arloliu/ustr/sequence"
)

// Decoder decodes an encoded blob back into a character sequence.
//
// Note: The Decoder is NOT thread-safe. Each decoder instance should be used by a
// single goroutine at a time.
type Decoder struct {
	data   []byte
	header *section.Header
}

// NewDecoder creates a new Decoder for the given encoded data.
//
// The decoder validates the header but does not decompress the payload until
// Payload or Decode is called.
//
// Parameters:
//   - data: Encoded blob byte slice (must start with a valid header)
//
// Returns:
//   - *Decoder: New decoder instance
//   - error: Header parsing error or invalid data format
func NewDecoder(data []byte) (*Decoder, error) {
	decoder := &Decoder{
		data: data,
	}

	if err := decoder.parseHeader(); err != nil {
		return nil, err
	}

	return decoder, nil
}

// Header returns the parsed blob header.
func (d *Decoder) Header() section.Header {
	return *d.header
}

// Payload returns the verified raw payload without its terminator.
//
// Returns:
//   - []byte: The compressed form of the encoded sequence
//   - error: errs.ErrInvalidPayloadSize, errs.ErrChecksumMismatch or decompression errors
func (d *Decoder) Payload() ([]byte, error) {
	stored := d.data[section.PayloadOffset:]
	if uint64(len(stored)) != uint64(d.header.PayloadSize) {
		return nil, fmt.Errorf("%w: header declares %d stored bytes, got %d",
			errs.ErrInvalidPayloadSize, d.header.PayloadSize, len(stored))
	}

	raw, err := d.decompressPayload(stored)
	if err != nil {
		return nil, err
	}

	if sum := hash.Checksum(raw); sum != d.header.Checksum {
		return nil, fmt.Errorf("%w: expected 0x%016x, got 0x%016x", errs.ErrChecksumMismatch, d.header.Checksum, sum)
	}

	if d.header.Flag.IsTerminated() {
		if len(raw) == 0 || raw[len(raw)-1] != 0 {
			return nil, fmt.Errorf("%w: missing terminator", errs.ErrInvalidPayloadSize)
		}
		raw = raw[:len(raw)-1]
	}

	return raw, nil
}

// Decode decodes the payload into a new Sequence.
//
// opts are passed to sequence.Decode; with the defaults the result equals the
// sequence that was encoded. The number of decoded characters must match the
// header.
func (d *Decoder) Decode(opts ...sequence.DecodeOption) (*sequence.Sequence, error) {
	payload, err := d.Payload()
	if err != nil {
		return nil, err
	}

	s, err := sequence.Decode(payload, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to decode payload: %w", err)
	}

	if uint64(s.Len()) != uint64(d.header.CharCount) {
		return nil, fmt.Errorf("%w: header declares %d characters, decoded %d",
			errs.ErrCharCountMismatch, d.header.CharCount, s.Len())
	}

	return s, nil
}

// parseHeader parses the header section of the encoded data.
func (d *Decoder) parseHeader() error {
	if len(d.data) < section.HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	var header section.Header
	if err := header.Parse(d.data[:section.HeaderSize]); err != nil {
		return err
	}
	d.header = &header

	return nil
}

// decompressPayload decompresses the stored payload and verifies its size.
func (d *Decoder) decompressPayload(stored []byte) ([]byte, error) {
	codec, err := compress.GetCodec(d.header.Flag.GetCompression())
	if err != nil {
		return nil, fmt.Errorf("failed to create decompression codec: %w", err)
	}

	raw, err := codec.Decompress(stored)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress payload: %w", err)
	}

	if uint64(len(raw)) != uint64(d.header.RawSize) {
		return nil, fmt.Errorf("%w: decompressed size mismatch: expected %d, got %d",
			errs.ErrInvalidPayloadSize, d.header.RawSize, len(raw))
	}

	return raw, nil
}

// Decode decodes an encoded blob into a new Sequence. See Decoder.Decode.
func Decode(data []byte, opts ...sequence.DecodeOption) (*sequence.Sequence, error) {
	decoder, err := NewDecoder(data)
	if err != nil {
		return nil, err
	}

	return decoder.Decode(opts...)
}
