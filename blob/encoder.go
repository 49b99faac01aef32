package blob

import (
	"fmt"

	"github.com/arloliu/ustr/errs"
	"github.com/arloliu/ustr/internal/hash"
	"github.com/arloliu/ustr/internal/options"
	"github.com/arloliu/ustr/internal/pool"
	"github.com/arloliu/ustr/section"
	"github.com/arloliu/ustr/sequence"
)

// Encoder encodes character sequences into blobs.
//
// The Encoder is safe for concurrent use; every call to Encode works on its own
// pooled buffer and header copy.
type Encoder struct {
	*EncoderConfig
}

// NewEncoder creates a new Encoder.
//
// Parameters:
//   - opts: Optional configuration (compression, endianness, terminator)
//
// Returns:
//   - *Encoder: New encoder instance
//   - error: Configuration error if invalid options provided
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	config := NewEncoderConfig()
	if err := options.Apply(config, opts...); err != nil {
		return nil, err
	}

	if err := config.setCodec(); err != nil {
		return nil, err
	}

	return &Encoder{EncoderConfig: config}, nil
}

// Encode frames the compressed form of s into a new blob.
func (e *Encoder) Encode(s *sequence.Sequence) (Blob, error) {
	buf := pool.GetBlobBuffer()
	defer pool.PutBlobBuffer(buf)

	buf.Grow(s.ByteLen() + 1)
	buf.B = s.AppendBytes(buf.B)

	return e.encodePayload(buf, s.Len())
}

// EncodeCompressed frames an already compressed sequence into a new blob.
func (e *Encoder) EncodeCompressed(c *sequence.Compressed) (Blob, error) {
	buf := pool.GetBlobBuffer()
	defer pool.PutBlobBuffer(buf)

	buf.Grow(c.Len() + 1)
	buf.MustWrite(c.Bytes())

	return e.encodePayload(buf, c.CharCount())
}

// encodePayload finishes the raw payload held by buf and writes header and stored
// payload into an exact-size slice owned by the returned Blob.
func (e *Encoder) encodePayload(buf *pool.ByteBuffer, charCount int) (Blob, error) {
	header := e.cloneHeader()

	if header.Flag.IsTerminated() {
		_ = buf.WriteByte(0)
	}
	raw := buf.Bytes()

	if uint64(len(raw)) > section.MaxPayloadSize || uint64(charCount) > section.MaxPayloadSize {
		return Blob{}, fmt.Errorf("%w: %d bytes, %d characters", errs.ErrInvalidPayloadSize, len(raw), charCount)
	}

	stored, err := e.codec.Compress(raw)
	if err != nil {
		return Blob{}, fmt.Errorf("failed to compress payload: %w", err)
	}
	if uint64(len(stored)) > section.MaxPayloadSize {
		return Blob{}, fmt.Errorf("%w: compressed payload is %d bytes", errs.ErrInvalidPayloadSize, len(stored))
	}

	header.CharCount = uint32(charCount)     //nolint:gosec
	header.RawSize = uint32(len(raw))        //nolint:gosec
	header.PayloadSize = uint32(len(stored)) //nolint:gosec
	header.Checksum = hash.Checksum(raw)

	// stored may alias the pooled buffer (no compression), so copy before returning.
	data := make([]byte, 0, section.HeaderSize+len(stored))
	data = header.AppendTo(data)
	data = append(data, stored...)

	return Blob{data: data, header: *header}, nil
}

// cloneHeader creates a shallow copy of the encoder's header template.
func (e *Encoder) cloneHeader() *section.Header {
	cloned := *e.header
	return &cloned
}
