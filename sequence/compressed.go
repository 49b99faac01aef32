package sequence

import (
	"io"

	"github.com/arloliu/ustr/codec"
	"github.com/arloliu/ustr/internal/pool"
)

// Compressed holds only the significant octets of each character of a sequence,
// in order. It owns its storage.
type Compressed struct {
	data  []byte
	chars int
}

// Compress copies the significant octets of every character of s into a new
// Compressed value.
//
// A pooled scratch buffer sized for the worst case of four octets per character
// is filled first; the result is an exact-size copy owned by the caller.
// Decoding the result reconstructs a sequence equal to s.
func Compress(s *Sequence) *Compressed {
	buf := pool.GetScratchBuffer()
	defer pool.PutScratchBuffer(buf)

	buf.Grow(s.Len() * codec.UTFMax)
	buf.B = s.AppendBytes(buf.B)

	return &Compressed{
		data:  buf.Clone(),
		chars: s.Len(),
	}
}

// Bytes returns the compressed octets without a terminator.
//
// The returned slice shares storage with c; do not modify it.
func (c *Compressed) Bytes() []byte {
	return c.data
}

// Terminated returns a copy of the compressed octets followed by a single 0x00
// byte, the form expected by C string consumers.
func (c *Compressed) Terminated() []byte {
	out := make([]byte, len(c.data)+1)
	copy(out, c.data)

	return out
}

// Len returns the number of compressed octets, excluding any terminator.
func (c *Compressed) Len() int {
	return len(c.data)
}

// CharCount returns the number of characters the octets encode.
func (c *Compressed) CharCount() int {
	return c.chars
}

// Decode reconstructs the sequence from the compressed octets.
func (c *Compressed) Decode(opts ...DecodeOption) (*Sequence, error) {
	return Decode(c.data, opts...)
}

// WriteTo writes the compressed octets to w.
func (c *Compressed) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(c.data)
	return int64(n), err
}
