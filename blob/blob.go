package blob

import (
	"io"

	"github.com/arloliu/ustr/format"
	"github.com/arloliu/ustr/section"
)

// Blob is an encoded sequence: a header followed by the stored payload.
//
// A Blob owns its bytes and is immutable.
type Blob struct {
	data   []byte
	header section.Header
}

// Bytes returns the encoded blob.
//
// The returned slice shares storage with b; do not modify it.
func (b Blob) Bytes() []byte {
	return b.data
}

// Len returns the size of the encoded blob in bytes.
func (b Blob) Len() int {
	return len(b.data)
}

// Header returns the blob header.
func (b Blob) Header() section.Header {
	return b.header
}

// CharCount returns the number of characters the blob encodes.
func (b Blob) CharCount() int {
	return int(b.header.CharCount)
}

// Compression returns the payload compression type.
func (b Blob) Compression() format.CompressionType {
	return b.header.Flag.GetCompression()
}

// WriteTo writes the encoded blob to w.
func (b Blob) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.data)
	return int64(n), err
}
