package compress

// ZstdCompressor provides Zstandard compression for blob payloads.
//
// Zstd gives the best ratio on natural-language text and is the right choice for
// archived or transmitted blobs where decompression happens infrequently.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
//
// Example:
//
//	compressor := NewZstdCompressor()
//	compressed, err := compressor.Compress(payload)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
