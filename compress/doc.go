// Package compress provides compression and decompression codecs for ustr blob payloads.
//
// A blob payload is the compressed form of a character sequence: the significant
// UTF-8 octets of every character, back to back. This package optionally applies a
// general-purpose compressor on top of it before the payload is framed:
//   - None: No compression (fastest, largest)
//   - Zstd: Best ratio on natural-language text, moderate speed
//   - S2: Balanced compression and speed
//   - LZ4: Fastest decompression, moderate ratio
//
// # Architecture
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// Codecs are selected by format.CompressionType:
//
//	codec, err := compress.GetCodec(format.CompressionS2)
//	if err != nil {
//	    return err
//	}
//	stored, err := codec.Compress(payload)
//
// # Zstd Implementations
//
// The default Zstd codec is the pure Go github.com/klauspost/compress/zstd with
// pooled encoders and decoders. Building with cgo and the gozstd tag switches to
// github.com/valyala/gozstd:
//
//	go build -tags gozstd ./...
//
// Both produce standard zstd frames, so blobs written by one build are readable by
// the other.
//
// # Thread Safety
//
// All codec implementations are stateless values and safe for concurrent use.
// Internal encoders and decoders are taken from sync.Pool instances per call.
//
// # Integration with Blob Package
//
// The blob package uses this package internally:
//
//	encoder, _ := blob.NewEncoder(blob.WithCompression(format.CompressionZstd))
//
// Decoders detect the compression from the blob header.
package compress
