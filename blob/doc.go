// Package blob frames character sequences into self-describing binary blobs.
//
// A blob is a section.Header followed by a payload: the compressed form of a
// sequence (the significant UTF-8 octets of each character), optionally ended by a
// 0x00 terminator and optionally run through one of the compress codecs. The header
// records the character count, the raw and stored payload sizes and an xxHash64
// checksum of the raw payload, so decoders detect truncation and corruption.
//
// # Encoding
//
//	encoder, err := blob.NewEncoder(
//	    blob.WithCompression(format.CompressionZstd),
//	    blob.WithTerminator(true),
//	)
//	if err != nil {
//	    return err
//	}
//
//	b, err := encoder.Encode(seq)
//	if err != nil {
//	    return err
//	}
//	os.WriteFile("greeting.u8b", b.Bytes(), 0o644)
//
// An Encoder is immutable after construction and may encode any number of
// sequences, also from several goroutines.
//
// # Decoding
//
//	seq, err := blob.Decode(data)
//
// or, to inspect the header before paying for decompression:
//
//	decoder, err := blob.NewDecoder(data)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(decoder.Header().CharCount)
//	seq, err := decoder.Decode(sequence.WithInvalidPolicy(format.PolicyReplace))
//
// Decoding verifies, in order: header size and flags, stored payload size,
// decompressed size, checksum, terminator and finally the character count.
package blob
