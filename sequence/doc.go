// Package sequence provides Sequence, a growable container of decoded characters,
// and Compressed, its lossless byte form.
//
// A Sequence is built by decoding raw bytes (Decode), by appending characters or
// code points one at a time, or by concatenating two sequences. Compress turns it
// back into the significant octets of each character; decoding those bytes again
// yields an equal sequence:
//
//	seq, err := sequence.DecodeString("Привет, 😀 World")
//	if err != nil {
//	    return err
//	}
//	_ = seq.AppendCodePoint(0x1F979)
//
//	compressed := sequence.Compress(seq)
//	again, _ := compressed.Decode()
//	fmt.Println(seq.Equal(again)) // true
//
// # Invalid Input
//
// By default decoding stops at the first byte that is not a lead byte and returns
// the characters decoded so far together with a *codec.DecodeError. The
// WithInvalidPolicy option selects skipping, U+FFFD replacement or a textual
// `\xHH` escape instead.
//
// # Ownership
//
// Every Sequence and Compressed owns its storage. Concat, Clone and Slice always
// copy, so no two values ever share a backing array.
//
// Note: Sequence is NOT thread-safe. Concurrent mutation must be serialized by the caller.
package sequence
