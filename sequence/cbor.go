package sequence

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

var (
	_ cbor.Marshaler   = (*Sequence)(nil)
	_ cbor.Unmarshaler = (*Sequence)(nil)
)

// MarshalCBOR encodes s as a CBOR byte string holding its compressed octets.
func (s *Sequence) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(s.AppendBytes(make([]byte, 0, s.ByteLen())))
}

// UnmarshalCBOR decodes a CBOR byte string produced by MarshalCBOR.
//
// The octets are decoded strictly: any invalid lead byte, truncated character or
// malformed continuation byte is an error and leaves s unchanged.
func (s *Sequence) UnmarshalCBOR(data []byte) error {
	var raw []byte
	if err := cbor.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("could not decode CBOR byte string: %w", err)
	}

	decoded, err := Decode(raw, WithStrictContinuation(true))
	if err != nil {
		return fmt.Errorf("could not decode sequence: %w", err)
	}
	s.chars = decoded.chars

	return nil
}
