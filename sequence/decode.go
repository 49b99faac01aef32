package sequence

import (
	"fmt"

	"github.com/arloliu/ustr/codec"
	"github.com/arloliu/ustr/errs"
	"github.com/arloliu/ustr/format"
	"github.com/arloliu/ustr/internal/options"
)

// DecodeOption configures Decode.
type DecodeOption = options.Option[*decodeConfig]

type decodeConfig struct {
	policy        format.InvalidPolicy
	nulTerminated bool
	strict        bool
}

func newDecodeConfig() *decodeConfig {
	return &decodeConfig{policy: format.PolicyStop}
}

// WithInvalidPolicy selects how bytes that cannot be decoded are handled.
// The default is format.PolicyStop.
func WithInvalidPolicy(policy format.InvalidPolicy) DecodeOption {
	return options.New(func(c *decodeConfig) error {
		if !policy.IsValid() {
			return fmt.Errorf("%w: %d", errs.ErrInvalidPolicy, policy)
		}
		c.policy = policy

		return nil
	})
}

// WithNULTerminator makes decoding stop at the first 0x00 byte, as for C strings.
// By default 0x00 decodes as U+0000.
func WithNULTerminator(enabled bool) DecodeOption {
	return options.NoError(func(c *decodeConfig) {
		c.nulTerminated = enabled
	})
}

// WithStrictContinuation makes decoding treat a lead byte whose continuation
// bytes do not match 10xxxxxx as an invalid byte. By default continuation bytes
// are copied unchecked.
func WithStrictContinuation(enabled bool) DecodeOption {
	return options.NoError(func(c *decodeConfig) {
		c.strict = enabled
	})
}

var replacementChar = codec.MustFromCodePoint(codec.ReplacementCodePoint)

const hexDigits = "0123456789abcdef"

// Decode decodes data into a new Sequence.
//
// The sequence is allocated for the worst case of one character per byte. The
// input is walked character by character with codec.DecodeOne. A byte that is not
// a lead byte, a truncated trailing character and (with WithStrictContinuation) a
// malformed continuation byte are handled according to the invalid byte policy:
//   - format.PolicyStop: decoding halts; the characters decoded so far are
//     returned together with a *codec.DecodeError
//   - format.PolicySkip: the byte is dropped
//   - format.PolicyReplace: U+FFFD is appended instead
//   - format.PolicyEscape: the four characters `\xHH` are appended instead
//
// Parameters:
//   - data: Input bytes, not retained
//   - opts: Decode options
//
// Returns:
//   - *Sequence: The decoded characters (nil only for option or capacity errors)
//   - error: Option errors, errs.ErrCapacityExceeded, or a *codec.DecodeError with
//     format.PolicyStop
func Decode(data []byte, opts ...DecodeOption) (*Sequence, error) {
	cfg := newDecodeConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	s, err := NewWithCapacity(len(data) + 1)
	if err != nil {
		return nil, err
	}

	for pos := 0; pos < len(data); {
		if cfg.nulTerminated && data[pos] == 0 {
			break
		}

		c := codec.DecodeOne(data, pos)
		derr := c.DecodeError(pos)
		if derr == nil && cfg.strict {
			if i := c.FirstInvalidContinuation(); i > 0 {
				derr = &codec.DecodeError{Offset: pos + i, Byte: data[pos+i], Err: errs.ErrInvalidContinuation}
			}
		}

		if derr != nil {
			if cfg.policy == format.PolicyStop {
				return s, derr
			}
			if err := s.appendInvalid(cfg.policy, data[pos]); err != nil {
				return s, err
			}
			pos++

			continue
		}

		s.chars = append(s.chars, c)
		pos += c.Width()
	}

	return s, nil
}

// DecodeString decodes the bytes of str into a new Sequence. See Decode.
func DecodeString(str string, opts ...DecodeOption) (*Sequence, error) {
	return Decode([]byte(str), opts...)
}

func (s *Sequence) appendInvalid(policy format.InvalidPolicy, b byte) error {
	switch policy {
	case format.PolicySkip:
		return nil
	case format.PolicyReplace:
		return s.Append(replacementChar)
	case format.PolicyEscape:
		if err := s.grow(4); err != nil {
			return err
		}
		for _, e := range [4]byte{'\\', 'x', hexDigits[b>>4], hexDigits[b&0x0F]} {
			s.chars = append(s.chars, codec.MustFromCodePoint(uint32(e)))
		}

		return nil
	default:
		return fmt.Errorf("%w: %s", errs.ErrInvalidPolicy, policy)
	}
}
