package codec

import (
	"github.com/arloliu/ustr/errs"
	"github.com/hashicorp/go-multierror"
)

// Validate checks that data is well-formed UTF-8 as far as the codec is concerned.
//
// Unlike a decode loop it does not stop at the first problem: every invalid lead
// byte, malformed continuation byte and truncated trailing character is reported
// as a *DecodeError inside a *multierror.Error. Overlong forms are not reported.
//
// Returns nil when data is well-formed.
func Validate(data []byte) error {
	var result *multierror.Error

	for pos := 0; pos < len(data); {
		c := DecodeOne(data, pos)
		switch c.kind {
		case KindDecoded:
			if i := c.FirstInvalidContinuation(); i > 0 {
				result = multierror.Append(result, &DecodeError{
					Offset: pos + i,
					Byte:   c.octets[i],
					Err:    errs.ErrInvalidContinuation,
				})
				// the offending byte may itself start the next character
				pos += i

				continue
			}
			pos += c.Width()
		case KindTruncated:
			result = multierror.Append(result, c.DecodeError(pos))
			pos = len(data)
		default:
			result = multierror.Append(result, c.DecodeError(pos))
			pos++
		}
	}

	return result.ErrorOrNil()
}
