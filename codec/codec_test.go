package codec

import (
	"errors"
	"testing"
	"unicode/utf8"

	"github.com/arloliu/ustr/errs"
	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// LeadByteWidth Tests
// =============================================================================

func TestLeadByteWidth_AllBytes(t *testing.T) {
	for i := 0; i <= 0xFF; i++ {
		b := byte(i)

		var want int
		switch {
		case b <= 0x7F:
			want = 1
		case b >= 0xC0 && b <= 0xDF:
			want = 2
		case b >= 0xE0 && b <= 0xEF:
			want = 3
		case b >= 0xF0 && b <= 0xF7:
			want = 4
		}

		require.Equalf(t, want, LeadByteWidth(b), "byte 0x%02x", b)
	}
}

func TestLeadByteWidth_ContinuationBytes(t *testing.T) {
	for b := 0x80; b <= 0xBF; b++ {
		require.Zero(t, LeadByteWidth(byte(b)))
	}
}

// =============================================================================
// DecodeOne Tests
// =============================================================================

func TestDecodeOne(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		codePoint uint32
		width     int
	}{
		{"ascii", "A", 65, 1},
		{"nul", "\x00", 0, 1},
		{"cyrillic a", "а", 1072, 2},
		{"lao", "ລ", 3749, 3},
		{"grinning face", "😀", 128512, 4},
		{"face holding back tears", "🥹", 129401, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DecodeOne([]byte(tt.input), 0)

			require.Equal(t, KindDecoded, c.Kind())
			require.True(t, c.IsDecoded())
			require.Equal(t, tt.width, c.Width())
			require.Equal(t, tt.codePoint, CodePoint(c))
			require.Equal(t, tt.input, c.String())
			require.Equal(t, []byte(tt.input), c.Bytes())
			require.True(t, c.IsValid())
		})
	}
}

func TestDecodeOne_Position(t *testing.T) {
	data := []byte("aб😀")

	require.Equal(t, "a", DecodeOne(data, 0).String())
	require.Equal(t, "б", DecodeOne(data, 1).String())
	require.Equal(t, "😀", DecodeOne(data, 3).String())

	// middle of a character
	c := DecodeOne(data, 2)
	require.Equal(t, KindInvalidByte, c.Kind())
	require.Equal(t, data[2], c.Byte())
}

func TestDecodeOne_EndOfInput(t *testing.T) {
	data := []byte("ab")

	for _, pos := range []int{-1, 2, 100} {
		c := DecodeOne(data, pos)
		require.Equal(t, KindEndOfInput, c.Kind())
		require.Zero(t, c.Width())
		require.Equal(t, Char{}, c)
	}

	require.Equal(t, KindEndOfInput, DecodeOne(nil, 0).Kind())
}

func TestDecodeOne_InvalidByte(t *testing.T) {
	for _, b := range []byte{0x80, 0xBF, 0xF8, 0xFF} {
		c := DecodeOne([]byte{b, 'a'}, 0)

		require.Equal(t, KindInvalidByte, c.Kind())
		require.Zero(t, c.Width())
		require.Equal(t, b, c.Byte())
		require.Empty(t, c.String())
		require.Zero(t, CodePoint(c))
		require.False(t, c.IsValid())
	}
}

func TestDecodeOne_Truncated(t *testing.T) {
	c := DecodeOne([]byte("\xE2\x82"), 0)

	require.Equal(t, KindTruncated, c.Kind())
	require.Zero(t, c.Width())
	require.Equal(t, byte(0xE2), c.Byte())

	derr := c.DecodeError(7)
	require.NotNil(t, derr)
	require.ErrorIs(t, derr, errs.ErrTruncated)
	require.Equal(t, 7, derr.Offset)
}

func TestDecodeOne_UncheckedContinuation(t *testing.T) {
	// a valid lead byte followed by a non-continuation byte is accepted as-is
	c := DecodeOne([]byte("\xC3A"), 0)

	require.Equal(t, KindDecoded, c.Kind())
	require.Equal(t, 2, c.Width())
	require.Equal(t, 1, c.FirstInvalidContinuation())
	require.False(t, c.IsValid())
}

func TestChar_IsValid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"ascii", "z", true},
		{"max code point", "\xF4\x8F\xBF\xBF", true},
		{"overlong nul", "\xC0\x80", false},
		{"overlong slash", "\xE0\x80\xAF", false},
		{"beyond max code point", "\xF4\x90\x80\x80", false},
		{"lead byte F7", "\xF7\xBF\xBF\xBF", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DecodeOne([]byte(tt.input), 0)
			require.True(t, c.IsDecoded())
			require.Equal(t, tt.valid, c.IsValid())
		})
	}
}

func TestChar_Octets(t *testing.T) {
	c := DecodeOne([]byte("б"), 0)

	require.Equal(t, [UTFMax]byte{0xD0, 0xB1, 0, 0}, c.Octets())
	require.Equal(t, []byte("xб"), c.AppendTo([]byte("x")))
	require.Nil(t, c.DecodeError(0))
}

// =============================================================================
// DecodeSkippingInvalid Tests
// =============================================================================

func TestDecodeSkippingInvalid(t *testing.T) {
	data := []byte("Привет")

	t.Run("offset on lead byte", func(t *testing.T) {
		c, pos := DecodeSkippingInvalid(data, 0)
		require.Equal(t, 0, pos)
		require.Equal(t, "П", c.String())
	})

	t.Run("offset inside character", func(t *testing.T) {
		c, pos := DecodeSkippingInvalid(data, 1)
		require.Equal(t, 2, pos)
		require.Equal(t, "р", c.String())
	})

	t.Run("negative offset", func(t *testing.T) {
		c, pos := DecodeSkippingInvalid(data, -5)
		require.Equal(t, 0, pos)
		require.Equal(t, "П", c.String())
	})

	t.Run("no lead byte before end", func(t *testing.T) {
		c, pos := DecodeSkippingInvalid([]byte("a\x80\x81\xBF"), 1)
		require.Equal(t, -1, pos)
		require.Equal(t, KindEndOfInput, c.Kind())
	})

	t.Run("offset past end", func(t *testing.T) {
		c, pos := DecodeSkippingInvalid(data, len(data))
		require.Equal(t, -1, pos)
		require.Equal(t, KindEndOfInput, c.Kind())
	})

	t.Run("truncated tail", func(t *testing.T) {
		c, pos := DecodeSkippingInvalid([]byte("\x80\xF0\x9F"), 0)
		require.Equal(t, 1, pos)
		require.Equal(t, KindTruncated, c.Kind())
	})
}

// =============================================================================
// Code Point Tests
// =============================================================================

func TestFromCodePoint(t *testing.T) {
	tests := []struct {
		codePoint uint32
		want      string
	}{
		{0x00, "\x00"},
		{0x41, "A"},
		{0x7F, "\x7F"},
		{0x80, "\u0080"},
		{1072, "а"},
		{0x7FF, "\u07FF"},
		{0x800, "\u0800"},
		{3749, "ລ"},
		{0xFFFF, "\uFFFF"},
		{0x10000, "\U00010000"},
		{128512, "😀"},
		{129401, "🥹"},
		{0x10FFFF, "\U0010FFFF"},
	}
	for _, tt := range tests {
		c, err := FromCodePoint(tt.codePoint)
		require.NoError(t, err)
		require.Equalf(t, tt.want, c.String(), "code point 0x%X", tt.codePoint)
		require.Equal(t, len(tt.want), c.Width())
		require.Equal(t, KindDecoded, c.Kind())
		require.Equal(t, tt.codePoint, CodePoint(c))
	}
}

func TestFromCodePoint_CyrillicA(t *testing.T) {
	c, err := FromCodePoint(1072)
	require.NoError(t, err)
	require.Equal(t, 2, c.Width())

	decoded := DecodeOne(c.Bytes(), 0)
	require.Equal(t, c, decoded)
	require.Equal(t, uint32(1072), CodePoint(decoded))
}

func TestFromCodePoint_Zero(t *testing.T) {
	c, err := FromCodePoint(0)
	require.NoError(t, err)

	require.True(t, c.IsDecoded())
	require.Equal(t, 1, c.Width())
	require.NotEqual(t, Char{}, c, "U+0000 must differ from the end-of-input sentinel")
	require.True(t, c.IsValid())
}

func TestFromCodePoint_OutOfRange(t *testing.T) {
	for _, cp := range []uint32{MaxCodePoint + 1, 0x7FFFFFFF, 0xFFFFFFFF} {
		c, err := FromCodePoint(cp)
		require.ErrorIs(t, err, errs.ErrCodePointOutOfRange)
		require.Equal(t, KindEndOfInput, c.Kind())
		require.Zero(t, c.Width())
	}

	require.Panics(t, func() { MustFromCodePoint(MaxCodePoint + 1) })
}

func TestFromCodePoint_Surrogate(t *testing.T) {
	c := MustFromCodePoint(0xD800)

	require.Equal(t, []byte{0xED, 0xA0, 0x80}, c.Bytes())
	require.Equal(t, uint32(0xD800), CodePoint(c))
}

func TestCodePoint_RoundTrip(t *testing.T) {
	buf := make([]byte, utf8.UTFMax)
	for cp := uint32(1); cp <= MaxCodePoint; cp++ {
		if cp >= 0xD800 && cp <= 0xDFFF {
			continue
		}

		c, err := FromCodePoint(cp)
		if err != nil {
			t.Fatalf("FromCodePoint(0x%X): %v", cp, err)
		}
		if got := CodePoint(c); got != cp {
			t.Fatalf("round trip 0x%X: got 0x%X", cp, got)
		}

		n := utf8.EncodeRune(buf, rune(cp))
		if string(buf[:n]) != c.String() {
			t.Fatalf("encoding of 0x%X differs from unicode/utf8", cp)
		}
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "EndOfInput", KindEndOfInput.String())
	assert.Equal(t, "Decoded", KindDecoded.String())
	assert.Equal(t, "InvalidByte", KindInvalidByte.String())
	assert.Equal(t, "Truncated", KindTruncated.String())
	assert.Equal(t, "Unknown", Kind(42).String())
}

// =============================================================================
// Validate Tests
// =============================================================================

func TestValidate_WellFormed(t *testing.T) {
	require.NoError(t, Validate(nil))
	require.NoError(t, Validate([]byte("Привет, 😀ອັກສອນລາວ World")))
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	data := []byte("a\x80b\xC3Ac\xE2\x82")

	err := Validate(data)
	require.Error(t, err)

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	require.Len(t, merr.Errors, 3)

	want := []struct {
		offset int
		b      byte
		err    error
	}{
		{1, 0x80, errs.ErrInvalidLeadByte},
		{4, 'A', errs.ErrInvalidContinuation},
		{6, 0xE2, errs.ErrTruncated},
	}
	for i, w := range want {
		var derr *DecodeError
		require.True(t, errors.As(merr.Errors[i], &derr))
		require.Equal(t, w.offset, derr.Offset)
		require.Equal(t, w.b, derr.Byte)
		require.ErrorIs(t, derr, w.err)
	}
}

func TestDecodeError_Error(t *testing.T) {
	err := &DecodeError{Offset: 3, Byte: 0x80, Err: errs.ErrInvalidLeadByte}
	require.Equal(t, "invalid lead byte 0x80 at offset 3", err.Error())
}

// =============================================================================
// Benchmarks
// =============================================================================

func BenchmarkDecodeOne(b *testing.B) {
	data := []byte("😀")
	for b.Loop() {
		_ = DecodeOne(data, 0)
	}
}

func BenchmarkFromCodePoint(b *testing.B) {
	for b.Loop() {
		_, _ = FromCodePoint(128512)
	}
}

func BenchmarkValidate(b *testing.B) {
	data := []byte("OoZe9ab8 тхеед4Бе еЦхамаЪ0 Привет, 😀ອັກສອນລາວ World")
	b.SetBytes(int64(len(data)))
	for b.Loop() {
		_ = Validate(data)
	}
}
