package sequence

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/arloliu/ustr/codec"
	"github.com/arloliu/ustr/errs"
	"github.com/arloliu/ustr/internal/hash"
	"github.com/arloliu/ustr/internal/pool"
)

const (
	// DefaultCapacity is the initial capacity of a Sequence created by New.
	DefaultCapacity = 16
	// MaxCapacity is the maximum number of characters a Sequence can hold.
	MaxCapacity = 1 << 30

	// doublingThreshold is the capacity up to which growth doubles; beyond it
	// capacity grows by 25% per reallocation.
	doublingThreshold = 1 << 16
)

// Sequence is an ordered, growable sequence of decoded characters.
//
// Only codec.KindDecoded characters are stored. Len reports the number of
// characters; there is no terminator element.
type Sequence struct {
	chars []codec.Char
}

// New creates an empty Sequence with DefaultCapacity.
func New() *Sequence {
	return newSized(DefaultCapacity)
}

// NewWithCapacity creates an empty Sequence able to hold capacity characters
// before reallocating.
//
// Returns:
//   - *Sequence: The new sequence
//   - error: errs.ErrInvalidCapacity for negative capacities,
//     errs.ErrCapacityExceeded above MaxCapacity
func NewWithCapacity(capacity int) (*Sequence, error) {
	if err := checkCapacity(capacity); err != nil {
		return nil, err
	}

	return newSized(capacity), nil
}

// FromCodePoints creates a Sequence holding the encoding of each code point.
func FromCodePoints(codePoints ...uint32) (*Sequence, error) {
	s, err := NewWithCapacity(len(codePoints))
	if err != nil {
		return nil, err
	}

	for i, cp := range codePoints {
		if err := s.AppendCodePoint(cp); err != nil {
			return nil, fmt.Errorf("code point #%d: %w", i, err)
		}
	}

	return s, nil
}

func newSized(capacity int) *Sequence {
	return &Sequence{chars: make([]codec.Char, 0, capacity)}
}

func checkCapacity(capacity int) error {
	if capacity < 0 {
		return fmt.Errorf("%w: %d", errs.ErrInvalidCapacity, capacity)
	}
	if capacity > MaxCapacity {
		return fmt.Errorf("%w: %d characters exceeds maximum %d", errs.ErrCapacityExceeded, capacity, MaxCapacity)
	}

	return nil
}

// Len returns the number of characters. A nil Sequence is empty.
func (s *Sequence) Len() int {
	if s == nil {
		return 0
	}

	return len(s.chars)
}

// Cap returns the number of characters the sequence holds before reallocating.
func (s *Sequence) Cap() int {
	if s == nil {
		return 0
	}

	return cap(s.chars)
}

// grow makes sure n more characters fit without reallocating.
func (s *Sequence) grow(n int) error {
	required := len(s.chars) + n
	if required <= cap(s.chars) {
		return nil
	}

	if err := checkCapacity(required); err != nil {
		return err
	}

	newCap := 2 * cap(s.chars)
	if cap(s.chars) > doublingThreshold {
		newCap = cap(s.chars) + cap(s.chars)/4
	}
	newCap = min(max(newCap, required, DefaultCapacity), MaxCapacity)

	chars := make([]codec.Char, len(s.chars), newCap)
	copy(chars, s.chars)
	s.chars = chars

	return nil
}

// Append adds c at the end of the sequence.
//
// After Append the sequence holds exactly the prior characters followed by c.
// Growth is amortized: capacity doubles when it runs out.
//
// Returns:
//   - error: errs.ErrNotDecoded when c is not a decoded character,
//     errs.ErrCapacityExceeded when the sequence is full
func (s *Sequence) Append(c codec.Char) error {
	if !c.IsDecoded() {
		return fmt.Errorf("%w: %s", errs.ErrNotDecoded, c.Kind())
	}

	if err := s.grow(1); err != nil {
		return err
	}
	s.chars = append(s.chars, c)

	return nil
}

// AppendCodePoint encodes cp and appends it.
func (s *Sequence) AppendCodePoint(cp uint32) error {
	c, err := codec.FromCodePoint(cp)
	if err != nil {
		return err
	}

	return s.Append(c)
}

// Concat returns a new sequence holding the characters of a followed by those of b.
//
// Neither a nor b is modified and the result shares no storage with them. nil
// operands are treated as empty sequences.
func Concat(a, b *Sequence) (*Sequence, error) {
	s, err := NewWithCapacity(a.Len() + b.Len())
	if err != nil {
		return nil, err
	}

	if a != nil {
		s.chars = append(s.chars, a.chars...)
	}
	if b != nil {
		s.chars = append(s.chars, b.chars...)
	}

	return s, nil
}

// At returns the character at index i and whether i is in range.
func (s *Sequence) At(i int) (codec.Char, bool) {
	if i < 0 || i >= s.Len() {
		return codec.Char{}, false
	}

	return s.chars[i], true
}

// All returns an iterator over index/character pairs.
func (s *Sequence) All() iter.Seq2[int, codec.Char] {
	return func(yield func(int, codec.Char) bool) {
		for i := 0; i < s.Len(); i++ {
			if !yield(i, s.chars[i]) {
				return
			}
		}
	}
}

// CodePoints returns the code point of every character.
func (s *Sequence) CodePoints() []uint32 {
	cps := make([]uint32, s.Len())
	for i := range cps {
		cps[i] = codec.CodePoint(s.chars[i])
	}

	return cps
}

// ByteLen returns the number of significant octets, i.e. the length of the
// compressed form.
func (s *Sequence) ByteLen() int {
	n := 0
	for i := 0; i < s.Len(); i++ {
		n += s.chars[i].Width()
	}

	return n
}

// AppendBytes appends the significant octets of every character to dst.
func (s *Sequence) AppendBytes(dst []byte) []byte {
	for i := 0; i < s.Len(); i++ {
		dst = s.chars[i].AppendTo(dst)
	}

	return dst
}

// String returns the sequence as a UTF-8 string.
func (s *Sequence) String() string {
	var sb strings.Builder
	sb.Grow(s.ByteLen())
	for i := 0; i < s.Len(); i++ {
		sb.WriteString(s.chars[i].String())
	}

	return sb.String()
}

// Clone returns a copy of s with its own storage.
func (s *Sequence) Clone() *Sequence {
	c := newSized(max(s.Len(), DefaultCapacity))
	if s != nil {
		c.chars = append(c.chars, s.chars...)
	}

	return c
}

// Slice returns a copy of the characters in [i, j).
func (s *Sequence) Slice(i, j int) (*Sequence, error) {
	if i < 0 || j < i || j > s.Len() {
		return nil, fmt.Errorf("%w: [%d:%d] with length %d", errs.ErrIndexOutOfRange, i, j, s.Len())
	}

	c := newSized(j - i)
	c.chars = append(c.chars, s.chars[i:j]...)

	return c, nil
}

// Equal reports whether s and other hold the same characters in the same order.
func (s *Sequence) Equal(other *Sequence) bool {
	if s.Len() != other.Len() {
		return false
	}
	if s.Len() == 0 {
		return true
	}

	return slices.Equal(s.chars, other.chars)
}

// Hash returns the xxHash64 of the compressed form of s.
func (s *Sequence) Hash() uint64 {
	buf := pool.GetScratchBuffer()
	defer pool.PutScratchBuffer(buf)

	buf.B = s.AppendBytes(buf.B)

	return hash.Checksum(buf.B)
}

// Reset removes all characters and keeps the allocated storage.
func (s *Sequence) Reset() {
	s.chars = s.chars[:0]
}
