package bitmap

import "fmt"

// FromString creates a Bitmap of len(s) bits with a bit set for each '1'
// character at its string index.
//
// Characters other than '0' and '1' are rejected with an error wrapping
// ErrInvalidBitstring before any storage is allocated, so no partial bitmap is
// ever exposed. FromString and String are exact inverses for valid inputs.
func FromString(s string, opts ...Option) (*Bitmap, error) {
	for i := 0; i < len(s); i++ {
		if c := s[i]; c != '0' && c != '1' {
			return nil, fmt.Errorf("%w: expected 0 or 1 at index %d, got %q", ErrInvalidBitstring, i, c)
		}
	}

	b, err := New(uint64(len(s)), opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < len(s); i++ {
		if s[i] == '1' {
			b.TryToSet(uint64(i))
		}
	}
	return b, nil
}

// String renders every tracked bit as '0' or '1', index-ascending left to
// right. It implements fmt.Stringer.
func (b *Bitmap) String() string {
	return b.StringN(-1)
}

// StringN renders the first n bits; n == -1 means all tracked bits. A length
// beyond BitCount() is a precondition violation and panics with an error
// wrapping ErrOutOfRange.
func (b *Bitmap) StringN(n int) string {
	if n == -1 {
		n = int(b.elements)
	}
	if n < 0 || uint64(n) > b.elements {
		panic(fmt.Errorf("%w: prefix length %d, bit count %d", ErrOutOfRange, n, b.elements))
	}

	buf := make([]byte, n)
	for i := range buf {
		buf[i] = '0'
		if b.IsSet(uint64(i)) {
			buf[i] = '1'
		}
	}
	return string(buf)
}
