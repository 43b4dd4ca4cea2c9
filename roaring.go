package bitmap

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// ToRoaring copies the positions of all set bits into a new compressed
// roaring bitmap. Useful for handing an occupancy snapshot to diagnostics or
// index layers without exposing the backing storage.
func (b *Bitmap) ToRoaring() *roaring64.Bitmap {
	rb := roaring64.New()
	for i := range b.Bits() {
		rb.Add(i)
	}
	return rb
}

// FromRoaring creates a Bitmap of nbits elements with a bit set for each
// position contained in rb. A position at or beyond nbits is rejected with an
// error wrapping ErrOutOfRange before any storage is allocated.
func FromRoaring(rb *roaring64.Bitmap, nbits uint64, opts ...Option) (*Bitmap, error) {
	if !rb.IsEmpty() && rb.Maximum() >= nbits {
		return nil, fmt.Errorf("%w: roaring position %d, bit count %d", ErrOutOfRange, rb.Maximum(), nbits)
	}

	b, err := New(nbits, opts...)
	if err != nil {
		return nil, err
	}
	it := rb.Iterator()
	for it.HasNext() {
		b.TryToSet(it.Next())
	}
	return b, nil
}
