package bitmap

import (
	"iter"
	"math/bits"
	"unsafe"
)

// SetBitIterator is a forward, non-owning cursor over the set bits of one
// Bitmap. Its index is either the position of a set bit or exactly BitCount(),
// the unique end sentinel. It must not outlive the bitmap it references, and
// mutating the bitmap invalidates it.
type SetBitIterator struct {
	b *Bitmap
	i uint64
}

// Begin returns an iterator positioned on the lowest set bit, or End() if no
// bit is set.
func (b *Bitmap) Begin() SetBitIterator {
	return SetBitIterator{b: b, i: b.nextSet(0)}
}

// End returns the end sentinel iterator.
func (b *Bitmap) End() SetBitIterator {
	return SetBitIterator{b: b, i: b.elements}
}

// Advance moves the iterator to the next set bit strictly after the current
// index, landing exactly on the end sentinel when none remains.
func (it *SetBitIterator) Advance() {
	it.i = it.b.nextSet(it.i + 1)
}

// Index returns the current position. The iterator enumerates positions of
// set bits, not bit values.
func (it SetBitIterator) Index() uint64 {
	return it.i
}

// Equal reports whether both iterators reference the same bitmap storage and
// the same index. Iterators over different bitmaps never compare equal.
func (it SetBitIterator) Equal(other SetBitIterator) bool {
	return unsafe.SliceData(it.b.words) == unsafe.SliceData(other.b.words) && it.i == other.i
}

// Bits returns a sequence over the positions of all set bits in ascending
// order, for use with range-over-func. The sequence is finite and restartable
// only from the beginning; mutating the bitmap mid-iteration invalidates it.
func (b *Bitmap) Bits() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for i := b.nextSet(0); i < b.elements; i = b.nextSet(i + 1) {
			if !yield(i) {
				return
			}
		}
	}
}

// nextSet returns the index of the first set bit at or above from, or the
// element count when none exists. Zero words are skipped whole.
func (b *Bitmap) nextSet(from uint64) uint64 {
	if from >= b.elements {
		return b.elements
	}

	mask := ^uint64(0) << (from & wordMask)
	for w := int(from >> wordShift); w < len(b.words); w++ {
		if v := b.words[w] & mask; v != 0 {
			return uint64(w)<<wordShift + uint64(bits.TrailingZeros64(v))
		}
		mask = ^uint64(0)
	}
	return b.elements
}
