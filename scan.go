package bitmap

import (
	"fmt"
	"math/bits"
)

// SetFirstEmpty finds the lowest unset bit at or above startingAt, sets it and
// returns its index. Selection is first-fit: the result is deterministic and
// never below startingAt.
//
// Words with every bit set are skipped whole, so the scan is O(1) when free
// bits are common and O(WordCount) in the worst case.
//
// A completely full bitmap is an unrecoverable sizing bug in the owning
// allocator, not an ordinary runtime condition: SetFirstEmpty logs at error
// level and panics with an error wrapping ErrFull.
func (b *Bitmap) SetFirstEmpty(startingAt uint64) uint64 {
	word := int(startingAt >> wordShift)
	off := startingAt & wordMask

	for i := word; i < len(b.words); i++ {
		w := b.words[i]
		if w == ^uint64(0) {
			off = 0
			continue
		}

		// Bits below the offset have already been passed; treat them as
		// unavailable.
		unset := ^w &^ ((uint64(1) << off) - 1)
		if unset == 0 {
			off = 0
			continue
		}

		pos := uint64(bits.TrailingZeros64(unset))
		index := uint64(i)<<wordShift + pos
		if index >= b.elements {
			// Only padding bits of the final word remain free.
			break
		}
		b.setAt(i, pos)
		return index
	}

	b.logger.Error("bitmap completely full, aborting",
		"bits", b.elements,
		"starting_at", startingAt,
	)
	panic(fmt.Errorf("%w: no free bit at or above %d in %d bits", ErrFull, startingAt, b.elements))
}
