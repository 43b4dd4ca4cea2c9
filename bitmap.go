package bitmap

import (
	"fmt"
	"log/slog"
	"math/bits"
	"unsafe"

	"github.com/neuroradiology/Mesh-memory/mem"
)

const (
	// wordBits is the number of bits per storage word.
	wordBits = 64
	// wordShift is log2(wordBits), for index-to-word arithmetic.
	wordShift = 6
	wordMask  = wordBits - 1

	wordBytes = 8
)

// Bitmap is a fixed-capacity bitmap with one bit per tracked element.
//
// A Bitmap exclusively owns its backing buffer, obtained from and returned to
// a mem.Provider. It must not be copied after first use; duplicate explicitly
// with Clone. Construct via New, FromString or FromRoaring; a closed Bitmap
// stays valid in the empty state.
type Bitmap struct {
	provider mem.Provider
	logger   *slog.Logger

	// buf is the raw provider allocation; Release must receive it unmodified.
	buf []byte
	// words is the 64-bit word view of buf.
	words []uint64
	// elements is the logical number of tracked bits. Bits of the final word
	// at or beyond elements are padding and are kept at zero; InUseCount and
	// SetFirstEmpty depend on that invariant.
	elements uint64
}

// New creates a Bitmap tracking nbits elements, all initially unset.
func New(nbits uint64, opts ...Option) (*Bitmap, error) {
	o := newOptions(opts)
	b := &Bitmap{provider: o.provider, logger: o.logger}
	if err := b.Reserve(nbits); err != nil {
		return nil, err
	}
	return b, nil
}

// wordsFor returns the number of 64-bit words needed to hold nbits.
func wordsFor(nbits uint64) int {
	return int((nbits + wordBits - 1) / wordBits)
}

// Reserve discards any current buffer and allocates fresh, zero-filled storage
// for nbits elements. This is a reset, not a resize: prior contents are lost.
//
// On provider failure the bitmap is left in the valid empty state and the
// error is returned.
func (b *Bitmap) Reserve(nbits uint64) error {
	if err := b.release(); err != nil {
		return err
	}
	if nbits == 0 {
		return nil
	}

	words := wordsFor(nbits)
	buf, err := b.provider.Allocate(words * wordBytes)
	if err != nil {
		return fmt.Errorf("bitmap: reserve %d bits: %w", nbits, err)
	}

	b.buf = buf
	// Safe: providers return buffers aligned to at least 8 bytes.
	b.words = unsafe.Slice((*uint64)(unsafe.Pointer(&buf[0])), words)
	b.elements = nbits
	clear(b.words)

	b.logger.Debug("bitmap reserved", "bits", nbits, "words", words)
	return nil
}

// release returns the current buffer to the provider and resets the bitmap to
// the empty state. It is a no-op when no buffer is held.
func (b *Bitmap) release() error {
	buf := b.buf
	b.buf = nil
	b.words = nil
	b.elements = 0
	if buf == nil {
		return nil
	}
	if err := b.provider.Release(buf); err != nil {
		return fmt.Errorf("bitmap: release storage: %w", err)
	}
	return nil
}

// Close releases the backing buffer to the memory provider and leaves the
// bitmap in the valid empty state. It is idempotent.
func (b *Bitmap) Close() error {
	if b == nil {
		return nil
	}
	return b.release()
}

// Clone returns an independent copy of the bitmap, freshly reserved through
// the same provider.
func (b *Bitmap) Clone() (*Bitmap, error) {
	dup := &Bitmap{provider: b.provider, logger: b.logger}
	if err := dup.Reserve(b.elements); err != nil {
		return nil, err
	}
	copy(dup.words, b.words)
	return dup, nil
}

// WordCount returns the number of machine words backing the current capacity.
func (b *Bitmap) WordCount() int {
	return len(b.words)
}

// BitCount returns the number of tracked bits.
func (b *Bitmap) BitCount() uint64 {
	return b.elements
}

// Clear zeroes the existing buffer in place without reallocating. It is a
// no-op when no buffer is held.
func (b *Bitmap) Clear() {
	clear(b.words)
}

func (b *Bitmap) checkIndex(i uint64) {
	if i >= b.elements {
		panic(fmt.Errorf("%w: index %d, bit count %d", ErrOutOfRange, i, b.elements))
	}
}

// IsSet reports whether the bit at index i is set.
//
// The index must satisfy i < BitCount(); violating this panics with an error
// wrapping ErrOutOfRange.
func (b *Bitmap) IsSet(i uint64) bool {
	b.checkIndex(i)
	return b.words[i>>wordShift]&(1<<(i&wordMask)) != 0
}

// TryToSet sets the bit at index i and reports whether it was previously
// unset, i.e. whether this call claimed the slot. It is not atomic; callers
// needing concurrency safety must serialize externally.
func (b *Bitmap) TryToSet(i uint64) bool {
	b.checkIndex(i)
	return b.setAt(int(i>>wordShift), i&wordMask)
}

// setAt sets the bit at the given word and in-word position, reporting whether
// it was previously unset.
func (b *Bitmap) setAt(word int, pos uint64) bool {
	mask := uint64(1) << pos
	old := b.words[word]
	b.words[word] = old | mask
	return old&mask == 0
}

// Unset clears the bit at index i and reports whether it was previously set,
// i.e. whether this call released the slot.
func (b *Bitmap) Unset(i uint64) bool {
	b.checkIndex(i)
	word := int(i >> wordShift)
	mask := uint64(1) << (i & wordMask)
	old := b.words[word]
	b.words[word] = old &^ mask
	return old&mask != 0
}

// InUseCount returns the total number of set bits.
//
// The count is a word-granularity popcount over the whole buffer, which is
// exact because padding bits past BitCount() are always zero.
func (b *Bitmap) InUseCount() uint64 {
	var count uint64
	for _, w := range b.words {
		if w != 0 {
			count += uint64(bits.OnesCount64(w))
		}
	}
	return count
}
