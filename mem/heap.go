package mem

import "unsafe"

// Alignment is the byte alignment of heap allocations (one cache line).
const Alignment = 64

// Heap allocates buffers from the Go heap with cache-line alignment. Release
// is a no-op: the garbage collector reclaims the buffer once the bitmap drops
// its reference. Heap is the default provider.
type Heap struct{}

// Allocate returns a byte slice of the given size whose first byte sits at an
// address divisible by Alignment.
//
// Slightly more memory than requested is allocated so an aligned offset can
// always be found; the underlying array is kept alive by the returned slice.
func (Heap) Allocate(size int) ([]byte, error) {
	if size <= 0 {
		return nil, nil
	}

	buf := make([]byte, size+Alignment)

	ptr := unsafe.Pointer(&buf[0]) //nolint:gosec // unsafe is required for memory alignment
	addr := uintptr(ptr)
	offset := (Alignment - (addr & (Alignment - 1))) & (Alignment - 1)

	return buf[offset : offset+uintptr(size)], nil
}

// Release is a no-op for heap buffers.
func (Heap) Release([]byte) error { return nil }
