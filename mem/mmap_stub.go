//go:build !unix

package mem

// Mmap allocates buffers as anonymous private mappings. On this platform it
// is unavailable and every allocation fails with ErrNotSupported.
type Mmap struct{}

// Allocate always fails on this platform.
func (Mmap) Allocate(int) ([]byte, error) {
	return nil, ErrNotSupported
}

// Release is a no-op on this platform.
func (Mmap) Release([]byte) error { return nil }
