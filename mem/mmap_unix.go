//go:build unix

package mem

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Mmap allocates buffers as anonymous private mappings, keeping bitmap
// storage off the Go heap and outside the garbage collector's control.
// Release unmaps the buffer immediately.
type Mmap struct{}

// Allocate maps size bytes of zero-filled anonymous memory.
func (Mmap) Allocate(size int) ([]byte, error) {
	if size <= 0 {
		return nil, nil
	}

	buf, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("mem: map anonymous memory: %w", err)
	}
	return buf, nil
}

// Release unmaps a buffer previously returned by Allocate.
func (Mmap) Release(buf []byte) error {
	if buf == nil {
		return nil
	}
	return unix.Munmap(buf)
}
