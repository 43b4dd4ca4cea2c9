// Package bitmap provides a fixed-capacity, one-bit-per-element bitmap used
// as allocation metadata by higher-level memory allocators.
//
// A Bitmap tracks binary state (typically "slot free/used") for a caller-defined
// number of elements. It sits on an allocator's hot path, so the design favors
// one bit of overhead per tracked element, word-at-a-time scanning, and an
// iterator that visits only set bits.
//
// # Quick Start
//
//	b, err := bitmap.New(1024)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer b.Close()
//
//	slot := b.SetFirstEmpty(0) // claim the lowest free slot
//	b.Unset(slot)              // release it again
//
//	for i := range b.Bits() {
//	    fmt.Println("slot in use:", i)
//	}
//
// # Backing Memory
//
// Storage is obtained from a pluggable mem.Provider. The default provider
// allocates cache-line aligned buffers from the Go heap; mem.Mmap backs the
// bitmap with anonymous page mappings outside the garbage collector, and
// mem.Limit enforces a hard byte budget on any inner provider.
//
//	b, err := bitmap.New(1<<20, bitmap.WithProvider(mem.Mmap{}))
//
// # Concurrency
//
// A Bitmap performs no internal synchronization. Callers must serialize all
// mutating operations; concurrent read-only operations are safe only while no
// writer is active.
package bitmap
