// Package mem provides the memory-provider policy backing a Bitmap.
//
// A Provider supplies and reclaims the raw buffer a Bitmap stores its words
// in. Three implementations are included:
//
//   - Heap: cache-line aligned allocation from the Go heap (the default).
//   - Mmap: anonymous page mappings outside the garbage collector's control.
//   - Limit: wraps another provider with a hard byte budget.
//
// Providers hand out whole buffers and take the same buffers back; they are
// not general-purpose allocators.
package mem
