package mem

import "errors"

var (
	// ErrBudgetExceeded is returned by Limit when an allocation would exceed
	// the configured byte budget.
	ErrBudgetExceeded = errors.New("mem: allocation budget exceeded")

	// ErrNotSupported is returned by providers that are unavailable on the
	// current platform.
	ErrNotSupported = errors.New("mem: provider not supported on this platform")
)

// Provider supplies and reclaims raw buffers for a Bitmap.
//
// The Bitmap calls Allocate exactly once per reservation and Release exactly
// once per buffer lifetime, passing back the identical slice Allocate
// returned. Returned buffers must be aligned to at least 8 bytes; they are
// not required to be zeroed, the caller zero-fills.
type Provider interface {
	// Allocate returns a buffer of exactly size bytes, or an error when the
	// request cannot be satisfied.
	Allocate(size int) ([]byte, error)

	// Release reclaims a buffer previously returned by Allocate.
	Release(buf []byte) error
}
