package bitmap

import "errors"

var (
	// ErrInvalidBitstring is returned when a bitstring contains a character
	// other than '0' or '1'.
	ErrInvalidBitstring = errors.New("bitmap: invalid bitstring")

	// ErrOutOfRange reports an index outside [0, BitCount()). Point operations
	// treat this as a precondition violation and panic with an error wrapping
	// this sentinel; fallible constructors return it.
	ErrOutOfRange = errors.New("bitmap: index out of range")

	// ErrFull reports that SetFirstEmpty found no free bit. This is a fatal
	// condition: the owning allocator is expected to size its bitmap correctly
	// or to catch exhaustion before scanning, so SetFirstEmpty panics with an
	// error wrapping this sentinel instead of returning it.
	ErrFull = errors.New("bitmap: completely full")
)
