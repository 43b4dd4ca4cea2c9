package bitmap

import (
	"log/slog"

	"github.com/neuroradiology/Mesh-memory/mem"
)

type options struct {
	provider mem.Provider
	logger   *slog.Logger
}

// Option configures Bitmap constructor behavior.
type Option func(*options)

// WithProvider configures the memory provider backing the bitmap.
//
// If nil is passed, the default heap provider is used.
func WithProvider(p mem.Provider) Option {
	return func(o *options) {
		if p != nil {
			o.provider = p
		}
	}
}

// WithLogger configures the structured logger used for diagnostics, most
// notably the fatal exhaustion path of SetFirstEmpty.
//
// If nil is passed, slog.Default() is used.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func newOptions(opts []Option) options {
	o := options{
		provider: mem.Heap{},
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
