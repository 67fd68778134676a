package slot

import (
	"github.com/rs/zerolog"
)

// Options configures Assign and Suggest.
type Options struct {
	// Logger receives a debug summary per solve plus the solver's
	// per-augmentation events. Defaults to a disabled logger.
	Logger zerolog.Logger
}

// Option represents a functional option for configuring the engine.
type Option func(*Options)

// WithLogger routes engine diagnostics to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

func resolveOptions(opts []Option) Options {
	cfg := Options{Logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
