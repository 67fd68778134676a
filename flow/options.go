package flow

import (
	"github.com/rs/zerolog"
)

// Options configures MinCostMaxFlow.
//   - Logger: receives one debug event per augmentation (default: disabled).
//   - MaxAugmentations: stop with ErrAugmentationLimit after this many
//     augmenting paths; 0 means unbounded.
type Options struct {
	Logger           zerolog.Logger
	MaxAugmentations int
}

// Option represents a functional option for configuring the solver.
type Option func(*Options)

// DefaultOptions returns Options with logging disabled and no augmentation bound.
func DefaultOptions() Options {
	return Options{
		Logger:           zerolog.Nop(),
		MaxAugmentations: 0,
	}
}

// WithLogger routes per-augmentation trace output to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithMaxAugmentations bounds the number of augmenting paths.
// Panics if k is negative.
func WithMaxAugmentations(k int) Option {
	if k < 0 {
		panic("flow: WithMaxAugmentations(k < 0)")
	}
	return func(o *Options) {
		o.MaxAugmentations = k
	}
}

func resolveOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
