package arraylist

import "go.uber.org/zap"

// Option configures a list at construction time.
type Option func(*config)

type config struct {
	logger      *zap.Logger
	allocator   Allocator
	zeroOnClear bool
}

func newConfig(opts []Option) config {
	cfg := config{
		logger:      zap.NewNop(),
		allocator:   ManualAllocator{},
		zeroOnClear: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithLogger sets the logger used for growth and release events.
// A nil logger is ignored.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithAllocator sets the allocator backing a ByteList. List[T] ignores it.
// A nil allocator is ignored.
func WithAllocator(a Allocator) Option {
	return func(c *config) {
		if a != nil {
			c.allocator = a
		}
	}
}

// WithZeroOnClear controls whether Clear zeroes the bytes of the cleared
// elements. Enabled by default.
func WithZeroOnClear(zero bool) Option {
	return func(c *config) {
		c.zeroOnClear = zero
	}
}
