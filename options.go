package stringreader

import "go.uber.org/zap"

type options struct {
	logger   *zap.Logger
	capacity int
}

// Option configures a reader.
type Option func(*options)

// WithLogger sets the logger used for debug records. A nil logger keeps the
// default no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithCapacity sets how many chunks the queue holds before it first grows.
// Non-positive values are ignored.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}

func newOptions(opts []Option) options {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
