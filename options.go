package merkle

import (
	"io"
	"log/slog"
)

// Option configures how NewTree builds a tree.
type Option func(*options)

type options struct {
	log         *slog.Logger
	concurrency int
}

func defaultOptions() options {
	return options{
		log:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		concurrency: 1,
	}
}

// WithLogger sets the logger used while building the tree.
// Layer sizes are logged at debug level.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// WithConcurrency hashes the pairs of each layer on up to n goroutines.
// A layer is always complete before the next one is started.
// Values below 2 build sequentially.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.concurrency = n
	}
}
