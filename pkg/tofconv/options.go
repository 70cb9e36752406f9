package tofconv

import "github.com/bft-labs/tofconv/pkg/log"

// Option configures optional behavior of a Converter.
type Option func(*options)

type options struct {
	logger    log.Logger
	precision int
}

func defaultOptions() options {
	return options{
		logger: log.NewNoopLogger(),
	}
}

// WithLogger sets a logger that receives a debug trace of each conversion.
// If not provided, a no-op logger is used (no output).
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithPrecision sets the number of significant digits in results. Values
// outside 1..9 fall back to the default of 6 or are capped at 9.
func WithPrecision(digits int) Option {
	return func(o *options) {
		o.precision = digits
	}
}
