// Package log provides the logging abstraction used by the tofconv library.
//
// The converter only ever talks to the [Logger] interface. A zerolog adapter
// is provided for the CLI and a no-op logger is the library default:
//
//	logger := log.NewZerologAdapterWithLogger(zerolog.New(os.Stderr))
//	conv := tofconv.New(tofconv.WithLogger(logger))
//
// Implement Logger to route conversion traces into another logging stack.
package log
