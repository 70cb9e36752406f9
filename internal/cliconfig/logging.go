package cliconfig

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/bft-labs/tofconv/pkg/log"
)

// Logger builds the CLI logger: plain console lines on w, filtered at level.
func Logger(w io.Writer, level zerolog.Level) zerolog.Logger {
	return log.NewZerologAdapter(w, level).Logger()
}
