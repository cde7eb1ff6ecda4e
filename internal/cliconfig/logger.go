package cliconfig

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/bft-labs/fastaslice/pkg/log"
)

// Logger returns the CLI logger: console output to w, debug level when verbose.
func Logger(w io.Writer, verbose bool) *log.ZerologAdapter {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return log.NewZerologAdapter(w, level)
}
