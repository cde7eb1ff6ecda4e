// Package log provides the logging abstraction used by fastaslice components.
//
// The filter, splitter and watcher only see the Logger interface. The CLI wires
// the zerolog adapter; tests and library callers that want silence use the
// no-op logger.
//
// # Usage
//
//	logger := log.NewZerologAdapter(os.Stderr, zerolog.InfoLevel)
//	logger.Info("split complete", log.Int("pieces", 12))
//
// Child loggers carry fields on every message:
//
//	fileLog := log.With(logger, log.String("input", path))
//
// # Custom Loggers
//
// Any type with Debug, Info, Warn and Error methods taking a message and
// Field values satisfies Logger.
package log
