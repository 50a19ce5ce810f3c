// Package logger builds the zerolog logger used for diagnostics. Results
// are printed by the render package; only progress and debugging
// information goes through the logger, always to stderr.
package logger

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New returns a console logger writing to w at Info level, or Debug level
// when verbose is set.
func New(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	writer := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.TimeOnly,
	}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}
