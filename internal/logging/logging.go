// Package logging builds the diagnostic logger used by the asciinum CLI.
package logging

import (
	"io"

	"github.com/rs/zerolog"
)

// New returns a human-readable logger writing to w. Timestamps are left
// out: diagnostics are read next to the output they describe, not
// correlated later. Debug events are dropped unless debug is set.
func New(w io.Writer, debug, color bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	cw := zerolog.ConsoleWriter{
		Out:          w,
		NoColor:      !color,
		PartsExclude: []string{zerolog.TimestampFieldName},
	}
	return zerolog.New(cw).Level(level)
}
