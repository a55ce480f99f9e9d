// Package wlog wires up the structured logger shared by the wire
// transport, the per-protocol dispatchers, and the engine.
//
// It follows the same shape as a small long-lived wrapper handed down
// through constructors rather than a single global: callers bind fields
// once (dialect, object protocol id) and pass the bound logger down,
// instead of threading raw fields through every call site.
package wlog

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger wraps a zerolog.Logger bound to a dialect and optionally an
// object's protocol id.
type Logger struct {
	z zerolog.Logger
}

// New builds the root logger. It writes a human console format to a
// terminal stderr and falls back to zerolog's compact JSON encoding
// otherwise (piped output, log aggregation).
func New(verbose bool) Logger {
	var w io.Writer = os.Stderr
	if isTerminal(os.Stderr) {
		w = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	}

	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	z := zerolog.New(w).Level(level).With().Timestamp().Logger()
	return Logger{z: z}
}

// WithDialect returns a child logger tagged with the bound protocol
// dialect, e.g. "ext-v1".
func (l Logger) WithDialect(dialect string) Logger {
	return Logger{z: l.z.With().Str("dialect", dialect).Logger()}
}

// WithProtocolID returns a child logger tagged with an object's
// server-assigned protocol id.
func (l Logger) WithProtocolID(id uint32) Logger {
	return Logger{z: l.z.With().Uint32("protocol_id", id).Logger()}
}

// Debug logs a per-event trace line. Cheap to call unconditionally;
// zerolog skips formatting when the level is disabled.
func (l Logger) Debug() *zerolog.Event { return l.z.Debug() }

// Warn logs a dropped-event or dangling-reference condition. Never
// fatal - the dispatcher and engine call this and continue.
func (l Logger) Warn() *zerolog.Event { return l.z.Warn() }

// Info logs lifecycle and bind decisions.
func (l Logger) Info() *zerolog.Event { return l.z.Info() }

// Error logs a fatal condition just before the process exits.
func (l Logger) Error() *zerolog.Event { return l.z.Error() }

func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}
