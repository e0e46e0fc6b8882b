package config

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger builds the application logger. Format "json" writes one JSON
// object per line; anything else gets the human-readable console writer.
// An unparseable level falls back to info.
func NewLogger(level, format string) zerolog.Logger {
	return newLogger(os.Stderr, level, format)
}

func newLogger(out io.Writer, level, format string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	w := out
	if format != "json" {
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	return zerolog.New(w).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}
