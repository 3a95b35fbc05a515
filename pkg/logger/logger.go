// Package logger builds the zerolog instance shared by every component of the
// server. All log lines carry the service name so aggregated output stays
// attributable.
package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a structured logger tagged with the service name. Unrecognized
// level strings fall back to info rather than failing startup.
func New(service string, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.TimeFieldFormat = time.RFC3339Nano
	return zerolog.New(os.Stdout).
		Level(lvl).
		With().
		Timestamp().
		Str("service", service).
		Logger()
}
