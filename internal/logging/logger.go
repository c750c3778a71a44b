// Package logging holds the process-wide zerolog logger shared by every
// internal package, following the same SetLogger/GetLogger pattern the
// rest of this codebase's ancestry uses for its package-level logger.
package logging

import (
	"os"

	"github.com/rs/zerolog"
)

// logger is the package-level logger. It defaults to a sensible console
// writer so packages behave reasonably even if SetLogger is never called
// (e.g. in unit tests that don't care about log output).
var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
	With().Timestamp().Logger()

// SetLogger replaces the package-level logger. Called once at process
// start by each cmd/ binary after parsing its configured log level.
func SetLogger(l zerolog.Logger) {
	logger = l
}

// GetLogger returns the current package-level logger.
func GetLogger() zerolog.Logger {
	return logger
}

// LevelFromName parses a zerolog level name, defaulting to InfoLevel for
// an empty or unrecognized string rather than failing startup over a
// cosmetic setting.
func LevelFromName(name string) zerolog.Level {
	if name == "" {
		return zerolog.InfoLevel
	}
	lvl, err := zerolog.ParseLevel(name)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

// NewConsole builds a human-readable console logger at the given level.
// Each cmd/ binary calls this once at startup and installs the result
// with SetLogger.
func NewConsole(level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		Level(level).
		With().Timestamp().Logger()
}
