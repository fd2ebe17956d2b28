// Package logging configures the process-wide zerolog logger for statekit
// binaries. Library packages stay log-free; commands and production
// adapters pull component loggers from here.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup configures the global logger based on verbosity level, writing
// pretty console output to stderr.
func Setup(verbosity int) {
	SetupWithWriter(verbosity, zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
	})
}

// SetupWithWriter is Setup with an explicit destination, for tests that
// capture output.
func SetupWithWriter(verbosity int, out io.Writer) {
	switch verbosity {
	case 0:
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case 1:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case 2:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	}

	log.Logger = zerolog.New(out).With().Timestamp().Logger()
}

// GetLogger returns a logger tagged with the given component name.
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}
