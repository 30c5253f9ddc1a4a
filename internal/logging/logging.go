// Package logging configures the zerolog logger shared by the server and
// the CLI.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// New builds the application logger. The console flag switches to
// human-readable output for interactive use; otherwise structured JSON.
// Verbose lowers the level to debug.
func New(console, verbose bool) zerolog.Logger {
	var w io.Writer = os.Stderr
	if console {
		w = zerolog.ConsoleWriter{Out: os.Stderr}
	}

	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	logger := zerolog.New(w).Level(level).With().Timestamp().Logger()

	// Point the global logger at the same sink for libraries that use it.
	log.Logger = logger

	return logger
}
