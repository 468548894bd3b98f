package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options controls logger construction.
type Options struct {
	Level  string // debug, info, warn, error
	Format string // console (human readable) or json
}

// New builds the root structured logger. Core computations never log; the
// data, optimizer and CLI boundaries receive sub-loggers via Component.
func New(opts Options) zerolog.Logger {
	var output io.Writer = os.Stdout
	if opts.Format == "console" || opts.Format == "pretty" {
		output = zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}
	}

	return zerolog.New(output).
		Level(parseLevel(opts.Level)).
		With().
		Timestamp().
		Logger()
}

// Component returns a sub-logger tagged with a component name.
func Component(log zerolog.Logger, name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
