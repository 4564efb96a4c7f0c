// Package logger builds the service's zerolog logger.
//
// Levels, lowest first: trace, debug, info, warn, error. Anything else
// falls back to info.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultService tags every entry when Options.Service is empty.
const DefaultService = "content-api"

type Options struct {
	Level string
	// Pretty switches to zerolog's console writer for local development.
	Pretty bool
	// Service is attached to each entry as the "service" field.
	Service string
	// Output defaults to os.Stdout.
	Output io.Writer
}

// New builds the service logger from opts. Timestamps use RFC 3339 with
// nanoseconds.
func New(opts Options) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	if opts.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	service := opts.Service
	if service == "" {
		service = DefaultService
	}

	return zerolog.New(out).
		Level(parseLevel(opts.Level)).
		With().
		Timestamp().
		Str("service", service).
		Logger()
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
