// Package logging configures the process-wide zerolog logger.
package logging

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Options controls logger construction.
type Options struct {
	// Env is "development" or "production".
	Env string
	// Level overrides the per-environment default when non-empty.
	Level  string
	Writer io.Writer
}

var (
	mu   sync.RWMutex
	base = zerolog.New(os.Stderr).With().Timestamp().Logger()
)

// Init replaces the base logger. Development logs to a console writer at
// debug level; production logs JSON and only surfaces errors, which keeps
// developer-facing warnings out of production output.
func Init(opts Options) (zerolog.Logger, error) {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}

	level := zerolog.DebugLevel
	if IsProduction(opts.Env) {
		level = zerolog.ErrorLevel
	} else {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(opts.Level)
		if err != nil {
			return zerolog.Nop(), err
		}
		level = parsed
	}

	logger := zerolog.New(w).Level(level).With().Timestamp().Logger()

	mu.Lock()
	base = logger
	mu.Unlock()
	return logger, nil
}

// Component returns a child of the base logger tagged with name.
func Component(name string) zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base.With().Str("component", name).Logger()
}

// IsProduction reports whether env names a production build.
func IsProduction(env string) bool {
	return env == "production" || env == "prod"
}
