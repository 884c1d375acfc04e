// Package logging owns the process-wide zerolog logger. Packages obtain a
// child logger with Component and never write to stderr directly.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// DefaultLevel keeps report output on stdout free of diagnostics.
const DefaultLevel = zerolog.WarnLevel

var (
	mu   sync.RWMutex
	root = New(os.Stderr, DefaultLevel, false)
)

// New builds a logger writing to w. Console output is used unless json is
// set.
func New(w io.Writer, level zerolog.Level, json bool) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	out := w
	if !json {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen, NoColor: !isTerminal(w)}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// Init replaces the process logger.
func Init(w io.Writer, level zerolog.Level, json bool) {
	l := New(w, level, json)
	mu.Lock()
	root = l
	mu.Unlock()
}

// Set installs l as the process logger. Tests use it to capture output.
func Set(l zerolog.Logger) {
	mu.Lock()
	root = l
	mu.Unlock()
}

// Logger returns the process logger.
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return root
}

// Component returns a child logger tagged with component=name.
func Component(name string) zerolog.Logger {
	return Logger().With().Str("component", name).Logger()
}

// ParseLevel accepts zerolog level names plus "warning" and "off". Empty
// selects DefaultLevel.
func ParseLevel(v string) (zerolog.Level, error) {
	switch s := strings.ToLower(strings.TrimSpace(v)); s {
	case "":
		return DefaultLevel, nil
	case "warning":
		return zerolog.WarnLevel, nil
	case "off", "none", "quiet":
		return zerolog.Disabled, nil
	default:
		lvl, err := zerolog.ParseLevel(s)
		if err != nil {
			return DefaultLevel, fmt.Errorf("invalid log level: %q", v)
		}
		return lvl, nil
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
