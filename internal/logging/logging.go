// ABOUTME: Leveled key/value logging to the console
// ABOUTME: Wraps charmbracelet/log with the level names used in configuration
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// New creates a timestamped logger writing to w at the named level
func New(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Level:           lvl,
	}), nil
}

// ParseLevel maps debug, info, warn and error to a log level; empty means info
func ParseLevel(level string) (log.Level, error) {
	if strings.TrimSpace(level) == "" {
		return log.InfoLevel, nil
	}
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return log.InfoLevel, fmt.Errorf("unknown log level %q", level)
	}
	return lvl, nil
}

// Discard returns a logger that writes nowhere, for tests and library callers
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}
