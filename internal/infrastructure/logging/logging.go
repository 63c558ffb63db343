// Package logging configures the default slog logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/iwat/profiledesk/internal/infrastructure/tui"
	"github.com/lmittmann/tint"
)

// ParseLevel parses a level name such as "debug", "info", "warn" or "error"
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return level, nil
}

// NewHandler returns a tint handler writing to w. Colors are disabled when
// noColor is set or w is not a terminal.
func NewHandler(w io.Writer, level slog.Level, noColor bool) slog.Handler {
	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
		NoColor:    noColor || !tui.IsTerminal(w),
	})
}

// Setup installs a handler for w as the default slog logger
func Setup(w io.Writer, levelName string, noColor bool) error {
	level, err := ParseLevel(levelName)
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(NewHandler(w, level, noColor)))
	return nil
}
