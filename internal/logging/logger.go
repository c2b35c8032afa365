// Package logging provides the process-wide console logger.
package logging

import (
	"strings"

	"github.com/gookit/slog"
	"github.com/gookit/slog/handler"
)

// Logger is the minimal logging surface used across the tool.
type Logger interface {
	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Error(args ...any)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Log is the global logger. It works at info level until SetLevel is called.
var Log Logger = New("info")

// SetLevel replaces the global logger with one at the given level.
// Unknown level names fall back to info.
func SetLevel(level string) {
	Log = New(level)
}

// New creates a gookit/slog console logger that emits levels up to and including level.
func New(level string) Logger {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "" {
		level = "info"
	}
	logLevel := slog.LevelByName(level)

	var levels slog.Levels
	for _, lv := range slog.AllLevels {
		if lv <= logLevel {
			levels = append(levels, lv)
		}
	}

	h := handler.NewConsoleHandler(levels)
	formatter := slog.NewTextFormatter("[{{datetime}}] [{{level}}] {{message}} {{data}}\n")
	formatter.TimeFormat = "15:04:05"
	h.SetFormatter(formatter)

	return slog.NewWithHandlers(h)
}
