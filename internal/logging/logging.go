// Package logging sets up the diagnostic log. Records are written as JSON
// to a size-rotated file so that nothing interferes with the terminal UI.
package logging

import (
	"context"
	"io"
	"log/slog"

	"github.com/davecgh/go-spew/spew"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	maxSizeMB  = 10
	maxBackups = 3
)

// Logger wraps a slog.Logger together with the file it writes to.
type Logger struct {
	*slog.Logger
	out io.Closer
}

// New returns a logger that appends to path at the given level.
func New(path string, level slog.Level) *Logger {
	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
	}

	return &Logger{
		Logger: NewWithWriter(w, level),
		out:    w,
	}
}

// NewWithWriter returns a JSON logger writing to w.
func NewWithWriter(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// Close releases the log file.
func (l *Logger) Close() error {
	return l.out.Close()
}

// Dump logs a detailed representation of v when debug logging is enabled.
func Dump(logger *slog.Logger, msg string, v any) {
	if !logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}

	logger.Debug(msg, slog.String("dump", spew.Sdump(v)))
}
