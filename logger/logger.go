package logger

import (
	"io"
	"log/slog"
	"os"
)

type Logger interface {
	Info(msg string, keyvals ...interface{})

	Warn(msg string, keyvals ...interface{})

	Error(msg string, keyvals ...interface{})

	Debug(msg string, keyvals ...interface{})
}

// New returns a JSON logger writing to stderr. An empty or unknown level
// falls back to debug.
func New(level string) Logger {
	return NewWithWriter(os.Stderr, level)
}

func NewWithWriter(w io.Writer, level string) Logger {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(level),
		AddSource: true, // include file + line number
	}
	handler := slog.NewJSONHandler(w, opts)
	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelDebug
	}
	return l
}
