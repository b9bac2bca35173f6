package logger

import (
	"io"
	"log/slog"
	"os"
)

// InitJSONLogger configures and sets the default slog logger to write JSON to stdout.
// Debug records are emitted only when debug is true.
func InitJSONLogger(debug bool) {
	slog.SetDefault(NewJSONLogger(os.Stdout, debug))
}

// NewJSONLogger builds a JSON slog logger writing to w.
func NewJSONLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	return slog.New(handler)
}

// InitFileLogger points the default slog logger at a JSON log file. It is used by
// the admin terminal UI, which owns stdout. The returned closer releases the file.
func InitFileLogger(path string, debug bool) (io.Closer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(NewJSONLogger(f, debug))
	return f, nil
}
