// Package obslog configures structured JSON logging for the CLI and the
// classdump loader, so that skipped or malformed class-dump entries can be
// reported without aborting a whole run.
package obslog

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Setup configures slog to write JSONL to stderr, and additionally to
// logFile if non-empty. The returned cleanup closes the file handle, if
// one was opened; callers should defer it.
func Setup(logFile string, level slog.Level) (*slog.Logger, func(), error) {
	if logFile == "" {
		handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
		return slog.New(handler), func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}

	w := io.MultiWriter(os.Stderr, f)
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	logger := slog.New(handler)

	cleanup := func() { _ = f.Close() }
	return logger, cleanup, nil
}

// Discard returns a logger that drops everything, for tests and library
// callers that don't want CLI-style stderr chatter.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
