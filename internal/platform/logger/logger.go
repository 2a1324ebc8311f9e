package logger

import (
	"log/slog"
	"os"
)

// New returns the process logger. Text output keeps local runs readable;
// handlers attach request-scoped attrs themselves.
func New() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}
