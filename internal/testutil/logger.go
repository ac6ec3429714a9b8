package testutil

import (
	"io"
	"log/slog"

	"github.com/dtroode/devserve/internal/logger"
)

// MakeNoopLogger returns a Logger that discards every record, for tests
// that exercise code paths which log but do not assert on output.
func MakeNoopLogger() *logger.Logger {
	return &logger.Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))}
}
