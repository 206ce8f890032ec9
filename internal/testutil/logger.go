package testutil

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/GustavoCaso/billtrace/internal/logger"
)

type testWriter struct {
	t *testing.T
}

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

// TestLogger returns a debug logger that writes through t.Log, so log lines
// only show up for failing tests or with -v.
func TestLogger(t *testing.T) *logger.Logger {
	t.Helper()

	handler := slog.NewTextHandler(testWriter{t: t}, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})

	return &logger.Logger{Logger: slog.New(handler)}
}
