package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestDefaultLoggerIsSilent(t *testing.T) {
	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger should not be enabled at any level")
	}
}

func TestSetLoggerRoutesRecords(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })

	Logger().Debug("decoded", "width", 3)

	out := buf.String()
	if !strings.Contains(out, "msg=decoded") || !strings.Contains(out, "width=3") {
		t.Errorf("unexpected log output: %q", out)
	}
}

func TestSetLoggerNilRestoresSilence(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	SetLogger(nil)

	Logger().Info("dropped")
	if buf.Len() != 0 {
		t.Errorf("expected no output after SetLogger(nil), got %q", buf.String())
	}
}

func TestNopHandlerDerivedHandlersStaySilent(t *testing.T) {
	l := newNopLogger().With("k", "v").WithGroup("g")
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("derived nop logger should stay disabled")
	}
}
