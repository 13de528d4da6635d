package mandel

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerSilentByDefault(t *testing.T) {
	l := logger()
	if l == nil {
		t.Fatal("logger() = nil")
	}
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger is enabled, want silent")
	}
}

func TestSetLoggerNilRestoresSilent(t *testing.T) {
	SetLogger(slog.Default())
	SetLogger(nil)
	if logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("logger enabled after SetLogger(nil), want silent")
	}
}

func TestSetLoggerReceivesWarnings(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	defer SetLogger(nil)

	tr, err := NewViewTransform(DefaultViewport())
	if err != nil {
		t.Fatal(err)
	}
	if err := tr.Zoom(400, 400, -1); err == nil {
		t.Fatal("bad zoom accepted")
	}
	if !strings.Contains(buf.String(), "zoom rejected") {
		t.Errorf("bad ratio: log output %q, want a zoom rejection warning", buf.String())
	}

	// A zoom that collapses the bounds warns too.
	buf.Reset()
	narrow := Viewport{Xmin: 1, Xmax: 1 + 1e-12, Ymin: 1, Ymax: 1 + 1e-12, Width: 100, Height: 100}
	tr, err = NewViewTransform(narrow)
	if err != nil {
		t.Fatal(err)
	}
	if err := tr.Zoom(50, 50, 1e-6); err == nil {
		t.Fatal("collapsing zoom accepted")
	}
	if !strings.Contains(buf.String(), "zoom rejected") {
		t.Errorf("collapsed bounds: log output %q, want a zoom rejection warning", buf.String())
	}
}
