package core

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if l.Enabled(context.Background(), level) {
			t.Errorf("default logger enabled for %v", level)
		}
	}
}

func TestSetLogger(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	h := NewHost(nopPlatform{}, nopLifecycle{})
	h.Handle(EventCreate{W: 1, H: 1, DPI: 96})
	h.fail(errTest)
	h.fail(errTest)
	if !strings.Contains(buf.String(), "component=host") {
		t.Fatalf("host did not log through the installed logger: %q", buf.String())
	}

	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Fatal("SetLogger(nil) did not restore the silent logger")
	}
}

var errTest = errors.New("test")

type nopPlatform struct{}

func (nopPlatform) RequestClose()   {}
func (nopPlatform) FillBackground() {}
func (nopPlatform) ShowError(error) {}

type nopLifecycle struct{}

func (nopLifecycle) OnCreate(int, int, int) error { return nil }
func (nopLifecycle) OnResize(int, int, int) error { return nil }
func (nopLifecycle) OnRender() error              { return nil }
func (nopLifecycle) OnDestroy() error             { return nil }
