package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info when quiet", false, func(l *log.Logger) { l.Info("test") }, true},
		{"debug when quiet", false, func(l *log.Logger) { l.Debug("test") }, false},
		{"debug when verbose", true, func(l *log.Logger) { l.Debug("test") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.verbose))
			if got := buf.Len() > 0; got != tt.wantLog {
				t.Errorf("got log output = %v, want %v", got, tt.wantLog)
			}
		})
	}
}

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	newProgress(newLogger(&buf, false)).done("sorted", "steps", 12)

	out := buf.String()
	if !strings.Contains(out, "algoviz") {
		t.Errorf("expected prefix in %q", out)
	}
	if !strings.Contains(out, "sorted") || !strings.Contains(out, "steps=12") || !strings.Contains(out, "elapsed=") {
		t.Errorf("unexpected progress output: %q", out)
	}
}

func TestLoggerContext(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("expected default logger without one attached")
	}
	l := newLogger(&bytes.Buffer{}, true)
	if loggerFromContext(withLogger(context.Background(), l)) != l {
		t.Error("expected attached logger")
	}
}
