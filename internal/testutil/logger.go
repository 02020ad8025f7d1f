// Package testutil holds helpers shared by the regextree package tests.
package testutil

import (
	"log/slog"
	"strings"
	"testing"
)

// NewTestLogger returns a logger at the given level whose records go to
// t.Log, so they show up only for failing tests or with -v.
func NewTestLogger(t testing.TB, level slog.Level) *slog.Logger {
	t.Helper()
	return slog.New(slog.NewTextHandler(logWriter{t}, &slog.HandlerOptions{Level: level}))
}

type logWriter struct {
	t testing.TB
}

// Write logs one slog record; t.Log adds its own newline.
func (w logWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(strings.TrimSuffix(string(p), "\n"))
	return len(p), nil
}
