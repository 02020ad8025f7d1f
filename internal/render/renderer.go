package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"
)

// ImageFormats are the output formats that need the Graphviz binary.
var ImageFormats = []string{"svg", "png", "pdf"}

// IsImageFormat reports whether format is rendered through Graphviz.
func IsImageFormat(format string) bool {
	for _, f := range ImageFormats {
		if f == format {
			return true
		}
	}
	return false
}

// CommandFunc builds the process used to run Graphviz. Tests replace it.
type CommandFunc func(ctx context.Context, name string, args ...string) *exec.Cmd

// Renderer invokes Graphviz on a DOT file.
type Renderer struct {
	Binary  string
	Timeout time.Duration
	Logger  *slog.Logger
	Command CommandFunc
}

// NewRenderer returns a renderer for the given dot binary.
func NewRenderer(binary string, timeout time.Duration, logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{Binary: binary, Timeout: timeout, Logger: logger, Command: exec.CommandContext}
}

// Render runs `dot -T<format> -o <outPath> <dotPath>`.
func (r *Renderer) Render(ctx context.Context, dotPath, format, outPath string) error {
	if !IsImageFormat(format) {
		return fmt.Errorf("unsupported image format %q (want one of %s)", format, strings.Join(ImageFormats, ", "))
	}
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	command := r.Command
	if command == nil {
		command = exec.CommandContext
	}
	cmd := command(ctx, r.Binary, "-T"+format, "-o", outPath, dotPath)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	start := time.Now()
	r.Logger.Debug("running graphviz", "binary", r.Binary, "format", format, "input", dotPath, "output", outPath)
	if err := cmd.Run(); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return fmt.Errorf("%s timed out after %s: %w", r.Binary, r.Timeout, ctx.Err())
		}
		if ctx.Err() != nil {
			return fmt.Errorf("%s cancelled: %w", r.Binary, ctx.Err())
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%s failed: %w: %s", r.Binary, err, msg)
		}
		return fmt.Errorf("%s failed: %w", r.Binary, err)
	}
	r.Logger.Debug("graphviz finished", "output", outPath, "duration", time.Since(start))
	return nil
}
