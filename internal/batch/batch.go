// Package batch parses many patterns in parallel.
package batch

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"regextree/internal/regexlib"
)

// Pattern is one input line.
type Pattern struct {
	Line   int
	Source string
}

// Result is the outcome of parsing one Pattern. Tree is nil when Err is set.
type Result struct {
	Pattern
	Tree     *regexlib.Tree
	Err      error
	Duration time.Duration
}

// LoadPatterns reads one pattern per line. Blank lines and lines starting
// with '#' are skipped.
func LoadPatterns(r io.Reader) ([]Pattern, error) {
	var out []Pattern
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		out = append(out, Pattern{Line: line, Source: text})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading patterns: %w", err)
	}
	return out, nil
}

// LoadFile reads patterns from path.
func LoadFile(path string) ([]Pattern, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadPatterns(f)
}

// Runner parses patterns on a bounded number of goroutines. Every parse owns
// its own lexer and tree, so workers share nothing but the result slice.
type Runner struct {
	Workers int
	Logger  *slog.Logger
}

// Run parses every pattern and returns results in input order. Parse
// failures are reported per result; the returned error is only set when ctx
// is cancelled before all patterns were scheduled.
func (r *Runner) Run(ctx context.Context, patterns []Pattern) ([]Result, error) {
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}
	results := make([]Result, len(patterns))

	g, gctx := errgroup.WithContext(ctx)
	if r.Workers > 0 {
		g.SetLimit(r.Workers)
	}
	for i, p := range patterns {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			tree, err := regexlib.Parse(p.Source)
			results[i] = Result{Pattern: p, Tree: tree, Err: err, Duration: time.Since(start)}
			if err != nil {
				logger.Debug("pattern rejected", "line", p.Line, "error", err)
			} else {
				logger.Debug("pattern parsed", "line", p.Line, "nodes", tree.Len())
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	if err := ctx.Err(); err != nil {
		return results, err
	}
	return results, nil
}

// Failed counts results with an error.
func Failed(results []Result) int {
	n := 0
	for _, res := range results {
		if res.Err != nil {
			n++
		}
	}
	return n
}
