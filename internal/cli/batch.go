package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"regextree/internal/batch"
	"regextree/internal/regexlib"
	"regextree/internal/render"
)

// NewBatchCommand creates the batch command.
func NewBatchCommand() *cobra.Command {
	var dotDir string

	cmd := &cobra.Command{
		Use:   "batch <file>",
		Short: "Parse one pattern per line of a file in parallel",
		Long: `Parse one pattern per line of a file ('-' reads stdin). Blank lines and
lines starting with '#' are skipped. The command fails if any pattern is
invalid.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := getConfig(ctx)
			logger := getLogger(ctx)

			var patterns []batch.Pattern
			var err error
			if args[0] == "-" {
				patterns, err = batch.LoadPatterns(cmd.InOrStdin())
			} else {
				patterns, err = batch.LoadFile(args[0])
			}
			if err != nil {
				return err
			}

			runner := &batch.Runner{Workers: cfg.Workers, Logger: logger}
			results, err := runner.Run(ctx, patterns)
			if err != nil {
				return err
			}

			if dotDir != "" {
				if err := writeDotFiles(dotDir, results); err != nil {
					return err
				}
			}

			renderBatch(cmd.OutOrStdout(), results)
			failed := batch.Failed(results)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d patterns, %d failed\n", len(results), failed)
			if failed > 0 {
				return fmt.Errorf("%d of %d patterns are invalid", failed, len(results))
			}
			return nil
		},
	}

	cmd.Flags().Int("workers", 0, "number of patterns parsed in parallel (default: 4)")
	cmd.Flags().StringVar(&dotDir, "dot-dir", "", "write a DOT document per valid pattern into this directory")
	return cmd
}

func renderBatch(w io.Writer, results []batch.Result) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Line", "Pattern", "Status", "Nodes", "Detail"})
	for _, res := range results {
		if res.Err != nil {
			status := "error"
			var perr regexlib.Error
			if errors.As(res.Err, &perr) {
				status = perr.Kind().String()
			}
			t.AppendRow(table.Row{res.Line, res.Source, status, "", res.Err.Error()})
			continue
		}
		t.AppendRow(table.Row{res.Line, res.Source, "ok", res.Tree.Len(), res.Tree.Syntax()})
	}
	t.Render()
}

func writeDotFiles(dir string, results []batch.Result) error {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}
	for _, res := range results {
		if res.Err != nil {
			continue
		}
		path := filepath.Join(dir, fmt.Sprintf("line-%d.dot", res.Line))
		tree := res.Tree
		if err := writeFile(path, func(w io.Writer) error { return render.Document(w, tree) }); err != nil {
			return err
		}
	}
	return nil
}
