package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"regextree/internal/config"
	"regextree/internal/regexlib"
	"regextree/internal/render"
)

// NewParseCommand creates the parse command. The root command runs the same
// code when invoked with a pattern.
func NewParseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "parse [pattern]",
		Short: "Parse a pattern and write its parse tree",
		Long: `Parse a pattern and write its parse tree.

Without a pattern argument the pattern is read from stdin. Image formats
(svg, png, pdf) write the DOT document to --dot-file and run Graphviz on it;
dot, tree, json and yaml are written to --output, or stdout when it is '-'.`,
		Example: `  regextree parse '(a|b)*c'
  regextree parse -T png -o tree.png 'ab*'
  regextree parse -T tree 'a|b'
  echo 'a|b' | regextree parse -T dot -o -`,
		Args: cobra.ArbitraryArgs,
		RunE: runParse,
	}
}

func runParse(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := getConfig(ctx)
	logger := getLogger(ctx)

	pattern := strings.Join(args, " ")
	if len(args) == 0 {
		var err error
		if pattern, err = promptPattern(cmd, cfg.HistoryFile); err != nil {
			return err
		}
	}

	start := time.Now()
	tree, err := regexlib.Parse(pattern)
	if err != nil {
		return fmt.Errorf("invalid regular expression: %w", err)
	}
	logger.Debug("parsed pattern", "pattern", pattern, "nodes", tree.Len(), "duration", time.Since(start))

	out := outputPath(cfg)
	if render.IsImageFormat(cfg.Format) {
		if out == "-" {
			return fmt.Errorf("format %s needs an output file", cfg.Format)
		}
		if err := writeFile(cfg.DotFile, func(w io.Writer) error { return render.Document(w, tree) }); err != nil {
			return err
		}
		logger.Debug("wrote dot file", "path", cfg.DotFile)
		r := render.NewRenderer(cfg.DotBinary, cfg.RenderTimeout, logger)
		if err := r.Render(ctx, cfg.DotFile, cfg.Format, out); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "parse tree saved into %s\n", out)
		return nil
	}

	write := func(w io.Writer) error { return writeTree(w, cfg.Format, tree) }
	if out == "-" {
		return write(cmd.OutOrStdout())
	}
	if err := writeFile(out, write); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "parse tree saved into %s\n", out)
	return nil
}

// outputPath returns the configured output, or when none was set an image
// named after the format, or stdout for text formats.
func outputPath(cfg *config.Config) string {
	if cfg.Output != "" {
		return cfg.Output
	}
	if render.IsImageFormat(cfg.Format) {
		return "graph." + cfg.Format
	}
	return "-"
}

func writeTree(w io.Writer, format string, tree *regexlib.Tree) error {
	switch format {
	case "dot":
		return render.Document(w, tree)
	case "tree":
		return render.Text(w, tree)
	case "json":
		return render.JSON(w, tree)
	case "yaml":
		return render.YAML(w, tree)
	}
	return fmt.Errorf("unsupported text format %q", format)
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
