package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"regextree/internal/regexlib"
)

// NewREPLCommand creates the repl command.
func NewREPLCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Parse patterns interactively",
		Long: `Read patterns line by line and print the parse tree of each one in the
configured text format (tree when an image format is configured). Type
.quit or press Ctrl-D to leave.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := getConfig(cmd.Context())
			format := cfg.Format
			if format != "dot" && format != "json" && format != "yaml" {
				format = "tree"
			}

			r, err := newLineReader(cmd, "regex> ", cfg.HistoryFile)
			if err != nil {
				return err
			}
			defer func() { _ = r.Close() }()

			out := cmd.OutOrStdout()
			for {
				line, err := r.ReadLine()
				if errors.Is(err, io.EOF) {
					return nil
				}
				if err != nil {
					return err
				}
				line = strings.TrimSpace(line)
				switch line {
				case "":
					continue
				case ".quit", ".exit":
					return nil
				}

				tree, err := regexlib.Parse(line)
				if err != nil {
					_, _ = fmt.Fprintf(out, "invalid regular expression: %v\n", err)
					writeDiagnostic(out, err, cfg.Color)
					continue
				}
				if err := writeTree(out, format, tree); err != nil {
					return err
				}
			}
		},
	}
}
