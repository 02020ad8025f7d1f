package cli

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"regextree/internal/crosscheck"
)

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <pattern>",
		Short: "Compare the parse with an independent declarative grammar",
		Long: `Parse a pattern with the recursive-descent parser and with a declarative
participle grammar of the same language, and compare the abstract syntax both
produce. The command fails only when the two parsers disagree.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := crosscheck.Compare(strings.Join(args, " "))

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"Parser", "Result"})
			t.AppendRow(table.Row{"recursive descent", outcome(r.Tree, r.TreeErr)})
			t.AppendRow(table.Row{"participle", outcome(r.Grammar, r.GrammarErr)})
			t.Render()

			if !r.Agree() {
				return fmt.Errorf("parsers disagree on %q", r.Pattern)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "parsers agree")
			return nil
		},
	}
}

func outcome(syntax string, err error) string {
	if err != nil {
		return "rejected: " + err.Error()
	}
	return syntax
}
