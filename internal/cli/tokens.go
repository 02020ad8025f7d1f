package cli

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"regextree/internal/regexlib"
)

// NewTokensCommand creates the tokens command.
func NewTokensCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <pattern>",
		Short: "Show the token stream of a pattern",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern := strings.Join(args, " ")

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"#", "Kind", "Value", "Offset"})

			l := regexlib.NewLexer(pattern)
			var lexErr error
			for i := 0; ; i++ {
				tok, err := l.Next()
				if err != nil {
					lexErr = err
					break
				}
				value := ""
				if tok.Kind == regexlib.TokenChar {
					value = string(tok.Char)
				}
				t.AppendRow(table.Row{i, tok.Kind, value, l.Offset()})
				if tok.Kind == regexlib.TokenEnd {
					break
				}
			}
			t.Render()

			if lexErr != nil {
				return fmt.Errorf("invalid regular expression: %w", lexErr)
			}
			return nil
		},
	}
}
