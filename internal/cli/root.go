// Package cli provides the regextree command-line interface.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"regextree/internal/config"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
)

type configKey struct{}

type loggerKey struct{}

// NewRootCmd creates the root command. Running it with a pattern (or with
// none, to be prompted) parses the pattern and writes its parse tree.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "regextree [pattern]",
		Short: "Draw the LL(1) parse tree of a regular expression",
		Long: `regextree parses regular expressions built from lowercase letters,
concatenation, alternation '|', Kleene star '*' and parentheses, and draws the
complete parse tree of the grammar

  E  -> M E'        E' -> '|' E | eps
  M  -> N M'        M' -> M | eps
  N  -> CHAR N' | '(' E ')' N'
  N' -> '*' N' | eps

as a Graphviz image, DOT source, an outline, JSON or YAML.

A first argument that names a command (check, tokens, batch, ...) runs that
command. Use 'regextree parse check' to parse such a word as a pattern.`,
		Version: Version,
		Args:    cobra.ArbitraryArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}
			cfg, err := config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}

			level := slog.LevelWarn
			if cfg.Verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			if f := cfg.FileUsed(); f != "" {
				logger.Debug("using config file", "path", f)
			}

			ctx := context.WithValue(cmd.Context(), configKey{}, cfg)
			ctx = context.WithValue(ctx, loggerKey{}, logger)
			cmd.SetContext(ctx)
			return nil
		},
		RunE:          runParse,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
`)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default: ./regextree.yaml)")
	pf.StringP("format", "T", "", "output format (svg|png|pdf|dot|tree|json|yaml)")
	pf.StringP("output", "o", "", "output file, '-' for stdout (default: graph.<format>, stdout for text formats)")
	pf.String("dot-file", "", "where the DOT document is written before rendering (default: graph.dot)")
	pf.String("dot-binary", "", "Graphviz executable (default: dot)")
	pf.Duration("render-timeout", 0, "timeout for the Graphviz process (default: 30s)")
	pf.String("color", "", "colorize diagnostics (auto|always|never)")
	pf.String("history-file", "", "REPL history file")
	pf.BoolP("verbose", "v", false, "verbose output")

	_ = rootCmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return config.Formats, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("color", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return config.ColorModes, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(NewParseCommand())
	rootCmd.AddCommand(NewTokensCommand())
	rootCmd.AddCommand(NewCheckCommand())
	rootCmd.AddCommand(NewBatchCommand())
	rootCmd.AddCommand(NewREPLCommand())
	rootCmd.AddCommand(NewVersionCommand(Version))

	return rootCmd
}

// Execute runs the root command and reports a failure on stderr.
func Execute() error {
	rootCmd := NewRootCmd()
	cmd, err := rootCmd.ExecuteC()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		mode := config.DefaultColor
		if cmd != nil {
			if cfg := configFrom(cmd.Context()); cfg != nil {
				mode = cfg.Color
			}
		}
		writeDiagnostic(os.Stderr, err, mode)
		return err
	}
	return nil
}

func configFrom(ctx context.Context) *config.Config {
	if ctx == nil {
		return nil
	}
	if c, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return c
	}
	return nil
}

// getConfig returns the loaded config, or defaults when the pre-run hook
// did not run.
func getConfig(ctx context.Context) *config.Config {
	if c := configFrom(ctx); c != nil {
		return c
	}
	return &config.Config{
		Format:        config.DefaultFormat,
		DotFile:       config.DefaultDotFile,
		DotBinary:     config.DefaultDotBinary,
		RenderTimeout: config.DefaultRenderTimeout,
		Workers:       config.DefaultWorkers,
		Color:         config.DefaultColor,
	}
}

func getLogger(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
			return l
		}
	}
	return slog.Default()
}
