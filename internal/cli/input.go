package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
)

// lineReader yields one line of user input at a time. ReadLine returns
// io.EOF when input is exhausted.
type lineReader interface {
	ReadLine() (string, error)
	Close() error
}

type readlineReader struct {
	rl *readline.Instance
}

func (r *readlineReader) ReadLine() (string, error) {
	for {
		line, err := r.rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		return line, err
	}
}

func (r *readlineReader) Close() error { return r.rl.Close() }

type scannerReader struct {
	sc *bufio.Scanner
}

func (r *scannerReader) ReadLine() (string, error) {
	if r.sc.Scan() {
		return r.sc.Text(), nil
	}
	if err := r.sc.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

func (r *scannerReader) Close() error { return nil }

// newLineReader uses readline with history when stdin is a terminal and a
// plain line scanner otherwise.
func newLineReader(cmd *cobra.Command, prompt, historyFile string) (lineReader, error) {
	in := cmd.InOrStdin()
	if !isTerminal(in) {
		return &scannerReader{sc: bufio.NewScanner(in)}, nil
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
		Stdout:          cmd.OutOrStdout(),
		Stderr:          cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize line editor: %w", err)
	}
	return &readlineReader{rl: rl}, nil
}

// promptPattern asks for a single pattern.
func promptPattern(cmd *cobra.Command, historyFile string) (string, error) {
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Enter regular expression:")
	r, err := newLineReader(cmd, "> ", historyFile)
	if err != nil {
		return "", err
	}
	defer func() { _ = r.Close() }()

	line, err := r.ReadLine()
	if errors.Is(err, io.EOF) {
		return "", fmt.Errorf("no regular expression given")
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
