package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"regextree/internal/regexlib"
)

// isTerminal reports whether v is an *os.File attached to a terminal.
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// useColor resolves the color mode for writer w.
func useColor(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	return isTerminal(w)
}

type styles struct {
	source lipgloss.Style
	caret  lipgloss.Style
	muted  lipgloss.Style
}

func newStyles(w io.Writer, color bool) styles {
	r := lipgloss.NewRenderer(w)
	if color {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return styles{
		source: r.NewStyle().Bold(true),
		caret:  r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		muted:  r.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// Diagnose renders the pattern of a lexing or parsing failure with a caret
// under the offending position. It returns "" for other errors.
func Diagnose(err error, color bool) string {
	var perr regexlib.Error
	if !errors.As(err, &perr) {
		return ""
	}
	var b strings.Builder
	st := newStyles(&b, color)

	// Control whitespace would break the caret column.
	src := strings.Map(func(r rune) rune {
		switch r {
		case '\t', '\r', '\n':
			return ' '
		}
		return r
	}, perr.Input())

	fmt.Fprintf(&b, "  %s\n", st.source.Render(src))
	fmt.Fprintf(&b, "  %s%s %s\n", strings.Repeat(" ", perr.Pos()), st.caret.Render("^"), st.muted.Render(perr.Kind().String()))
	return b.String()
}

func writeDiagnostic(w io.Writer, err error, mode string) {
	if d := Diagnose(err, useColor(mode, w)); d != "" {
		_, _ = io.WriteString(w, d)
	}
}
