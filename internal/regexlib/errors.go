package regexlib

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidPattern is wrapped by every lexing and parsing failure.
var ErrInvalidPattern = errors.New("invalid regular expression")

// ErrorKind tells the two failure classes apart.
type ErrorKind int

const (
	KindLex ErrorKind = iota + 1
	KindSyntax
)

func (k ErrorKind) String() string {
	switch k {
	case KindLex:
		return "lex error"
	case KindSyntax:
		return "syntax error"
	}
	return "unknown error"
}

// Error is implemented by *LexError and *SyntaxError.
type Error interface {
	error
	Kind() ErrorKind
	Pos() int
	Input() string
}

// LexError reports a character outside the token alphabet.
type LexError struct {
	Char   rune
	Offset int
	Source string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("unexpected symbol %q at pos %d in %q", e.Char, e.Offset+1, e.Source)
}

func (e *LexError) Kind() ErrorKind { return KindLex }
func (e *LexError) Pos() int        { return e.Offset }
func (e *LexError) Input() string   { return e.Source }
func (e *LexError) Unwrap() error   { return ErrInvalidPattern }

// SyntaxError reports a lookahead token that no alternative accepts.
type SyntaxError struct {
	Expected []TokenKind
	Got      Token
	Offset   int
	Source   string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("at pos %d: expected %s, got '%s'", e.Offset+1, expectedList(e.Expected), e.Got)
}

func (e *SyntaxError) Kind() ErrorKind { return KindSyntax }
func (e *SyntaxError) Pos() int        { return e.Offset }
func (e *SyntaxError) Input() string   { return e.Source }
func (e *SyntaxError) Unwrap() error   { return ErrInvalidPattern }

func expectedList(kinds []TokenKind) string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return strings.Join(names, ", ")
}
