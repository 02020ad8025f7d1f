package regexlib

import "unicode/utf8"

// Lexer turns a pattern into tokens on demand. The last produced token stays
// available through Current, which is all the lookahead the parser needs.
type Lexer struct {
	input string
	pos   int // never decreases, never exceeds len(input)
	start int // offset of the current token
	cur   Token
}

// NewLexer returns a lexer positioned at the start of s.
func NewLexer(s string) *Lexer {
	return &Lexer{input: s, cur: Token{Kind: TokenEnd}}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func (l *Lexer) skipSpace() {
	for l.pos < len(l.input) && isSpace(l.input[l.pos]) {
		l.pos++
	}
}

// Next consumes one token. At the end of input it keeps returning TokenEnd.
// An invalid character leaves the cursor on it and returns a *LexError.
func (l *Lexer) Next() (Token, error) {
	l.skipSpace()
	l.start = l.pos
	if l.pos >= len(l.input) {
		l.cur = Token{Kind: TokenEnd}
		return l.cur, nil
	}
	c := l.input[l.pos]
	var tok Token
	switch {
	case c == '(':
		tok = Token{Kind: TokenLParen}
	case c == ')':
		tok = Token{Kind: TokenRParen}
	case c == '*':
		tok = Token{Kind: TokenKleene}
	case c == '|':
		tok = Token{Kind: TokenOr}
	case 'a' <= c && c <= 'z':
		tok = CharToken(c)
	default:
		r, _ := utf8.DecodeRuneInString(l.input[l.pos:])
		return Token{}, &LexError{Char: r, Offset: l.pos, Source: l.input}
	}
	l.pos++
	l.cur = tok
	return tok, nil
}

// Current returns the most recently produced token.
func (l *Lexer) Current() Token { return l.cur }

// Offset returns the byte offset where the current token starts.
func (l *Lexer) Offset() int { return l.start }

// Source returns the text being tokenized.
func (l *Lexer) Source() string { return l.input }

// Tokenize lexes s up to and including the End token.
func Tokenize(s string) ([]Token, error) {
	l := NewLexer(s)
	var out []Token
	for {
		tok, err := l.Next()
		if err != nil {
			return out, err
		}
		out = append(out, tok)
		if tok.Kind == TokenEnd {
			return out, nil
		}
	}
}
