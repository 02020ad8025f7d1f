package regexlib

// TokenKind identifies the type of a lexical token.
type TokenKind int

const (
	TokenLParen TokenKind = iota // (
	TokenRParen                  // )
	TokenEnd                     // end of input
	TokenOr                      // |
	TokenKleene                  // *
	TokenChar                    // a..z
)

var tokenNames = map[TokenKind]string{
	TokenLParen: "'('",
	TokenRParen: "')'",
	TokenEnd:    "EOF",
	TokenOr:     "'|'",
	TokenKleene: "'*'",
	TokenChar:   "char",
}

func (k TokenKind) String() string {
	if name, ok := tokenNames[k]; ok {
		return name
	}
	return "unknown"
}

// Token is a single lexical token. Char is only set for TokenChar, so two
// tokens are equal with == exactly when kind and payload match.
type Token struct {
	Kind TokenKind
	Char byte
}

// CharToken returns the token for a letter atom.
func CharToken(c byte) Token { return Token{Kind: TokenChar, Char: c} }

func (t Token) String() string {
	switch t.Kind {
	case TokenChar:
		return "CHAR(" + string(t.Char) + ")"
	case TokenLParen:
		return "("
	case TokenRParen:
		return ")"
	case TokenOr:
		return "|"
	case TokenKleene:
		return "*"
	case TokenEnd:
		return "EOF"
	}
	return "unknown"
}
