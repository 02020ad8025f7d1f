package regexlib

// Grammar, one method per nonterminal:
//
//	E  -> M E'
//	E' -> '|' E | eps
//	M  -> N M'
//	M' -> M | eps
//	N  -> CHAR N' | '(' E ')' N'
//	N' -> '*' N' | eps

// Node labels.
const (
	LabelE      = "E"
	LabelEPrime = "E'"
	LabelM      = "M"
	LabelMPrime = "M'"
	LabelN      = "N"
	LabelNPrime = "N'"
	LabelEps    = "eps"
)

var (
	firstN       = []TokenKind{TokenLParen, TokenChar}
	expectEPrime = []TokenKind{TokenOr, TokenRParen, TokenEnd}
	expectMPrime = []TokenKind{TokenLParen, TokenChar, TokenOr, TokenRParen, TokenEnd}
	expectNPrime = []TokenKind{TokenKleene, TokenOr, TokenLParen, TokenRParen, TokenEnd, TokenChar}
	expectRParen = []TokenKind{TokenRParen}
	expectEnd    = []TokenKind{TokenEnd}
)

// Parser is a recursive-descent parser over a single Lexer. A Parser is not
// safe for concurrent use; independent parsers share nothing.
type Parser struct {
	lex  *Lexer
	tree *Tree
}

// NewParser returns a parser for pattern.
func NewParser(pattern string) *Parser {
	return &Parser{lex: NewLexer(pattern)}
}

// Parse is shorthand for NewParser(pattern).Run().
func Parse(pattern string) (*Tree, error) {
	return NewParser(pattern).Run()
}

// Run parses the whole input. Node numbering restarts at 0 on every call.
// On error no tree is returned.
func (p *Parser) Run() (*Tree, error) {
	p.lex = NewLexer(p.lex.Source())
	p.tree = NewTree()
	if err := p.scan(); err != nil {
		return nil, err
	}
	root, err := p.parseE()
	if err != nil {
		return nil, err
	}
	if p.look().Kind != TokenEnd {
		return nil, p.expected(expectEnd)
	}
	p.tree.SetRoot(root)
	return p.tree, nil
}

func (p *Parser) look() Token { return p.lex.Current() }

func (p *Parser) scan() error {
	_, err := p.lex.Next()
	return err
}

func (p *Parser) expected(kinds []TokenKind) error {
	return &SyntaxError{
		Expected: append([]TokenKind(nil), kinds...),
		Got:      p.look(),
		Offset:   p.lex.Offset(),
		Source:   p.lex.Source(),
	}
}

// terminal appends a leaf for the current token and advances past it.
func (p *Parser) terminal(parent NodeID, label string) error {
	p.tree.AddChild(parent, p.tree.NewNode(label))
	return p.scan()
}

func (p *Parser) epsilon(parent NodeID) {
	p.tree.AddChild(parent, p.tree.NewNode(LabelEps))
}

// nonterminal runs parse and attaches its result to parent.
func (p *Parser) nonterminal(parent NodeID, parse func() (NodeID, error)) error {
	child, err := parse()
	if err != nil {
		return err
	}
	p.tree.AddChild(parent, child)
	return nil
}

func (p *Parser) parseE() (NodeID, error) {
	res := p.tree.NewNode(LabelE)
	switch p.look().Kind {
	case TokenChar, TokenLParen:
		if err := p.nonterminal(res, p.parseM); err != nil {
			return 0, err
		}
		if err := p.nonterminal(res, p.parseEPrime); err != nil {
			return 0, err
		}
	default:
		return 0, p.expected(firstN)
	}
	return res, nil
}

func (p *Parser) parseEPrime() (NodeID, error) {
	res := p.tree.NewNode(LabelEPrime)
	switch p.look().Kind {
	case TokenOr:
		if err := p.terminal(res, "|"); err != nil {
			return 0, err
		}
		if err := p.nonterminal(res, p.parseE); err != nil {
			return 0, err
		}
	case TokenRParen, TokenEnd:
		p.epsilon(res)
	default:
		return 0, p.expected(expectEPrime)
	}
	return res, nil
}

func (p *Parser) parseM() (NodeID, error) {
	res := p.tree.NewNode(LabelM)
	switch p.look().Kind {
	case TokenChar, TokenLParen:
		if err := p.nonterminal(res, p.parseN); err != nil {
			return 0, err
		}
		if err := p.nonterminal(res, p.parseMPrime); err != nil {
			return 0, err
		}
	default:
		return 0, p.expected(firstN)
	}
	return res, nil
}

func (p *Parser) parseMPrime() (NodeID, error) {
	res := p.tree.NewNode(LabelMPrime)
	switch p.look().Kind {
	case TokenChar, TokenLParen:
		if err := p.nonterminal(res, p.parseM); err != nil {
			return 0, err
		}
	case TokenOr, TokenRParen, TokenEnd:
		p.epsilon(res)
	default:
		return 0, p.expected(expectMPrime)
	}
	return res, nil
}

func (p *Parser) parseN() (NodeID, error) {
	res := p.tree.NewNode(LabelN)
	switch p.look().Kind {
	case TokenChar:
		if err := p.terminal(res, string(p.look().Char)); err != nil {
			return 0, err
		}
	case TokenLParen:
		if err := p.terminal(res, "("); err != nil {
			return 0, err
		}
		if err := p.nonterminal(res, p.parseE); err != nil {
			return 0, err
		}
		if p.look().Kind != TokenRParen {
			return 0, p.expected(expectRParen)
		}
		if err := p.terminal(res, ")"); err != nil {
			return 0, err
		}
	default:
		return 0, p.expected(firstN)
	}
	if err := p.nonterminal(res, p.parseNPrime); err != nil {
		return 0, err
	}
	return res, nil
}

func (p *Parser) parseNPrime() (NodeID, error) {
	res := p.tree.NewNode(LabelNPrime)
	switch p.look().Kind {
	case TokenKleene:
		if err := p.terminal(res, "*"); err != nil {
			return 0, err
		}
		if err := p.nonterminal(res, p.parseNPrime); err != nil {
			return 0, err
		}
	case TokenOr, TokenRParen, TokenEnd, TokenChar, TokenLParen:
		p.epsilon(res)
	default:
		return 0, p.expected(expectNPrime)
	}
	return res, nil
}
