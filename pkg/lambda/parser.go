package lambda

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

type TokenType int

const (
	TokenEOF TokenType = iota
	TokenIdent
	TokenLambda
	TokenDot
	TokenLParen
	TokenRParen
	TokenIllegal
)

type Token struct {
	Type    TokenType
	Literal string
	Pos     int
}

// SyntaxError is returned by Parse for malformed input.
type SyntaxError struct {
	Msg string
	Pos int // byte offset of the offending token
}

func (e *SyntaxError) Error() string {
	return e.Msg
}

const (
	msgUnexpectedEOF    = "unexpected end of input"
	msgMissingParen     = "missing closing parenthesis"
	msgTrailingTokens   = "unexpected tokens after expression"
	msgUnexpectedPrefix = "unexpected token: "
)

// operatorChars may form identifiers on their own, so `x + 1` is an
// application of the opaque identifier `+`.
const operatorChars = "+-*/%<>=!?&|^~"

type Parser struct {
	input   string
	pos     int
	current Token
}

func NewParser(input string) *Parser {
	p := &Parser{input: input}
	p.next()
	return p
}

func (p *Parser) next() {
	p.skipWhitespace()
	start := p.pos
	if p.pos >= len(p.input) {
		p.current = Token{Type: TokenEOF, Pos: start}
		return
	}

	if strings.HasPrefix(p.input[p.pos:], "λ") {
		p.pos += len("λ")
		p.current = Token{Type: TokenLambda, Literal: "λ", Pos: start}
		return
	}

	ch := p.input[p.pos]
	switch {
	case isIdentChar(ch):
		for p.pos < len(p.input) && isIdentChar(p.input[p.pos]) {
			p.pos++
		}
		p.current = Token{Type: TokenIdent, Literal: p.input[start:p.pos], Pos: start}
	case isOperatorChar(ch):
		for p.pos < len(p.input) && isOperatorChar(p.input[p.pos]) {
			p.pos++
		}
		p.current = Token{Type: TokenIdent, Literal: p.input[start:p.pos], Pos: start}
	case ch == '\\':
		p.current = Token{Type: TokenLambda, Literal: "\\", Pos: start}
		p.pos++
	case ch == '.':
		p.current = Token{Type: TokenDot, Literal: ".", Pos: start}
		p.pos++
	case ch == '(':
		p.current = Token{Type: TokenLParen, Literal: "(", Pos: start}
		p.pos++
	case ch == ')':
		p.current = Token{Type: TokenRParen, Literal: ")", Pos: start}
		p.pos++
	default:
		_, size := utf8.DecodeRuneInString(p.input[p.pos:])
		p.pos += size
		p.current = Token{Type: TokenIllegal, Literal: p.input[start:p.pos], Pos: start}
	}
}

func (p *Parser) skipWhitespace() {
	for p.pos < len(p.input) {
		r, size := utf8.DecodeRuneInString(p.input[p.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		p.pos += size
	}
}

func isIdentChar(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') || ch == '_'
}

func isOperatorChar(ch byte) bool {
	return strings.IndexByte(operatorChars, ch) >= 0
}

// IsWord reports whether name is an alphanumeric identifier.
func IsWord(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		if !isIdentChar(name[i]) {
			return false
		}
	}
	return true
}

func (p *Parser) errorf(pos int, format string, args ...any) error {
	return &SyntaxError{Msg: fmt.Sprintf(format, args...), Pos: pos}
}

func (p *Parser) unexpected() error {
	if p.current.Type == TokenEOF {
		return p.errorf(p.current.Pos, msgUnexpectedEOF)
	}
	return p.errorf(p.current.Pos, "%s%s", msgUnexpectedPrefix, p.current.Literal)
}

// Parse parses one complete expression; trailing tokens are an error.
func (p *Parser) Parse() (Term, error) {
	term, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if p.current.Type != TokenEOF {
		return nil, p.errorf(p.current.Pos, msgTrailingTokens)
	}
	return term, nil
}

// Expression ::= Abstraction | Application
func (p *Parser) parseExpression() (Term, error) {
	if p.current.Type == TokenLambda {
		return p.parseAbs()
	}
	return p.parseApp()
}

// Abstraction ::= LAMBDA IDENT DOT Expression
func (p *Parser) parseAbs() (Term, error) {
	p.next() // consume lambda

	if p.current.Type != TokenIdent {
		return nil, p.unexpected()
	}
	param := p.current.Literal
	p.next()

	if p.current.Type != TokenDot {
		return nil, p.unexpected()
	}
	p.next()

	// The body extends as far right as possible.
	body, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return Abs{Param: param, Body: body}, nil
}

// Application ::= Atom Atom*
func (p *Parser) parseApp() (Term, error) {
	left, err := p.parseAtom()
	if err != nil {
		return nil, err
	}

	for {
		switch p.current.Type {
		case TokenEOF, TokenRParen, TokenLambda, TokenDot:
			return left, nil
		}
		right, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		left = App{Fun: left, Arg: right}
	}
}

// Atom ::= IDENT | ( Expression ) | Abstraction
func (p *Parser) parseAtom() (Term, error) {
	switch p.current.Type {
	case TokenIdent:
		name := p.current.Literal
		p.next()
		return Var{Name: name}, nil
	case TokenLParen:
		open := p.current.Pos
		p.next()
		term, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if p.current.Type != TokenRParen {
			return nil, p.errorf(open, msgMissingParen)
		}
		p.next()
		return term, nil
	case TokenLambda:
		return p.parseAbs()
	default:
		return nil, p.unexpected()
	}
}

// Parse parses a lambda term from a string.
func Parse(input string) (Term, error) {
	p := NewParser(input)
	return p.Parse()
}

// MustParse is like Parse but panics on malformed input.
func MustParse(input string) Term {
	t, err := Parse(input)
	if err != nil {
		panic(fmt.Sprintf("lambda: MustParse(%q): %v", input, err))
	}
	return t
}
