package prop

import (
	"fmt"
	"io"
)

// An ErrorKind discriminates the reasons an input can be rejected.
type ErrorKind byte

const (
	// UnexpectedCharacter means a character that cannot start or continue a
	// formula was found, such as a digit in leading position.
	UnexpectedCharacter ErrorKind = iota
	// UnterminatedExpression means a closing parenthesis is missing.
	UnterminatedExpression
	// UnknownOperator means the token in operator position is not one of
	// ^, |, -> or <-> (or an accepted alias).
	UnknownOperator
	// EmptyVariableName means a variable name of zero length was scanned.
	EmptyVariableName
	// TrailingInput means characters remain after a complete formula.
	TrailingInput
	// UnexpectedEndOfInput means the input stopped where a formula or an
	// operator was still required.
	UnexpectedEndOfInput
)

func (k ErrorKind) String() string {
	switch k {
	case UnexpectedCharacter:
		return "unexpected character"
	case UnterminatedExpression:
		return "unterminated expression"
	case UnknownOperator:
		return "unknown operator"
	case EmptyVariableName:
		return "empty variable name"
	case TrailingInput:
		return "trailing input"
	case UnexpectedEndOfInput:
		return "unexpected end of input"
	default:
		panic("invalid error kind")
	}
}

// A ParseError is the rejection of an input string by the parser.
// Pos is a byte offset into the original input, before whitespace removal.
// Text holds the offending characters; it is empty at end of input.
type ParseError struct {
	Kind ErrorKind
	Pos  int
	Text string
}

func (e *ParseError) Error() string {
	if e.Text == "" {
		return fmt.Sprintf("%s at position %d", e.Kind, e.Pos)
	}
	return fmt.Sprintf("%s %q at position %d", e.Kind, e.Text, e.Pos)
}

// Parse reads the given Reader to its end and parses its content as a single
// formula.
func Parse(r io.Reader) (Formula, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("could not read formula: %v", err)
	}
	return ParseString(string(buf))
}

// ParseString parses a single formula written in the concrete syntax
//
//	formula  := variable | '-' formula | '(' formula binop formula ')'
//	variable := [A-Za-z][A-Za-z0-9]*
//	binop    := '^' | '|' | "->" | "<->"
//
// All whitespace is discarded before parsing. The alias spellings ~, &, =>
// and <=> are accepted for -, ^, -> and <->. On failure the returned error is
// a *ParseError locating the offending characters.
func ParseString(input string) (Formula, error) {
	p := newParser(input)
	f, err := p.parseFormula()
	if err != nil {
		return nil, err
	}
	if !p.eof() {
		return nil, p.errHere(TrailingInput)
	}
	return f, nil
}

type parser struct {
	chars []byte // input with all whitespace removed
	offs  []int  // original offset of each retained character
	pos   int    // index of the lookahead character in chars
	end   int    // length of the original input
}

func newParser(input string) *parser {
	p := &parser{end: len(input)}
	for i := 0; i < len(input); i++ {
		if c := input[i]; !isSpace(c) {
			p.chars = append(p.chars, c)
			p.offs = append(p.offs, i)
		}
	}
	return p
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlnum(c byte) bool {
	return isAlpha(c) || (c >= '0' && c <= '9')
}

func (p *parser) eof() bool { return p.pos >= len(p.chars) }

func (p *parser) peek() byte { return p.chars[p.pos] }

// errHere builds a ParseError pointing at the lookahead character, or at the
// end of the original input when there is none.
func (p *parser) errHere(kind ErrorKind) *ParseError {
	if p.eof() {
		return &ParseError{Kind: kind, Pos: p.end}
	}
	return &ParseError{Kind: kind, Pos: p.offs[p.pos], Text: string(p.chars[p.pos])}
}

func (p *parser) parseFormula() (Formula, error) {
	if p.eof() {
		return nil, p.errHere(UnexpectedEndOfInput)
	}
	switch c := p.peek(); {
	case isAlpha(c):
		return p.parseVariable()
	case c == '-' || c == '~':
		p.pos++
		f, err := p.parseFormula()
		if err != nil {
			return nil, err
		}
		return Not(f), nil
	case c == '(':
		return p.parseBinary()
	default:
		return nil, p.errHere(UnexpectedCharacter)
	}
}

func (p *parser) parseVariable() (Formula, error) {
	start := p.pos
	for !p.eof() && isAlnum(p.peek()) {
		p.pos++
	}
	name := string(p.chars[start:p.pos])
	if name == "" {
		return nil, p.errHere(EmptyVariableName)
	}
	return Var(name), nil
}

func (p *parser) parseBinary() (Formula, error) {
	p.pos++ // consume '('
	left, err := p.parseFormula()
	if err != nil {
		return nil, err
	}
	op, err := p.parseOperator()
	if err != nil {
		return nil, err
	}
	right, err := p.parseFormula()
	if err != nil {
		return nil, err
	}
	if p.eof() || p.peek() != ')' {
		return nil, p.errHere(UnterminatedExpression)
	}
	p.pos++
	return op(left, right), nil
}

// parseOperator classifies the binary operator token by longest match:
// the three-character forms <-> and <=> are checked before any shorter
// reading of their prefix, so an incomplete arrow such as <- is reported as
// an unknown operator rather than silently reinterpreted.
func (p *parser) parseOperator() (func(Formula, Formula) Formula, error) {
	if p.eof() {
		return nil, p.errHere(UnexpectedEndOfInput)
	}
	start := p.pos
	switch p.peek() {
	case '^', '&':
		p.pos++
		return And, nil
	case '|':
		p.pos++
		return Or, nil
	case '-', '=':
		if p.pos+1 < len(p.chars) && p.chars[p.pos+1] == '>' {
			p.pos += 2
			return Implies, nil
		}
		return nil, p.opError(start)
	case '<':
		if p.pos+2 < len(p.chars) && p.chars[p.pos+2] == '>' &&
			(p.chars[p.pos+1] == '-' || p.chars[p.pos+1] == '=') {
			p.pos += 3
			return Iff, nil
		}
		return nil, p.opError(start)
	default:
		return nil, p.errHere(UnknownOperator)
	}
}

// opError reports the maximal run of operator characters at start as an
// unknown operator.
func (p *parser) opError(start int) *ParseError {
	end := start
	for end < len(p.chars) && isOpChar(p.chars[end]) {
		end++
	}
	return &ParseError{Kind: UnknownOperator, Pos: p.offs[start], Text: string(p.chars[start:end])}
}

func isOpChar(c byte) bool {
	switch c {
	case '^', '&', '|', '-', '~', '<', '>', '=':
		return true
	}
	return false
}
