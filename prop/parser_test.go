package prop

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// To each expression, associate the canonical form of the parsed formula.
var exprToFormula = map[string]string{
	"foo":             "foo",
	"A":               "A",
	"Abc12":           "Abc12",
	"-foo":            "-foo",
	"--foo":           "--foo",
	"~foo":            "-foo",
	"(a^b)":           "(a^b)",
	"(a&b)":           "(a^b)",
	"(a|b)":           "(a|b)",
	"(a->b)":          "(a->b)",
	"(a=>b)":          "(a->b)",
	"(a<->b)":         "(a<->b)",
	"(a<=>b)":         "(a<->b)",
	"( a ^ b )":       "(a^b)",
	"-(a|b)":          "-(a|b)",
	"(-a^-b)":         "(-a^-b)",
	"((a->b)^(b->a))": "((a->b)^(b->a))",
	"(a<->-a)":        "(a<->-a)",
	"((a^b)|(c^d))":   "((a^b)|(c^d))",
	"-(a&(b|-c))":     "-(a^(b|-c))",
	"a b":             "ab", // whitespace is discarded before parsing
	"\t (x1|y2) \n":   "(x1|y2)",
}

func TestParseString(t *testing.T) {
	for expr, expected := range exprToFormula {
		f, err := ParseString(expr)
		if err != nil {
			t.Errorf("could not parse expression %q: %v", expr, err)
		} else if f.String() != expected {
			t.Errorf("for expression %q, expected formula %q, got %q", expr, expected, f.String())
		}
	}
}

func TestParseReader(t *testing.T) {
	f, err := Parse(strings.NewReader("((a->b)^a)"))
	require.NoError(t, err)
	assert.Equal(t, And(Implies(Var("a"), Var("b")), Var("a")), f)
}

func TestParseAST(t *testing.T) {
	f, err := ParseString("(a^b)")
	require.NoError(t, err)
	assert.Equal(t, And(Var("a"), Var("b")), f)

	f, err = ParseString("-a")
	require.NoError(t, err)
	assert.Equal(t, Not(Var("a")), f)
}

// Reserializing a parsed formula and parsing it again must yield a
// structurally equal formula.
func TestParseRoundTrip(t *testing.T) {
	for expr := range exprToFormula {
		f1, err := ParseString(expr)
		require.NoError(t, err, "expression %q", expr)
		f2, err := ParseString(f1.String())
		require.NoError(t, err, "canonical form %q of %q", f1.String(), expr)
		assert.Equal(t, f1, f2, "round trip of %q", expr)
		assert.True(t, f1 == f2, "structural equality after round trip of %q", expr)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input string
		kind  ErrorKind
	}{
		{"", UnexpectedEndOfInput},
		{" \t", UnexpectedEndOfInput},
		{"-", UnexpectedEndOfInput},
		{"(a", UnexpectedEndOfInput},
		{"(a^", UnexpectedEndOfInput},
		{"(a^b", UnterminatedExpression},
		{"((a|b)^-c", UnterminatedExpression},
		{"(a^b|c)", UnterminatedExpression},
		{"(a^b]", UnterminatedExpression},
		{"1a", UnexpectedCharacter},
		{")", UnexpectedCharacter},
		{"(1^b)", UnexpectedCharacter},
		{"(a^2)", UnexpectedCharacter},
		{"_a", UnexpectedCharacter},
		{"(a<-b)", UnknownOperator},
		{"(a=b)", UnknownOperator},
		{"(a>b)", UnknownOperator},
		{"(a-b)", UnknownOperator},
		{"(a~b)", UnknownOperator},
		{"(a<>b)", UnknownOperator},
		{"(ab)", UnknownOperator},
		{"ab)", TrailingInput},
		{"(a^b))", TrailingInput},
		{"a(b)", TrailingInput},
		{"a_b", TrailingInput},
	}
	for _, tt := range tests {
		_, err := ParseString(tt.input)
		require.Error(t, err, "input %q", tt.input)
		var perr *ParseError
		require.ErrorAs(t, err, &perr, "input %q", tt.input)
		assert.Equal(t, tt.kind, perr.Kind, "input %q: got error %v", tt.input, err)
	}
}

func TestParseErrorPosition(t *testing.T) {
	_, err := ParseString("1a")
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 0, perr.Pos)
	assert.Equal(t, "1", perr.Text)

	// Positions refer to the original input, before whitespace removal.
	_, err = ParseString(" ( a <- b )")
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, UnknownOperator, perr.Kind)
	assert.Equal(t, 5, perr.Pos)
	assert.Equal(t, "<-", perr.Text)

	_, err = ParseString("(a^b")
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, UnterminatedExpression, perr.Kind)
	assert.Equal(t, 4, perr.Pos)
	assert.Equal(t, "", perr.Text)
}

// Identical input always yields an identical AST or an identical error.
func TestParseDeterministic(t *testing.T) {
	f1, err1 := ParseString("((a->b)<->-(c|d))")
	f2, err2 := ParseString("((a->b)<->-(c|d))")
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.True(t, f1 == f2)

	_, err1 = ParseString("(a<-b)")
	_, err2 = ParseString("(a<-b)")
	assert.Equal(t, err1, err2)
}
