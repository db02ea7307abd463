package lexer

import (
	"testing"

	"github.com/funvibe/pipefix/internal/token"
)

func TestNextToken(t *testing.T) {
	input := `add = wrap(\x, y -> x + y)
2 | add | 3
s = "hi\n"
1.5 * 2 # comment
a != b`

	tests := []struct {
		expectedType   token.TokenType
		expectedLexeme string
	}{
		{token.IDENT, "add"},
		{token.ASSIGN, "="},
		{token.IDENT, "wrap"},
		{token.LPAREN, "("},
		{token.BACKSLASH, "\\"},
		{token.IDENT, "x"},
		{token.COMMA, ","},
		{token.IDENT, "y"},
		{token.ARROW, "->"},
		{token.IDENT, "x"},
		{token.PLUS, "+"},
		{token.IDENT, "y"},
		{token.RPAREN, ")"},
		{token.NEWLINE, "\n"},
		{token.INT, "2"},
		{token.PIPE, "|"},
		{token.IDENT, "add"},
		{token.PIPE, "|"},
		{token.INT, "3"},
		{token.NEWLINE, "\n"},
		{token.IDENT, "s"},
		{token.ASSIGN, "="},
		{token.STRING, "hi\n"},
		{token.NEWLINE, "\n"},
		{token.FLOAT, "1.5"},
		{token.ASTERISK, "*"},
		{token.INT, "2"},
		{token.NEWLINE, "\n"},
		{token.IDENT, "a"},
		{token.NOT_EQ, "!="},
		{token.IDENT, "b"},
		{token.EOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - wrong token type. expected=%q, got=%q (lexeme %q)",
				i, tt.expectedType, tok.Type, tok.Lexeme)
		}
		if tok.Lexeme != tt.expectedLexeme {
			t.Fatalf("tests[%d] - wrong lexeme. expected=%q, got=%q",
				i, tt.expectedLexeme, tok.Lexeme)
		}
	}
}

func TestLiteralValues(t *testing.T) {
	l := New(`42 3.25 "a\tb"`)

	tok := l.NextToken()
	if got, ok := tok.Literal.(int64); !ok || got != 42 {
		t.Errorf("int literal = %v, want int64 42", tok.Literal)
	}
	tok = l.NextToken()
	if got, ok := tok.Literal.(float64); !ok || got != 3.25 {
		t.Errorf("float literal = %v, want float64 3.25", tok.Literal)
	}
	tok = l.NextToken()
	if got, ok := tok.Literal.(string); !ok || got != "a\tb" {
		t.Errorf("string literal = %v, want %q", tok.Literal, "a\tb")
	}
}

func TestLineAndColumnTracking(t *testing.T) {
	l := New("a\n  b")

	tok := l.NextToken()
	if tok.Line != 1 || tok.Column != 1 {
		t.Errorf("a at %d:%d, want 1:1", tok.Line, tok.Column)
	}
	l.NextToken() // newline
	tok = l.NextToken()
	if tok.Line != 2 || tok.Column != 3 {
		t.Errorf("b at %d:%d, want 2:3", tok.Line, tok.Column)
	}
}

func TestIllegalTokens(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unterminated_string", `"abc`},
		{"unknown_escape", `"\q"`},
		{"stray_char", "@"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(tt.input)
			for {
				tok := l.NextToken()
				if tok.Type == token.ILLEGAL {
					return
				}
				if tok.Type == token.EOF {
					t.Fatalf("no ILLEGAL token produced for %q", tt.input)
				}
			}
		})
	}
}
