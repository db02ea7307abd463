package diagnostics

import (
	"testing"

	"github.com/funvibe/pipefix/internal/token"
)

func TestDiagnosticError(t *testing.T) {
	tests := []struct {
		name     string
		diag     *Diagnostic
		expected string
	}{
		{
			"with_position",
			&Diagnostic{Code: ErrP001, Message: "unexpected token", File: "main.pfx", Line: 3, Column: 7},
			"main.pfx:3:7: [P001] unexpected token",
		},
		{
			"no_position",
			&Diagnostic{Code: ErrR001, Message: "boom", File: "main.pfx"},
			"main.pfx: [R001] boom",
		},
		{
			"no_file",
			&Diagnostic{Code: ErrL001, Message: "illegal token", Line: 1, Column: 2},
			"<input>:1:2: [L001] illegal token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.diag.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestNewErrorTakesPositionFromToken(t *testing.T) {
	tok := token.Token{Type: token.PIPE, Lexeme: "|", Line: 4, Column: 9}
	diag := NewError(ErrP001, tok, "bad %s", "pipe")
	if diag.Line != 4 || diag.Column != 9 {
		t.Errorf("position = %d:%d, want 4:9", diag.Line, diag.Column)
	}
	if diag.Message != "bad pipe" {
		t.Errorf("message = %q", diag.Message)
	}
}
