// Package diagnostics defines positioned, coded errors shared by the
// lexer, parser, and runtime.
package diagnostics

import (
	"fmt"

	"github.com/funvibe/pipefix/internal/token"
)

// Diagnostic codes. L = lexical, P = parse, R = runtime.
const (
	ErrL001 = "L001" // illegal character or malformed literal
	ErrP001 = "P001" // unexpected token
	ErrP002 = "P002" // no prefix parse rule
	ErrP003 = "P003" // expression too deeply nested
	ErrR001 = "R001" // runtime type or arity error
	ErrR002 = "R002" // unbound left operand
)

type Diagnostic struct {
	Code    string
	Message string
	File    string
	Line    int
	Column  int
}

func NewError(code string, tok token.Token, format string, a ...interface{}) *Diagnostic {
	return &Diagnostic{
		Code:    code,
		Message: fmt.Sprintf(format, a...),
		Line:    tok.Line,
		Column:  tok.Column,
	}
}

func (d *Diagnostic) Error() string {
	file := d.File
	if file == "" {
		file = "<input>"
	}
	if d.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: [%s] %s", file, d.Line, d.Column, d.Code, d.Message)
	}
	return fmt.Sprintf("%s: [%s] %s", file, d.Code, d.Message)
}
