package ast

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/funvibe/pipefix/internal/token"
)

type Node interface {
	TokenLexeme() string
	String() string
}

type Statement interface {
	Node
	statementNode()
}

type Expression interface {
	Node
	expressionNode()
}

// Program is the root node: a sequence of newline-separated statements.
type Program struct {
	Statements []Statement
	File       string
}

func (p *Program) TokenLexeme() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLexeme()
	}
	return ""
}

func (p *Program) String() string {
	var out bytes.Buffer
	for _, s := range p.Statements {
		out.WriteString(s.String())
		out.WriteString("\n")
	}
	return out.String()
}

// AssignStatement is `name = value`.
type AssignStatement struct {
	Token token.Token // the = token
	Name  *Identifier
	Value Expression
}

func (as *AssignStatement) statementNode()      {}
func (as *AssignStatement) TokenLexeme() string { return as.Token.Lexeme }
func (as *AssignStatement) String() string {
	return as.Name.String() + " = " + as.Value.String()
}

type ExpressionStatement struct {
	Token      token.Token // the first token of the expression
	Expression Expression
}

func (es *ExpressionStatement) statementNode()      {}
func (es *ExpressionStatement) TokenLexeme() string { return es.Token.Lexeme }
func (es *ExpressionStatement) String() string {
	if es.Expression != nil {
		return es.Expression.String()
	}
	return ""
}

type Identifier struct {
	Token token.Token
	Value string
}

func (i *Identifier) expressionNode()     {}
func (i *Identifier) TokenLexeme() string { return i.Token.Lexeme }
func (i *Identifier) String() string      { return i.Value }

type IntegerLiteral struct {
	Token token.Token
	Value int64
}

func (il *IntegerLiteral) expressionNode()     {}
func (il *IntegerLiteral) TokenLexeme() string { return il.Token.Lexeme }
func (il *IntegerLiteral) String() string      { return fmt.Sprintf("%d", il.Value) }

type FloatLiteral struct {
	Token token.Token
	Value float64
}

func (fl *FloatLiteral) expressionNode()     {}
func (fl *FloatLiteral) TokenLexeme() string { return fl.Token.Lexeme }
func (fl *FloatLiteral) String() string      { return fl.Token.Lexeme }

type StringLiteral struct {
	Token token.Token
	Value string
}

func (sl *StringLiteral) expressionNode()     {}
func (sl *StringLiteral) TokenLexeme() string { return sl.Token.Lexeme }
func (sl *StringLiteral) String() string      { return fmt.Sprintf("%q", sl.Value) }

type BooleanLiteral struct {
	Token token.Token
	Value bool
}

func (bl *BooleanLiteral) expressionNode()     {}
func (bl *BooleanLiteral) TokenLexeme() string { return bl.Token.Lexeme }
func (bl *BooleanLiteral) String() string      { return bl.Token.Lexeme }

type NilLiteral struct {
	Token token.Token
}

func (nl *NilLiteral) expressionNode()     {}
func (nl *NilLiteral) TokenLexeme() string { return nl.Token.Lexeme }
func (nl *NilLiteral) String() string      { return "nil" }

type PrefixExpression struct {
	Token    token.Token
	Operator string
	Right    Expression
}

func (pe *PrefixExpression) expressionNode()     {}
func (pe *PrefixExpression) TokenLexeme() string { return pe.Token.Lexeme }
func (pe *PrefixExpression) String() string {
	return "(" + pe.Operator + pe.Right.String() + ")"
}

type InfixExpression struct {
	Token    token.Token
	Operator string
	Left     Expression
	Right    Expression
}

func (ie *InfixExpression) expressionNode()     {}
func (ie *InfixExpression) TokenLexeme() string { return ie.Token.Lexeme }
func (ie *InfixExpression) String() string {
	return "(" + ie.Left.String() + " " + ie.Operator + " " + ie.Right.String() + ")"
}

// LambdaLiteral is `\x, y -> body`.
type LambdaLiteral struct {
	Token      token.Token // the \ token
	Parameters []*Identifier
	Body       Expression
}

func (ll *LambdaLiteral) expressionNode()     {}
func (ll *LambdaLiteral) TokenLexeme() string { return ll.Token.Lexeme }
func (ll *LambdaLiteral) String() string {
	params := []string{}
	for _, p := range ll.Parameters {
		params = append(params, p.String())
	}
	return "(\\" + strings.Join(params, ", ") + " -> " + ll.Body.String() + ")"
}

type CallExpression struct {
	Token     token.Token // the ( token
	Function  Expression
	Arguments []Expression
}

func (ce *CallExpression) expressionNode()     {}
func (ce *CallExpression) TokenLexeme() string { return ce.Token.Lexeme }
func (ce *CallExpression) String() string {
	args := []string{}
	for _, a := range ce.Arguments {
		args = append(args, a.String())
	}
	return ce.Function.String() + "(" + strings.Join(args, ", ") + ")"
}
