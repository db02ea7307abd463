package evaluator

import (
	"fmt"
	"strings"
)

// Error
type Error struct {
	Code       string // diagnostics code (R001, R002)
	Message    string
	Line       int
	Column     int
	StackTrace []StackFrame
}

// StackFrame for error stack traces
type StackFrame struct {
	Name   string
	File   string
	Line   int
	Column int
}

func (e *Error) Type() ObjectType { return ERROR_OBJ }
func (e *Error) Inspect() string {
	var result string
	if e.Line > 0 {
		result = fmt.Sprintf("ERROR at %d:%d: %s", e.Line, e.Column, e.Message)
	} else {
		result = "ERROR: " + e.Message
	}

	// Call chain from innermost (most recent) to outermost.
	if len(e.StackTrace) > 0 {
		result += "\nStack trace:"
		for i := len(e.StackTrace) - 1; i >= 0; i-- {
			frame := e.StackTrace[i]
			var callerName string
			if i > 0 {
				callerName = e.StackTrace[i-1].Name
			} else {
				callerName = frame.File
				if idx := strings.LastIndex(callerName, "."); idx > 0 {
					callerName = callerName[:idx]
				}
			}
			result += fmt.Sprintf("\n  at %s:%d (called %s)", callerName, frame.Line, frame.Name)
		}
	}
	return result
}
func (e *Error) Hash() uint32 { return hashString(e.Message) }
