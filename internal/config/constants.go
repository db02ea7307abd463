package config

const SourceFileExt = ".pfx"

// SourceFileExtensions are all recognized source file extensions
var SourceFileExtensions = []string{".pfx", ".pipefix"}

// Built-in function names
const (
	WrapFuncName    = "wrap"
	ComposeFuncName = "compose"
	PrintFuncName   = "print"
	ShowFuncName    = "show"
	TypeOfFuncName  = "typeOf"
	LenFuncName     = "len"
	LowerFuncName   = "lower"
	UpperFuncName   = "upper"
	StripFuncName   = "strip"
	AbsFuncName     = "abs"
	SquareFuncName  = "square"
)

// ComposerName is the prelude binding for the wrapped compose operation,
// so `f | comp | g` works out of the box.
const ComposerName = "comp"
