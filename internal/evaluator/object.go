package evaluator

import "hash/fnv"

type ObjectType string

const (
	INTEGER_OBJ          = "INTEGER"
	FLOAT_OBJ            = "FLOAT"
	STRING_OBJ           = "STRING"
	BOOLEAN_OBJ          = "BOOLEAN"
	NIL_OBJ              = "NIL"
	ERROR_OBJ            = "ERROR"
	FUNCTION_OBJ         = "FUNCTION"
	BUILTIN_OBJ          = "BUILTIN"
	COMPOSED_FUNC_OBJ    = "COMPOSED_FUNC"
	APPLICATOR_OBJ       = "APPLICATOR"
	BOUND_APPLICATOR_OBJ = "BOUND_APPLICATOR"
)

type Object interface {
	Type() ObjectType
	Inspect() string
	Hash() uint32
}

// Helper for hashing strings
func hashString(s string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(s))
	return h.Sum32()
}
