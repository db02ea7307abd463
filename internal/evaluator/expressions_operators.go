package evaluator

import "math"

func (e *Evaluator) evalPrefixExpression(operator string, right Object, line, column int) Object {
	switch operator {
	case "!":
		return e.evalBangOperatorExpression(right, line, column)
	case "-":
		if right.Type() == INTEGER_OBJ {
			value := right.(*Integer).Value
			return &Integer{Value: -value}
		} else if right.Type() == FLOAT_OBJ {
			value := right.(*Float).Value
			return &Float{Value: -value}
		}
		return newErrorWithLocation(line, column, "unknown operator: %s%s", operator, right.Type())
	default:
		return newErrorWithLocation(line, column, "unknown operator: %s%s", operator, right.Type())
	}
}

func (e *Evaluator) evalBangOperatorExpression(right Object, line, column int) Object {
	switch right {
	case TRUE:
		return FALSE
	case FALSE:
		return TRUE
	default:
		if right.Type() == BOOLEAN_OBJ {
			val := right.(*Boolean).Value
			return e.nativeBoolToBooleanObject(!val)
		}
		return newErrorWithLocation(line, column, "operator ! not supported for %s", right.Type())
	}
}

func (e *Evaluator) evalInfixExpression(operator string, left, right Object, line, column int) Object {
	if operator == "|" {
		return e.evalPipeExpression(left, right, line, column)
	}

	if left.Type() == INTEGER_OBJ && right.Type() == INTEGER_OBJ {
		return e.evalIntegerInfixExpression(operator, left, right, line, column)
	}
	if left.Type() == FLOAT_OBJ && right.Type() == FLOAT_OBJ {
		return e.evalFloatInfixExpression(operator, left, right, line, column)
	}

	// Implicit Int -> Float conversion
	if left.Type() == INTEGER_OBJ && right.Type() == FLOAT_OBJ {
		leftVal := float64(left.(*Integer).Value)
		return e.evalFloatInfixExpression(operator, &Float{Value: leftVal}, right, line, column)
	}
	if left.Type() == FLOAT_OBJ && right.Type() == INTEGER_OBJ {
		rightVal := float64(right.(*Integer).Value)
		return e.evalFloatInfixExpression(operator, left, &Float{Value: rightVal}, line, column)
	}

	if left.Type() == STRING_OBJ && right.Type() == STRING_OBJ {
		return e.evalStringInfixExpression(operator, left, right, line, column)
	}
	if left.Type() == BOOLEAN_OBJ && right.Type() == BOOLEAN_OBJ {
		return e.evalBooleanInfixExpression(operator, left, right, line, column)
	}

	switch operator {
	case "==":
		return e.nativeBoolToBooleanObject(left == right)
	case "!=":
		return e.nativeBoolToBooleanObject(left != right)
	}

	return newErrorWithLocation(line, column, "type mismatch: %s %s %s", left.Type(), operator, right.Type())
}

// evalPipeExpression resolves `left | right` through the two-sided
// protocol: the forward hook on the left operand fires first; if the left
// operand has none, the builtin meanings of `|` (bitwise or on integers,
// logical or on booleans) apply; only when both decline does dispatch fall
// through to the reflected hook on the right operand.
func (e *Evaluator) evalPipeExpression(left, right Object, line, column int) Object {
	if combiner, ok := left.(pipeCombiner); ok {
		return e.located(combiner.combinePipe(e, right), line, column)
	}

	if left.Type() == INTEGER_OBJ && right.Type() == INTEGER_OBJ {
		return &Integer{Value: left.(*Integer).Value | right.(*Integer).Value}
	}
	if left.Type() == BOOLEAN_OBJ && right.Type() == BOOLEAN_OBJ {
		return e.nativeBoolToBooleanObject(left.(*Boolean).Value || right.(*Boolean).Value)
	}

	if combiner, ok := right.(reflectedPipeCombiner); ok {
		return e.located(combiner.combinePipeReflected(e, left), line, column)
	}

	return newErrorWithLocation(line, column, "type mismatch: %s | %s", left.Type(), right.Type())
}

// located stamps the operator's position onto an error that has none.
func (e *Evaluator) located(obj Object, line, column int) Object {
	if err, ok := obj.(*Error); ok && err.Line == 0 {
		err.Line = line
		err.Column = column
	}
	return obj
}

func (e *Evaluator) evalIntegerInfixExpression(operator string, left, right Object, line, column int) Object {
	leftVal := left.(*Integer).Value
	rightVal := right.(*Integer).Value

	switch operator {
	case "+":
		return &Integer{Value: leftVal + rightVal}
	case "-":
		return &Integer{Value: leftVal - rightVal}
	case "*":
		return &Integer{Value: leftVal * rightVal}
	case "/":
		if rightVal == 0 {
			return newErrorWithLocation(line, column, "division by zero")
		}
		return &Integer{Value: leftVal / rightVal}
	case "%":
		if rightVal == 0 {
			return newErrorWithLocation(line, column, "division by zero")
		}
		return &Integer{Value: leftVal % rightVal}
	case "==":
		return e.nativeBoolToBooleanObject(leftVal == rightVal)
	case "!=":
		return e.nativeBoolToBooleanObject(leftVal != rightVal)
	case "<":
		return e.nativeBoolToBooleanObject(leftVal < rightVal)
	case ">":
		return e.nativeBoolToBooleanObject(leftVal > rightVal)
	case "<=":
		return e.nativeBoolToBooleanObject(leftVal <= rightVal)
	case ">=":
		return e.nativeBoolToBooleanObject(leftVal >= rightVal)
	default:
		return newErrorWithLocation(line, column, "unknown operator: %s %s %s", left.Type(), operator, right.Type())
	}
}

func (e *Evaluator) evalFloatInfixExpression(operator string, left, right Object, line, column int) Object {
	leftVal := left.(*Float).Value
	rightVal := right.(*Float).Value

	switch operator {
	case "+":
		return &Float{Value: leftVal + rightVal}
	case "-":
		return &Float{Value: leftVal - rightVal}
	case "*":
		return &Float{Value: leftVal * rightVal}
	case "/":
		return &Float{Value: leftVal / rightVal}
	case "%":
		return &Float{Value: math.Mod(leftVal, rightVal)}
	case "==":
		return e.nativeBoolToBooleanObject(leftVal == rightVal)
	case "!=":
		return e.nativeBoolToBooleanObject(leftVal != rightVal)
	case "<":
		return e.nativeBoolToBooleanObject(leftVal < rightVal)
	case ">":
		return e.nativeBoolToBooleanObject(leftVal > rightVal)
	case "<=":
		return e.nativeBoolToBooleanObject(leftVal <= rightVal)
	case ">=":
		return e.nativeBoolToBooleanObject(leftVal >= rightVal)
	default:
		return newErrorWithLocation(line, column, "unknown operator: %s %s %s", left.Type(), operator, right.Type())
	}
}

func (e *Evaluator) evalStringInfixExpression(operator string, left, right Object, line, column int) Object {
	leftVal := left.(*String).Value
	rightVal := right.(*String).Value

	switch operator {
	case "+":
		return &String{Value: leftVal + rightVal}
	case "==":
		return e.nativeBoolToBooleanObject(leftVal == rightVal)
	case "!=":
		return e.nativeBoolToBooleanObject(leftVal != rightVal)
	case "<":
		return e.nativeBoolToBooleanObject(leftVal < rightVal)
	case ">":
		return e.nativeBoolToBooleanObject(leftVal > rightVal)
	default:
		return newErrorWithLocation(line, column, "unknown operator: %s %s %s", left.Type(), operator, right.Type())
	}
}

func (e *Evaluator) evalBooleanInfixExpression(operator string, left, right Object, line, column int) Object {
	leftVal := left.(*Boolean).Value
	rightVal := right.(*Boolean).Value

	switch operator {
	case "==":
		return e.nativeBoolToBooleanObject(leftVal == rightVal)
	case "!=":
		return e.nativeBoolToBooleanObject(leftVal != rightVal)
	default:
		return newErrorWithLocation(line, column, "unknown operator: %s %s %s", left.Type(), operator, right.Type())
	}
}
