package interpreter

import "fmt"

// RuntimeError is the discriminated failure returned by Interpret. The first
// runtime error aborts the remaining statements of the program.
type RuntimeError interface {
	error
	runtimeError()
}

type UndefinedVariableError struct {
	Name string
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("Undefined variable '%s'", e.Name)
}

func (*UndefinedVariableError) runtimeError() {}

type UndefinedFunctionError struct {
	Name string
}

func (e *UndefinedFunctionError) Error() string {
	return fmt.Sprintf("Undefined function '%s'", e.Name)
}

func (*UndefinedFunctionError) runtimeError() {}

// TypeError covers invalid operand-type combinations and division by zero.
type TypeError struct {
	Message string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("Type error: %s", e.Message)
}

func (*TypeError) runtimeError() {}

type ArityMismatchError struct {
	Function string
	Expected int
	Found    int
}

func (e *ArityMismatchError) Error() string {
	return fmt.Sprintf("Function '%s' expects %d arguments, but %d were provided",
		e.Function, e.Expected, e.Found)
}

func (*ArityMismatchError) runtimeError() {}
