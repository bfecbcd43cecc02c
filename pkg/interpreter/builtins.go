package interpreter

import (
	"fmt"
	"strings"

	"simplescript/interpreter-go/pkg/runtime"
)

// builtinFunc is the handler signature for builtin functions. Arguments
// arrive already evaluated, left to right.
type builtinFunc func(i *Interpreter, args []runtime.Value) (runtime.Value, RuntimeError)

// builtins is the closed dispatch table. The builtin set is fixed; calls to
// any other name fail with UndefinedFunctionError.
var builtins = map[string]builtinFunc{
	"print":   builtinPrint,
	"println": builtinPrintln,
	"typeof":  builtinTypeof,
}

// builtinPrint writes each argument's display form, space-separated, with no
// trailing newline.
func builtinPrint(i *Interpreter, args []runtime.Value) (runtime.Value, RuntimeError) {
	parts := make([]string, len(args))
	for idx, arg := range args {
		parts[idx] = arg.Display()
	}
	fmt.Fprint(i.out, strings.Join(parts, " "))
	return runtime.NullValue{}, nil
}

func builtinPrintln(i *Interpreter, args []runtime.Value) (runtime.Value, RuntimeError) {
	if _, err := builtinPrint(i, args); err != nil {
		return nil, err
	}
	fmt.Fprintln(i.out)
	return runtime.NullValue{}, nil
}

// builtinTypeof returns the operand's type name as a string. It is the only
// builtin that checks its arity.
func builtinTypeof(i *Interpreter, args []runtime.Value) (runtime.Value, RuntimeError) {
	if len(args) != 1 {
		return nil, &ArityMismatchError{Function: "typeof", Expected: 1, Found: len(args)}
	}
	return runtime.StringValue{Val: args[0].Kind().String()}, nil
}
