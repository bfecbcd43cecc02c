// Package interpreter walks a SimpleScript program tree, executing its
// statements against a single mutable variable scope.
package interpreter

import (
	"fmt"
	"io"
	"os"

	"simplescript/interpreter-go/pkg/ast"
	"simplescript/interpreter-go/pkg/runtime"
)

// Interpreter drives evaluation of SimpleScript AST nodes. Builtin output
// goes to the configured writer, stdout by default. An Interpreter owns its
// environment exclusively; independent programs run concurrently by using
// separate interpreters.
type Interpreter struct {
	env *runtime.Environment
	out io.Writer
}

// New returns an interpreter with an empty environment, writing builtin
// output to stdout.
func New() *Interpreter {
	return NewWithOutput(os.Stdout)
}

// NewWithOutput returns an interpreter writing builtin output to out.
func NewWithOutput(out io.Writer) *Interpreter {
	return &Interpreter{
		env: runtime.NewEnvironment(),
		out: out,
	}
}

// Environment exposes the interpreter's variable scope. After Interpret
// returns, its contents are the observable program state.
func (i *Interpreter) Environment() *runtime.Environment {
	return i.env
}

// Interpret executes the program's statements in order, stopping at the
// first runtime failure.
func (i *Interpreter) Interpret(program *ast.Program) error {
	for _, stmt := range program.Statements {
		if err := i.executeStatement(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interpreter) executeStatement(stmt ast.Statement) RuntimeError {
	switch s := stmt.(type) {
	case *ast.VariableDeclaration:
		value, err := i.evaluateExpression(s.Initializer)
		if err != nil {
			return err
		}
		i.env.Define(s.Name.Name, value)
		return nil
	case ast.Expression:
		_, err := i.evaluateExpression(s)
		return err
	default:
		// The parser produces no other statement forms.
		panic(fmt.Sprintf("interpreter: unexpected statement node %T", stmt))
	}
}

func (i *Interpreter) evaluateExpression(expr ast.Expression) (runtime.Value, RuntimeError) {
	switch e := expr.(type) {
	case *ast.StringLiteral:
		return runtime.StringValue{Val: e.Value}, nil
	case *ast.NumberLiteral:
		return runtime.NumberValue{Val: e.Value}, nil
	case *ast.BooleanLiteral:
		return runtime.BoolValue{Val: e.Value}, nil
	case *ast.Identifier:
		value, ok := i.env.Lookup(e.Name)
		if !ok {
			return nil, &UndefinedVariableError{Name: e.Name}
		}
		return value, nil
	case *ast.BinaryExpression:
		return i.evaluateBinary(e)
	case *ast.FunctionCall:
		return i.callFunction(e)
	default:
		panic(fmt.Sprintf("interpreter: unexpected expression node %T", expr))
	}
}

// evaluateBinary evaluates the left operand fully before starting the right;
// the ordering is observable when either side calls a builtin.
func (i *Interpreter) evaluateBinary(expr *ast.BinaryExpression) (runtime.Value, RuntimeError) {
	left, err := i.evaluateExpression(expr.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluateExpression(expr.Right)
	if err != nil {
		return nil, err
	}

	if ln, ok := left.(runtime.NumberValue); ok {
		if rn, ok := right.(runtime.NumberValue); ok {
			switch expr.Operator {
			case ast.OperatorAdd:
				return runtime.NumberValue{Val: ln.Val + rn.Val}, nil
			case ast.OperatorSubtract:
				return runtime.NumberValue{Val: ln.Val - rn.Val}, nil
			case ast.OperatorMultiply:
				return runtime.NumberValue{Val: ln.Val * rn.Val}, nil
			case ast.OperatorDivide:
				if rn.Val == 0 {
					return nil, &TypeError{Message: "division by zero"}
				}
				return runtime.NumberValue{Val: ln.Val / rn.Val}, nil
			}
		}
	}

	if expr.Operator == ast.OperatorAdd {
		if ls, ok := left.(runtime.StringValue); ok {
			if rs, ok := right.(runtime.StringValue); ok {
				return runtime.StringValue{Val: ls.Val + rs.Val}, nil
			}
		}
	}

	return nil, &TypeError{Message: fmt.Sprintf("cannot apply '%s' to %s and %s",
		expr.Operator, left.Kind(), right.Kind())}
}

// callFunction evaluates all arguments left to right, then dispatches by
// name through the builtin table.
func (i *Interpreter) callFunction(call *ast.FunctionCall) (runtime.Value, RuntimeError) {
	args := make([]runtime.Value, 0, len(call.Arguments))
	for _, argExpr := range call.Arguments {
		value, err := i.evaluateExpression(argExpr)
		if err != nil {
			return nil, err
		}
		args = append(args, value)
	}

	fn, ok := builtins[call.Name.Name]
	if !ok {
		return nil, &UndefinedFunctionError{Name: call.Name.Name}
	}
	return fn(i, args)
}
