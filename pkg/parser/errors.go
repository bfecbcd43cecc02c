package parser

import (
	"fmt"

	"simplescript/interpreter-go/pkg/token"
)

// UnexpectedTokenError reports a token that does not fit the grammar at its
// position. Expected describes the token kind (or construct, such as
// "expression") the grammar required. Exactly one parse error is produced
// per Parse call; there is no resynchronization.
type UnexpectedTokenError struct {
	Expected string
	Found    token.Token
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("unexpected token: expected %s, found %s", e.Expected, e.Found)
}

// UnexpectedEOFError is reserved: the current grammar reports end-of-input
// failures as UnexpectedTokenError against the EOF token.
type UnexpectedEOFError struct{}

func (*UnexpectedEOFError) Error() string { return "unexpected end of input" }

// InvalidExpressionError is reserved and unused by the current grammar.
type InvalidExpressionError struct{}

func (*InvalidExpressionError) Error() string { return "invalid expression" }
