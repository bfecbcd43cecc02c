// Package parser builds a SimpleScript program tree by recursive descent over
// the lexer's single-token-lookahead interface.
//
// Grammar:
//
//	program        := statement* EOF
//	statement      := "var" identifier "=" expression ";"
//	               | expression ";"
//	expression     := additive
//	additive       := multiplicative (("+"|"-") multiplicative)*
//	multiplicative := primary (("*"|"/") primary)*
//	primary        := literal | identifier ("(" args ")")? | "(" expression ")"
//	args           := (expression ("," expression)*)?
//
// Both binary levels are left-associative. Negative numbers come from the
// tokenizer, not from a unary rule.
package parser

import (
	"simplescript/interpreter-go/pkg/ast"
	"simplescript/interpreter-go/pkg/lexer"
	"simplescript/interpreter-go/pkg/token"
)

// Parser consumes tokens from a lexer and produces a Program. A Parser is
// single-use: Parse runs the lexer to end of input.
type Parser struct {
	lexer *lexer.Lexer
}

// New creates a parser over the given lexer.
func New(l *lexer.Lexer) *Parser {
	return &Parser{lexer: l}
}

// Parse consumes all tokens and returns the program, or the first parse
// error encountered. No partial program is returned on failure.
func (p *Parser) Parse() (*ast.Program, error) {
	var statements []ast.Statement
	for p.lexer.Current().Type != token.TypeEOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
	return ast.NewProgram(statements), nil
}

func (p *Parser) parseStatement() (ast.Statement, error) {
	if p.lexer.Current().Type == token.TypeVar {
		return p.parseVariableDeclaration()
	}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.TypeSemicolon); err != nil {
		return nil, err
	}
	return expr, nil
}

func (p *Parser) parseVariableDeclaration() (ast.Statement, error) {
	p.lexer.Advance() // var

	current := p.lexer.Current()
	if current.Type != token.TypeIdentifier {
		return nil, &UnexpectedTokenError{Expected: "identifier", Found: current}
	}
	name := ast.NewIdentifier(current.Name)
	p.lexer.Advance()

	if err := p.expect(token.TypeEquals); err != nil {
		return nil, err
	}

	initializer, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if err := p.expect(token.TypeSemicolon); err != nil {
		return nil, err
	}

	return ast.NewVariableDeclaration(name, initializer), nil
}

func (p *Parser) parseExpression() (ast.Expression, error) {
	return p.parseAdditive()
}

func (p *Parser) parseAdditive() (ast.Expression, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}

	for {
		var op ast.BinaryOperator
		switch p.lexer.Current().Type {
		case token.TypeAdd:
			op = ast.OperatorAdd
		case token.TypeSubtract:
			op = ast.OperatorSubtract
		default:
			return left, nil
		}

		p.lexer.Advance()
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryExpression(op, left, right)
	}
}

func (p *Parser) parseMultiplicative() (ast.Expression, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for {
		var op ast.BinaryOperator
		switch p.lexer.Current().Type {
		case token.TypeMultiply:
			op = ast.OperatorMultiply
		case token.TypeDivide:
			op = ast.OperatorDivide
		default:
			return left, nil
		}

		p.lexer.Advance()
		right, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryExpression(op, left, right)
	}
}

func (p *Parser) parsePrimary() (ast.Expression, error) {
	current := p.lexer.Current()
	switch current.Type {
	case token.TypeString:
		p.lexer.Advance()
		return ast.NewStringLiteral(current.Str), nil
	case token.TypeNumber:
		p.lexer.Advance()
		return ast.NewNumberLiteral(current.Num), nil
	case token.TypeBoolean:
		p.lexer.Advance()
		return ast.NewBooleanLiteral(current.Bool), nil
	case token.TypeIdentifier:
		p.lexer.Advance()
		if p.lexer.Current().Type == token.TypeLeftParen {
			return p.parseFunctionCall(current.Name)
		}
		return ast.NewIdentifier(current.Name), nil
	case token.TypeLeftParen:
		p.lexer.Advance()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.TypeRightParen); err != nil {
			return nil, err
		}
		return expr, nil
	default:
		return nil, &UnexpectedTokenError{Expected: "expression", Found: current}
	}
}

func (p *Parser) parseFunctionCall(name string) (ast.Expression, error) {
	if err := p.expect(token.TypeLeftParen); err != nil {
		return nil, err
	}

	var args []ast.Expression

	if p.lexer.Current().Type == token.TypeRightParen {
		p.lexer.Advance()
		return ast.NewFunctionCall(ast.NewIdentifier(name), args), nil
	}

	for {
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		switch p.lexer.Current().Type {
		case token.TypeComma:
			p.lexer.Advance()
		case token.TypeRightParen:
			p.lexer.Advance()
			return ast.NewFunctionCall(ast.NewIdentifier(name), args), nil
		default:
			return nil, &UnexpectedTokenError{Expected: "',' or ')'", Found: p.lexer.Current()}
		}
	}
}

// expect consumes a token of the given type or fails with the type's display
// name as the expectation.
func (p *Parser) expect(t token.Type) error {
	current := p.lexer.Current()
	if current.Type != t {
		return &UnexpectedTokenError{Expected: t.String(), Found: current}
	}
	p.lexer.Advance()
	return nil
}
