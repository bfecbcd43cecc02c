// Package lexer turns SimpleScript source text into a stream of tokens with
// one token of lookahead.
//
// The lexer is deliberately lenient: characters that start no valid token are
// skipped silently, malformed numeric text is discarded, and an unterminated
// string is closed at end of input. Scanning never fails.
package lexer

import (
	"strconv"
	"unicode"
	"unicode/utf8"

	"simplescript/interpreter-go/pkg/token"
)

// Lexer scans source text one token at a time. Current exposes the lookahead
// token without consuming it; Advance consumes it and computes the next.
type Lexer struct {
	input   string
	pos     int // byte offset of the next unread rune
	current token.Token
}

// New creates a lexer positioned on the first token of input.
func New(input string) *Lexer {
	l := &Lexer{input: input, current: token.EOF}
	l.Advance()
	return l
}

// Current returns the current token without consuming it.
func (l *Lexer) Current() token.Token {
	return l.current
}

// Advance consumes the current token and scans the next one. Advancing past
// end of input is a no-op: the EOF token is returned forever after.
func (l *Lexer) Advance() {
	l.current = l.next()
}

// peek returns the next unread rune without consuming it.
func (l *Lexer) peek() (rune, bool) {
	if l.pos >= len(l.input) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.pos:])
	return r, true
}

// peekAhead returns the rune after the next one, used for the contextual
// '-' and '.' rules.
func (l *Lexer) peekAhead() (rune, bool) {
	if l.pos >= len(l.input) {
		return 0, false
	}
	_, size := utf8.DecodeRuneInString(l.input[l.pos:])
	if l.pos+size >= len(l.input) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.pos+size:])
	return r, true
}

// bump consumes one rune.
func (l *Lexer) bump() {
	_, size := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += size
}

func (l *Lexer) skipWhitespace() {
	for {
		r, ok := l.peek()
		if !ok || !unicode.IsSpace(r) {
			return
		}
		l.bump()
	}
}

// readNumber consumes an optional leading '-' followed by a run of digits and
// dots, then parses the text as a float. The cursor is left after the
// consumed run even when parsing fails.
func (l *Lexer) readNumber() (float64, error) {
	start := l.pos
	if r, ok := l.peek(); ok && r == '-' {
		l.bump()
	}
	for {
		r, ok := l.peek()
		if !ok || (!isASCIIDigit(r) && r != '.') {
			break
		}
		l.bump()
	}
	return strconv.ParseFloat(l.input[start:l.pos], 64)
}

func (l *Lexer) readIdentifier() string {
	start := l.pos
	for {
		r, ok := l.peek()
		if !ok || (!unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_') {
			break
		}
		l.bump()
	}
	return l.input[start:l.pos]
}

// readString consumes a double-quoted string. There is no escape processing;
// an unterminated string is closed silently at end of input.
func (l *Lexer) readString() string {
	l.bump() // opening quote
	start := l.pos
	for {
		r, ok := l.peek()
		if !ok {
			return l.input[start:l.pos]
		}
		l.bump()
		if r == '"' {
			return l.input[start : l.pos-1]
		}
	}
}

func (l *Lexer) next() token.Token {
	for {
		l.skipWhitespace()

		r, ok := l.peek()
		if !ok {
			return token.EOF
		}

		switch r {
		case '=':
			l.bump()
			return token.Punct(token.TypeEquals)
		case ';':
			l.bump()
			return token.Punct(token.TypeSemicolon)
		case '(':
			l.bump()
			return token.Punct(token.TypeLeftParen)
		case ')':
			l.bump()
			return token.Punct(token.TypeRightParen)
		case ',':
			l.bump()
			return token.Punct(token.TypeComma)
		case '+':
			l.bump()
			return token.Punct(token.TypeAdd)
		case '*':
			l.bump()
			return token.Punct(token.TypeMultiply)
		case '/':
			l.bump()
			return token.Punct(token.TypeDivide)
		case '-':
			// A '-' directly before a digit or '.' begins a signed numeric
			// literal; otherwise it is the subtraction operator.
			if ahead, ok := l.peekAhead(); ok && (isASCIIDigit(ahead) || ahead == '.') {
				if num, err := l.readNumber(); err == nil {
					return token.NumberLit(num)
				}
				l.bump()
				return token.Punct(token.TypeSubtract)
			}
			l.bump()
			return token.Punct(token.TypeSubtract)
		case '.':
			// A '.' directly before a digit begins a fractional literal such
			// as .5; anywhere else the character is discarded.
			if ahead, ok := l.peekAhead(); ok && isASCIIDigit(ahead) {
				if num, err := l.readNumber(); err == nil {
					return token.NumberLit(num)
				}
			}
			l.bump()
			continue
		case '"':
			return token.StringLit(l.readString())
		}

		switch {
		case isASCIIDigit(r):
			if num, err := l.readNumber(); err == nil {
				return token.NumberLit(num)
			}
			l.bump()
			continue
		case unicode.IsLetter(r) || r == '_':
			ident := l.readIdentifier()
			switch ident {
			case "var":
				return token.Var()
			case "true":
				return token.BooleanLit(true)
			case "false":
				return token.BooleanLit(false)
			default:
				return token.Identifier(ident)
			}
		default:
			// Unrecognized character: skip it and keep scanning.
			l.bump()
			continue
		}
	}
}

func isASCIIDigit(r rune) bool {
	return '0' <= r && r <= '9'
}
